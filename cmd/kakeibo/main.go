package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "github.com/kakeibo-app/kakeibo/db"
	"github.com/kakeibo-app/kakeibo/internal/auth"
	"github.com/kakeibo-app/kakeibo/internal/ledger/application"
	"github.com/kakeibo-app/kakeibo/internal/ledger/infrastructure"
	"github.com/kakeibo-app/kakeibo/internal/ledger/interfaces"
	"github.com/kakeibo-app/kakeibo/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router               *http.ServeMux
	dbService            *database.DBService
	authHandler          *auth.Handler
	authService          auth.Service
	userHandler          *user.Handler
	categoryHandler      *interfaces.CategoryHandler
	tagHandler           *interfaces.TagHandler
	paymentMethodHandler *interfaces.PaymentMethodHandler
	expenseHandler       *interfaces.ExpenseHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	tagHandler *interfaces.TagHandler,
	paymentMethodHandler *interfaces.PaymentMethodHandler,
	expenseHandler *interfaces.ExpenseHandler,
) *Server {
	return &Server{
		router:               http.NewServeMux(),
		dbService:            dbService,
		authHandler:          authHandler,
		authService:          authService,
		userHandler:          userHandler,
		categoryHandler:      categoryHandler,
		tagHandler:           tagHandler,
		paymentMethodHandler: paymentMethodHandler,
		expenseHandler:       expenseHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DATABASE_URL") == "" {
		return errors.New("no DATABASE_URL Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	publicRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	publicRoutes.Handle("POST /api/auth/2fa/verify", http.HandlerFunc(s.authHandler.HandleVerifyTwoFactor))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	withAuth := s.authService.JWTAccessTokenMiddleware()

	protectedRoutes.Handle("GET /api/protected/profile", withAuth(http.HandlerFunc(s.userHandler.HandleGetProfile)))
	protectedRoutes.Handle("PUT /api/protected/profile", withAuth(http.HandlerFunc(s.userHandler.HandleUpdateProfile)))
	protectedRoutes.Handle("POST /api/protected/change-password", withAuth(http.HandlerFunc(s.userHandler.HandleChangePassword)))

	protectedRoutes.Handle("POST /api/protected/2fa/register", withAuth(http.HandlerFunc(s.authHandler.HandleRegisterTwoFactor)))
	protectedRoutes.Handle("POST /api/protected/2fa/verify-registration", withAuth(http.HandlerFunc(s.authHandler.HandleVerifyTwoFactorCode)))
	protectedRoutes.Handle("DELETE /api/protected/2fa/disable", withAuth(http.HandlerFunc(s.authHandler.HandleDisableTwoFactor)))

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("POST /api/protected/categories/defaults", withAuth(http.HandlerFunc(s.categoryHandler.CreateDefaultCategories)))
	protectedRoutes.Handle("PUT /api/protected/categories/reorder", withAuth(http.HandlerFunc(s.categoryHandler.ReorderCategories)))
	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}", withAuth(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}", withAuth(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// TAGS API
	protectedRoutes.Handle("GET /api/protected/tags", withAuth(http.HandlerFunc(s.tagHandler.GetTags)))
	protectedRoutes.Handle("POST /api/protected/tags", withAuth(http.HandlerFunc(s.tagHandler.CreateTag)))
	protectedRoutes.Handle("PUT /api/protected/tags/reorder", withAuth(http.HandlerFunc(s.tagHandler.ReorderTags)))
	protectedRoutes.Handle("PUT /api/protected/tags/{tagID}", withAuth(http.HandlerFunc(s.tagHandler.UpdateTag)))
	protectedRoutes.Handle("DELETE /api/protected/tags/{tagID}", withAuth(http.HandlerFunc(s.tagHandler.DeleteTag)))

	// PAYMENT METHODS API
	protectedRoutes.Handle("GET /api/protected/payment-methods", withAuth(http.HandlerFunc(s.paymentMethodHandler.GetPaymentMethods)))
	protectedRoutes.Handle("POST /api/protected/payment-methods", withAuth(http.HandlerFunc(s.paymentMethodHandler.CreatePaymentMethod)))
	protectedRoutes.Handle("PUT /api/protected/payment-methods/{paymentMethodID}", withAuth(http.HandlerFunc(s.paymentMethodHandler.UpdatePaymentMethod)))
	protectedRoutes.Handle("DELETE /api/protected/payment-methods/{paymentMethodID}", withAuth(http.HandlerFunc(s.paymentMethodHandler.DeletePaymentMethod)))

	// EXPENSES API
	protectedRoutes.Handle("GET /api/protected/expenses", withAuth(http.HandlerFunc(s.expenseHandler.GetExpenses)))
	protectedRoutes.Handle("POST /api/protected/expenses", withAuth(http.HandlerFunc(s.expenseHandler.CreateExpense)))
	protectedRoutes.Handle("GET /api/protected/expenses/search", withAuth(http.HandlerFunc(s.expenseHandler.SearchExpenses)))
	protectedRoutes.Handle("PUT /api/protected/expenses/{expenseID}", withAuth(http.HandlerFunc(s.expenseHandler.UpdateExpense)))
	protectedRoutes.Handle("DELETE /api/protected/expenses/{expenseID}", withAuth(http.HandlerFunc(s.expenseHandler.DeleteExpense)))
	protectedRoutes.Handle("GET /api/protected/expenses/summary/monthly", withAuth(http.HandlerFunc(s.expenseHandler.GetMonthlySummary)))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.RefreshAccessToken)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func StartSessionCleanupScheduler(sessionManager auth.SessionManagerInterface) error {
	c := cron.New()
	_, err := c.AddFunc("@every 5m", func() {
		if removed := sessionManager.CleanupExpired(); removed > 0 {
			log.Printf("Removed %d expired login sessions", removed)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	authRepo := auth.NewUserRepository(dbService.DB)
	userRepo := user.NewUserRepository(dbService.DB)

	sessionManager := auth.NewSessionManager()
	jwtManager := auth.NewJWTManager()
	authenticator := auth.Authenticator{}

	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)
	authService := auth.NewAuthService(authRepo, userService, sessionManager, jwtManager, authenticator)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	tagRepo := infrastructure.NewTagRepository(dbService.DB)
	tagService := application.NewTagService(tagRepo, categoryRepo)
	tagHandler := interfaces.NewTagHandler(tagService, respondJSON, respondError)

	paymentMethodRepo := infrastructure.NewPaymentMethodRepository(dbService.DB)
	paymentMethodService := application.NewPaymentMethodService(paymentMethodRepo)
	paymentMethodHandler := interfaces.NewPaymentMethodHandler(paymentMethodService, respondJSON, respondError)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, categoryHandler, tagHandler, paymentMethodHandler, expenseHandler)
	server.RegisterRoutes()

	if err := StartSessionCleanupScheduler(sessionManager); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	handler := loggingMiddleware(server.router)
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
