package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
)

type ExpenseService struct {
	repo domain.ExpenseRepository
}

func NewExpenseService(repo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// CreateExpenseInput is the creation payload. Tags carries the selected tag
// names; the service joins them into the stored string.
type CreateExpenseInput struct {
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	BigCategory   string    `json:"big_category"`
	Tags          []string  `json:"tags"`
	PaymentMethod string    `json:"payment_method"`
	Description   string    `json:"description"`
}

// GetUserExpenses lists the user's expenses newest first.
func (s *ExpenseService) GetUserExpenses(userID string) ([]domain.Expense, error) {
	expenses, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// CreateExpense validates the input before touching the store; a validation
// failure never reaches the repository.
func (s *ExpenseService) CreateExpense(userID string, input CreateExpenseInput) (*domain.Expense, error) {
	now := time.Now()
	expense := domain.Expense{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          input.Date,
		Amount:        input.Amount,
		BigCategory:   input.BigCategory,
		Tags:          domain.JoinTags(input.Tags),
		PaymentMethod: input.PaymentMethod,
		Description:   input.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(expense); err != nil {
		return nil, fmt.Errorf("save expense: %w", err)
	}
	return &expense, nil
}

// UpdateExpense writes only the fields the update carries and always refreshes
// updatedAt. Ownership is enforced by the user_id filter in the repository.
func (s *ExpenseService) UpdateExpense(userID, expenseID string, update domain.ExpenseUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(userID, expenseID, update, time.Now()); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (s *ExpenseService) DeleteExpense(userID, expenseID string) error {
	if err := s.repo.Delete(userID, expenseID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// SearchResult is a filtered listing plus its running totals.
type SearchResult struct {
	Expenses []domain.Expense `json:"expenses"`
	Total    float64          `json:"total"`
	Count    int              `json:"count"`
}

// SearchExpenses filters the user's expenses in memory; the predicate
// semantics live in the domain and are ANDed across dimensions.
func (s *ExpenseService) SearchExpenses(userID string, filter domain.ExpenseFilter) (*SearchResult, error) {
	expenses, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	filtered := domain.FilterExpenses(expenses, filter)
	return &SearchResult{
		Expenses: filtered,
		Total:    domain.TotalAmount(filtered),
		Count:    len(filtered),
	}, nil
}

// MonthSummary is one month of the summary page: the bucket values plus the
// category shares prepared for the pie chart.
type MonthSummary struct {
	Year   int                    `json:"year"`
	Month  int                    `json:"month"`
	Total  float64                `json:"total"`
	Count  int                    `json:"count"`
	Shares []domain.CategoryShare `json:"shares"`
}

// SeriesPoint is one month of the chronological line chart.
type SeriesPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Year   int     `json:"year"`
	Num    int     `json:"month_num"`
}

// MonthlySummary aggregates the whole history: months newest first for the
// tables, the same buckets oldest first for the chart.
type MonthlySummary struct {
	GrandTotal float64        `json:"grand_total"`
	Months     []MonthSummary `json:"months"`
	Series     []SeriesPoint  `json:"series"`
}

// GetMonthlySummary recomputes the derived aggregates from the full expense
// list on every call; nothing is cached between requests.
func (s *ExpenseService) GetMonthlySummary(userID string) (*MonthlySummary, error) {
	expenses, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	buckets := domain.MonthlyBuckets(expenses)

	summary := &MonthlySummary{
		Months: make([]MonthSummary, 0, len(buckets)),
		Series: make([]SeriesPoint, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		summary.GrandTotal += bucket.Total
		summary.Months = append(summary.Months, MonthSummary{
			Year:   bucket.Year,
			Month:  bucket.Month,
			Total:  bucket.Total,
			Count:  bucket.Count,
			Shares: domain.CategoryShares(bucket.CategoryBreakdown, bucket.Total),
		})
	}
	for _, bucket := range domain.TimeSeries(buckets) {
		summary.Series = append(summary.Series, SeriesPoint{
			Month:  fmt.Sprintf("%d/%02d", bucket.Year, bucket.Month),
			Amount: bucket.Total,
			Year:   bucket.Year,
			Num:    bucket.Month,
		})
	}
	return summary, nil
}
