package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

func NewFieldValidationError(field, msg string) error {
	return &ValidationError{Msg: fmt.Sprintf("%s: %s", field, msg)}
}

var (
	ErrNameRequired           = NewValidationError("Name is required")
	ErrDuplicateCategoryName  = NewValidationError("A category with the same name already exists")
	ErrDuplicateTagName       = NewValidationError("A tag with the same name already exists in this category")
	ErrDuplicatePaymentMethod = NewValidationError("A payment method with the same name already exists")
	ErrUnknownCategory        = NewValidationError("Category does not exist")
	ErrInvalidAmount          = NewValidationError("Amount must be a positive number")
	ErrMissingRequiredFields  = NewValidationError("Date, amount, category and payment method are required")
)

var ErrNotFound = errors.New("record not found")
