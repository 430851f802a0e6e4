package errors

import (
	"errors"
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

var ErrInvalidCategory = NewValidationError("Invalid category")
var ErrDeadlineInPast = NewValidationError("Deadline must not be in the past")

var ErrTransactionNotFound = errors.New("transaction not found")
var ErrCategoryNotFound = errors.New("category not found")
var ErrGoalNotFound = errors.New("goal not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrGoalNotFound)
}
