package domain

import (
	"time"

	"github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

// TransactionFilter narrows FindByUser results. Zero values mean "no filter";
// date bounds are inclusive.
type TransactionFilter struct {
	Type       string
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByUser(userID string, filter TransactionFilter) ([]Transaction, error)
	FindByID(transactionID, userID string) (*Transaction, error)
	Update(transaction Transaction) error
	Delete(transactionID, userID string) error
}

type Transaction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	CategoryID string    `json:"category_id"`
	Date       time.Time `json:"date"`
	Note       string    `json:"note,omitempty"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if t.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if t.CategoryID == "" {
		return errors.NewValidationError("Category is required")
	}
	if len(t.Note) > 200 {
		return errors.NewValidationError("Note must be of length less than 200")
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	return nil
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = RoundAmount(t.Amount)
}
