package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

func validTransaction() Transaction {
	return Transaction{
		ID:         "tx-1",
		UserID:     "user-1",
		Type:       TypeExpense,
		Amount:     25.5,
		CategoryID: "cat-1",
		Date:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{"valid", func(tx *Transaction) {}, false},
		{"invalid type", func(tx *Transaction) { tx.Type = "transfer" }, true},
		{"zero amount", func(tx *Transaction) { tx.Amount = 0 }, true},
		{"negative amount", func(tx *Transaction) { tx.Amount = -1 }, true},
		{"missing category", func(tx *Transaction) { tx.CategoryID = "" }, true},
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }, true},
		{"note at limit", func(tx *Transaction) { tx.Note = strings.Repeat("a", 200) }, false},
		{"note too long", func(tx *Transaction) { tx.Note = strings.Repeat("a", 201) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction := validTransaction()
			tt.mutate(&transaction)
			err := transaction.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoundToTwoDecimalPlaces(t *testing.T) {
	transaction := validTransaction()
	transaction.Amount = 19.999
	transaction.RoundToTwoDecimalPlaces()
	assert.Equal(t, 20.0, transaction.Amount)
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TypeIncome))
	assert.True(t, IsValidTransactionType(TypeExpense))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("transfer"))
}
