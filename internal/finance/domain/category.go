package domain

import "github.com/sebuszqo/BudgetMate/internal/finance/errors"

type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Type   string `json:"type"` // "income" or "expense"
}

type CategoryRepository interface {
	Save(category Category) error
	FindByUser(userID, categoryType string) ([]Category, error)
	FindByID(categoryID, userID string) (*Category, error)
	Update(category Category) error
	Delete(categoryID, userID string) error
	ExistsByID(categoryID, userID string) (bool, error)
	CountByUserAndType(userID, categoryType string) (int, error)
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.NewValidationError("Name is required")
	}
	if !IsValidTransactionType(c.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	return nil
}
