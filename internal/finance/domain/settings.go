package domain

import "github.com/sebuszqo/BudgetMate/internal/finance/errors"

// Settings holds per-user display preferences. Currently only the currency
// used by the formatters.
type Settings struct {
	UserID   string `json:"user_id"`
	Currency string `json:"currency"`
}

type SettingsRepository interface {
	Find(userID string) (*Settings, error)
	Upsert(settings Settings) error
}

func (s *Settings) Validate() error {
	if len(s.Currency) != 3 {
		return errors.NewValidationError("Currency must be a 3-letter ISO code")
	}
	return nil
}
