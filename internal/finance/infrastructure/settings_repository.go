package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
)

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Find(userID string) (*domain.Settings, error) {
	var settings domain.Settings
	err := r.db.QueryRow(
		`SELECT user_id, currency FROM settings WHERE user_id = $1`, userID,
	).Scan(&settings.UserID, &settings.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Upsert(settings domain.Settings) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (user_id, currency) VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET currency = EXCLUDED.currency`,
		settings.UserID, settings.Currency,
	)
	return err
}
