package application

import (
	"strings"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
)

type SettingsService struct {
	repo domain.SettingsRepository
}

func NewSettingsService(repo domain.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetSettings falls back to USD for users who never saved preferences.
func (s *SettingsService) GetSettings(userID string) (*domain.Settings, error) {
	settings, err := s.repo.Find(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &domain.Settings{UserID: userID, Currency: domain.DefaultCurrency}, nil
	}
	return settings, nil
}

func (s *SettingsService) UpdateSettings(settings *domain.Settings) error {
	settings.Currency = strings.ToUpper(settings.Currency)
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.repo.Upsert(*settings)
}
