package interfaces

import (
	"errors"
	"time"

	"github.com/sebuszqo/BudgetMate/internal/finance/application"
	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

// Hand-written service mocks for handler tests.

type MockTransactionService struct {
	transactions []domain.Transaction
	createErr    error
	updateErr    error
	shouldFail   bool
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	transaction.ID = "generated-id"
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.transactions, nil
}

func (m *MockTransactionService) UpdateTransaction(transaction *domain.Transaction) error {
	return m.updateErr
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

type MockAnalyticsService struct {
	summary    *application.PeriodSummary
	lastPeriod domain.Period
	shouldFail bool
}

func (m *MockAnalyticsService) GetPeriodSummary(userID string, period domain.Period, now time.Time) (*application.PeriodSummary, error) {
	m.lastPeriod = period
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.summary, nil
}

type MockCategoryService struct {
	categories []domain.Category
	shouldFail bool
}

func (m *MockCategoryService) GetUserCategories(userID, categoryType string) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) EnsureDefaultCategories(userID, categoryType string) ([]domain.Category, error) {
	if !domain.IsValidTransactionType(categoryType) {
		return nil, financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	category.ID = "generated-id"
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MockCategoryService) UpdateCategory(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	for _, existing := range m.categories {
		if existing.ID == category.ID {
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(categoryID, userID string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

type MockGoalService struct {
	goals      []domain.Goal
	createErr  error
	shouldFail bool
}

func (m *MockGoalService) CreateGoal(goal *domain.Goal) error {
	if m.createErr != nil {
		return m.createErr
	}
	goal.ID = "generated-id"
	m.goals = append(m.goals, *goal)
	return nil
}

func (m *MockGoalService) GetUserGoals(userID string) ([]domain.Goal, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.goals, nil
}

func (m *MockGoalService) UpdateGoal(goal *domain.Goal) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	for _, existing := range m.goals {
		if existing.ID == goal.ID {
			return nil
		}
	}
	return financeErrors.ErrGoalNotFound
}

func (m *MockGoalService) UpdateProgress(goalID, userID string, savedAmount float64) (*domain.Goal, error) {
	if savedAmount < 0 {
		return nil, financeErrors.NewValidationError("Saved amount must not be negative")
	}
	for i := range m.goals {
		if m.goals[i].ID == goalID {
			m.goals[i].SavedAmount = savedAmount
			goal := m.goals[i]
			return &goal, nil
		}
	}
	return nil, financeErrors.ErrGoalNotFound
}

func (m *MockGoalService) DeleteGoal(goalID, userID string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

type MockSettingsService struct {
	settings   map[string]domain.Settings
	shouldFail bool
}

func (m *MockSettingsService) GetSettings(userID string) (*domain.Settings, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if settings, ok := m.settings[userID]; ok {
		return &settings, nil
	}
	return &domain.Settings{UserID: userID, Currency: domain.DefaultCurrency}, nil
}

func (m *MockSettingsService) UpdateSettings(settings *domain.Settings) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if m.settings == nil {
		m.settings = make(map[string]domain.Settings)
	}
	m.settings[settings.UserID] = *settings
	return nil
}
