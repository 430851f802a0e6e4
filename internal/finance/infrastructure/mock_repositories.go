package infrastructure

import (
	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
)

// In-memory repositories for service tests. No locking: the services under
// test are synchronous.

type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var result []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.CategoryID != "" && transaction.CategoryID != filter.CategoryID {
			continue
		}
		if filter.StartDate != nil && transaction.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && transaction.Date.After(*filter.EndDate) {
			continue
		}
		result = append(result, transaction)
	}
	return result, nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID && m.Transactions[i].UserID == transaction.UserID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) Delete(transactionID, userID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

type MockCategoryRepository struct {
	Categories []domain.Category
	FindErr    error
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID, categoryType string) ([]domain.Category, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var result []domain.Category
	for _, category := range m.Categories {
		if category.UserID != userID {
			continue
		}
		if categoryType != "" && category.Type != categoryType {
			continue
		}
		result = append(result, category)
	}
	return result, nil
}

func (m *MockCategoryRepository) FindByID(categoryID, userID string) (*domain.Category, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID && m.Categories[i].UserID == userID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID && m.Categories[i].UserID == category.UserID {
			m.Categories[i] = category
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) Delete(categoryID, userID string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID && m.Categories[i].UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) ExistsByID(categoryID, userID string) (bool, error) {
	category, err := m.FindByID(categoryID, userID)
	if err != nil {
		return false, err
	}
	return category != nil, nil
}

func (m *MockCategoryRepository) CountByUserAndType(userID, categoryType string) (int, error) {
	categories, err := m.FindByUser(userID, categoryType)
	if err != nil {
		return 0, err
	}
	return len(categories), nil
}

type MockGoalRepository struct {
	Goals []domain.Goal
}

func (m *MockGoalRepository) Save(goal domain.Goal) error {
	m.Goals = append(m.Goals, goal)
	return nil
}

func (m *MockGoalRepository) FindByUser(userID string) ([]domain.Goal, error) {
	var result []domain.Goal
	for _, goal := range m.Goals {
		if goal.UserID == userID {
			result = append(result, goal)
		}
	}
	return result, nil
}

func (m *MockGoalRepository) FindByID(goalID, userID string) (*domain.Goal, error) {
	for i := range m.Goals {
		if m.Goals[i].ID == goalID && m.Goals[i].UserID == userID {
			goal := m.Goals[i]
			return &goal, nil
		}
	}
	return nil, nil
}

func (m *MockGoalRepository) Update(goal domain.Goal) error {
	for i := range m.Goals {
		if m.Goals[i].ID == goal.ID && m.Goals[i].UserID == goal.UserID {
			m.Goals[i] = goal
			return nil
		}
	}
	return nil
}

func (m *MockGoalRepository) UpdateSavedAmount(goalID, userID string, savedAmount float64) error {
	for i := range m.Goals {
		if m.Goals[i].ID == goalID && m.Goals[i].UserID == userID {
			m.Goals[i].SavedAmount = savedAmount
			return nil
		}
	}
	return nil
}

func (m *MockGoalRepository) Delete(goalID, userID string) error {
	for i := range m.Goals {
		if m.Goals[i].ID == goalID && m.Goals[i].UserID == userID {
			m.Goals = append(m.Goals[:i], m.Goals[i+1:]...)
			return nil
		}
	}
	return nil
}

type MockSettingsRepository struct {
	Settings map[string]domain.Settings
}

func (m *MockSettingsRepository) Find(userID string) (*domain.Settings, error) {
	if settings, ok := m.Settings[userID]; ok {
		return &settings, nil
	}
	return nil, nil
}

func (m *MockSettingsRepository) Upsert(settings domain.Settings) error {
	if m.Settings == nil {
		m.Settings = make(map[string]domain.Settings)
	}
	m.Settings[settings.UserID] = settings
	return nil
}
