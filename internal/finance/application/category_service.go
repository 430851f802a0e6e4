package application

import (
	"github.com/google/uuid"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

// defaultCategories are the starter sets provisioned for a fresh account,
// one per transaction type.
var defaultCategories = map[string][]domain.Category{
	domain.TypeExpense: {
		{Name: "Food & Dining", Icon: "🍽️", Color: "#ef4444"},
		{Name: "Transportation", Icon: "🚗", Color: "#3b82f6"},
		{Name: "Shopping", Icon: "🛍️", Color: "#8b5cf6"},
		{Name: "Entertainment", Icon: "🎬", Color: "#f59e0b"},
		{Name: "Bills & Utilities", Icon: "⚡", Color: "#10b981"},
		{Name: "Healthcare", Icon: "🏥", Color: "#ef4444"},
	},
	domain.TypeIncome: {
		{Name: "Salary", Icon: "💼", Color: "#10b981"},
		{Name: "Freelance", Icon: "💻", Color: "#3b82f6"},
		{Name: "Investment", Icon: "📈", Color: "#8b5cf6"},
		{Name: "Other Income", Icon: "💰", Color: "#f59e0b"},
	},
}

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// EnsureDefaultCategories provisions the default set for a type when the user
// has none of that type yet. It is idempotent and meant to be called once at
// account setup, never as a hidden side effect of a read.
func (s *CategoryService) EnsureDefaultCategories(userID, categoryType string) ([]domain.Category, error) {
	if !domain.IsValidTransactionType(categoryType) {
		return nil, financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}

	count, err := s.repo.CountByUserAndType(userID, categoryType)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		for _, template := range defaultCategories[categoryType] {
			category := template
			category.ID = uuid.NewString()
			category.UserID = userID
			category.Type = categoryType
			if err := s.repo.Save(category); err != nil {
				return nil, err
			}
		}
	}
	return s.GetUserCategories(userID, categoryType)
}

func (s *CategoryService) GetUserCategories(userID, categoryType string) ([]domain.Category, error) {
	if categoryType != "" && !domain.IsValidTransactionType(categoryType) {
		return nil, financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	categories, err := s.repo.FindByUser(userID, categoryType)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	category.ID = uuid.NewString()
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Save(*category)
}

func (s *CategoryService) UpdateCategory(category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(category.ID, category.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.ErrCategoryNotFound
	}
	return s.repo.Update(*category)
}

func (s *CategoryService) DeleteCategory(categoryID, userID string) error {
	return s.repo.Delete(categoryID, userID)
}

func (s *CategoryService) DoesCategoryExist(categoryID, userID string) (bool, error) {
	return s.repo.ExistsByID(categoryID, userID)
}
