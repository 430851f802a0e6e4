package application

import (
	"github.com/google/uuid"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

type CategoryServiceInterface interface {
	DoesCategoryExist(categoryID, userID string) (bool, error)
	GetUserCategories(userID, categoryType string) ([]domain.Category, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService}
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryService.DoesCategoryExist(transaction.CategoryID, transaction.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}

	return s.repo.Save(*transaction)
}

func (s *TransactionService) GetUserTransactions(userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) UpdateTransaction(transaction *domain.Transaction) error {
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(transaction.ID, transaction.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.ErrTransactionNotFound
	}

	exists, err := s.categoryService.DoesCategoryExist(transaction.CategoryID, transaction.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}

	return s.repo.Update(*transaction)
}

func (s *TransactionService) DeleteTransaction(transactionID, userID string) error {
	return s.repo.Delete(transactionID, userID)
}
