package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

type GoalService struct {
	repo domain.GoalRepository
	now  func() time.Time
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo, now: time.Now}
}

func (s *GoalService) CreateGoal(goal *domain.Goal) error {
	goal.ID = uuid.NewString()
	goal.TargetAmount = domain.RoundAmount(goal.TargetAmount)
	goal.SavedAmount = domain.RoundAmount(goal.SavedAmount)
	if err := goal.Validate(); err != nil {
		return err
	}
	today := startOfDay(s.now())
	if goal.Deadline.Before(today) {
		return financeErrors.ErrDeadlineInPast
	}
	return s.repo.Save(*goal)
}

func (s *GoalService) GetUserGoals(userID string) ([]domain.Goal, error) {
	goals, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *GoalService) UpdateGoal(goal *domain.Goal) error {
	goal.TargetAmount = domain.RoundAmount(goal.TargetAmount)
	goal.SavedAmount = domain.RoundAmount(goal.SavedAmount)
	if err := goal.Validate(); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(goal.ID, goal.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.ErrGoalNotFound
	}
	return s.repo.Update(*goal)
}

// UpdateProgress replaces the saved amount. It may exceed the target; the
// percent stays unclamped and the goal simply reports as completed.
func (s *GoalService) UpdateProgress(goalID, userID string, savedAmount float64) (*domain.Goal, error) {
	if savedAmount < 0 {
		return nil, financeErrors.NewValidationError("Saved amount must not be negative")
	}
	goal, err := s.repo.FindByID(goalID, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, financeErrors.ErrGoalNotFound
	}
	savedAmount = domain.RoundAmount(savedAmount)
	if err := s.repo.UpdateSavedAmount(goalID, userID, savedAmount); err != nil {
		return nil, err
	}
	goal.SavedAmount = savedAmount
	return goal, nil
}

func (s *GoalService) DeleteGoal(goalID, userID string) error {
	return s.repo.Delete(goalID, userID)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
