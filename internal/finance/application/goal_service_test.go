package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetMate/internal/finance/errors"
	"github.com/sebuszqo/BudgetMate/internal/finance/infrastructure"
)

func newGoalServiceAt(now time.Time) (*GoalService, *infrastructure.MockGoalRepository) {
	repo := &infrastructure.MockGoalRepository{}
	service := NewGoalService(repo)
	service.now = func() time.Time { return now }
	return service, repo
}

func TestCreateGoal_Valid(t *testing.T) {
	now := time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC)
	service, repo := newGoalServiceAt(now)
	goal := &domain.Goal{
		UserID:       "user-1",
		Title:        "Emergency Fund",
		TargetAmount: 1200.005,
		SavedAmount:  300,
		Deadline:     now.AddDate(0, 3, 0),
	}

	err := service.CreateGoal(goal)

	assert.NoError(t, err)
	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, 1200.01, goal.TargetAmount)
	assert.Len(t, repo.Goals, 1)
}

func TestCreateGoal_DeadlineTodayIsAllowed(t *testing.T) {
	now := time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC)
	service, _ := newGoalServiceAt(now)
	goal := &domain.Goal{
		UserID:       "user-1",
		Title:        "Last Minute",
		TargetAmount: 100,
		Deadline:     time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.NoError(t, service.CreateGoal(goal))
}

func TestCreateGoal_RejectsPastDeadline(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, _ := newGoalServiceAt(now)
	goal := &domain.Goal{
		UserID:       "user-1",
		Title:        "Too Late",
		TargetAmount: 100,
		Deadline:     now.AddDate(0, 0, -1),
	}

	err := service.CreateGoal(goal)

	assert.Equal(t, financeErrors.ErrDeadlineInPast, err)
}

func TestCreateGoal_RejectsNonPositiveTarget(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, _ := newGoalServiceAt(now)
	goal := &domain.Goal{
		UserID:       "user-1",
		Title:        "Nothing",
		TargetAmount: 0,
		Deadline:     now.AddDate(0, 1, 0),
	}

	err := service.CreateGoal(goal)

	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateGoal_AllowsPastDeadline(t *testing.T) {
	// Editing an existing goal must not get stuck on a deadline that has
	// since passed.
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, repo := newGoalServiceAt(now)
	repo.Goals = []domain.Goal{
		{ID: "goal-1", UserID: "user-1", Title: "Old", TargetAmount: 500, Deadline: now.AddDate(0, 0, -10)},
	}

	updated := domain.Goal{ID: "goal-1", UserID: "user-1", Title: "Renamed", TargetAmount: 500, Deadline: now.AddDate(0, 0, -10)}

	assert.NoError(t, service.UpdateGoal(&updated))
	assert.Equal(t, "Renamed", repo.Goals[0].Title)
}

func TestUpdateGoal_NotFound(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, _ := newGoalServiceAt(now)
	goal := &domain.Goal{ID: "missing", UserID: "user-1", Title: "Ghost", TargetAmount: 100, Deadline: now.AddDate(0, 1, 0)}

	assert.Equal(t, financeErrors.ErrGoalNotFound, service.UpdateGoal(goal))
}

func TestUpdateProgress_ReplacesSavedAmount(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, repo := newGoalServiceAt(now)
	repo.Goals = []domain.Goal{
		{ID: "goal-1", UserID: "user-1", Title: "Trip", TargetAmount: 1000, SavedAmount: 100, Deadline: now.AddDate(0, 6, 0)},
	}

	goal, err := service.UpdateProgress("goal-1", "user-1", 250.555)

	assert.NoError(t, err)
	assert.Equal(t, 250.56, goal.SavedAmount)
	assert.Equal(t, 250.56, repo.Goals[0].SavedAmount)
}

func TestUpdateProgress_MayExceedTarget(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, repo := newGoalServiceAt(now)
	repo.Goals = []domain.Goal{
		{ID: "goal-1", UserID: "user-1", Title: "Trip", TargetAmount: 1000, Deadline: now.AddDate(0, 6, 0)},
	}

	goal, err := service.UpdateProgress("goal-1", "user-1", 1500)

	assert.NoError(t, err)
	assert.True(t, goal.IsCompleted())
	assert.Equal(t, 150.0, goal.Progress())
}

func TestUpdateProgress_RejectsNegativeAmount(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, _ := newGoalServiceAt(now)

	_, err := service.UpdateProgress("goal-1", "user-1", -5)

	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateProgress_NotFound(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, _ := newGoalServiceAt(now)

	_, err := service.UpdateProgress("missing", "user-1", 10)

	assert.Equal(t, financeErrors.ErrGoalNotFound, err)
}

func TestGetUserGoals_EmptyResultIsNotNil(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	service, _ := newGoalServiceAt(now)

	goals, err := service.GetUserGoals("user-1")

	assert.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}
