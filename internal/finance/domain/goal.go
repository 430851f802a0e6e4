package domain

import (
	"math"
	"time"

	"github.com/sebuszqo/BudgetMate/internal/finance/errors"
)

// daysPerMonth is the fixed month length used for the monthly target,
// matching the rest of the product rather than calendar months.
const daysPerMonth = 30

type GoalRepository interface {
	Save(goal Goal) error
	FindByUser(userID string) ([]Goal, error)
	FindByID(goalID, userID string) (*Goal, error)
	Update(goal Goal) error
	UpdateSavedAmount(goalID, userID string, savedAmount float64) error
	Delete(goalID, userID string) error
}

type Goal struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	TargetAmount float64   `json:"target_amount"`
	SavedAmount  float64   `json:"saved_amount"`
	Deadline     time.Time `json:"deadline"`
}

func (g *Goal) Validate() error {
	if g.Title == "" {
		return errors.NewValidationError("Title is required")
	}
	if g.TargetAmount <= 0 {
		return errors.NewValidationError("Target amount must be greater than zero")
	}
	if g.SavedAmount < 0 {
		return errors.NewValidationError("Saved amount must not be negative")
	}
	if g.Deadline.IsZero() {
		return errors.NewValidationError("Deadline is required")
	}
	return nil
}

// Progress reports completion as a percentage. It is not clamped: an
// overfunded goal reports more than 100 and the rendering layer caps the bar.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.SavedAmount / g.TargetAmount * 100
}

func (g *Goal) IsCompleted() bool {
	return g.Progress() >= 100
}

func (g *Goal) IsActive() bool {
	return g.SavedAmount < g.TargetAmount
}

// MonthlyTarget is the amount to put aside each remaining 30-day month to
// reach the target by the deadline. A passed (or same-day) deadline means the
// whole remainder is due now.
func (g *Goal) MonthlyTarget(today time.Time) float64 {
	remaining := g.TargetAmount - g.SavedAmount
	if remaining <= 0 {
		return 0
	}
	diffMonths := math.Ceil(g.Deadline.Sub(today).Hours() / (24 * daysPerMonth))
	if diffMonths <= 0 {
		return remaining
	}
	return remaining / diffMonths
}
