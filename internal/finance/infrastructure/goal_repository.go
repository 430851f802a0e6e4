package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
)

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Save(goal domain.Goal) error {
	_, err := r.db.Exec(
		`INSERT INTO goals (id, user_id, title, target_amount, saved_amount, deadline)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		goal.ID, goal.UserID, goal.Title, goal.TargetAmount, goal.SavedAmount, goal.Deadline,
	)
	return err
}

func (r *GoalRepository) FindByUser(userID string) ([]domain.Goal, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, title, target_amount, saved_amount, deadline FROM goals
        WHERE user_id = $1 ORDER BY deadline`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var goal domain.Goal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Title,
			&goal.TargetAmount, &goal.SavedAmount, &goal.Deadline); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) FindByID(goalID, userID string) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.db.QueryRow(
		`SELECT id, user_id, title, target_amount, saved_amount, deadline FROM goals
        WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	).Scan(&goal.ID, &goal.UserID, &goal.Title, &goal.TargetAmount, &goal.SavedAmount, &goal.Deadline)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Update(goal domain.Goal) error {
	_, err := r.db.Exec(
		`UPDATE goals SET title = $1, target_amount = $2, saved_amount = $3, deadline = $4
        WHERE id = $5 AND user_id = $6`,
		goal.Title, goal.TargetAmount, goal.SavedAmount, goal.Deadline, goal.ID, goal.UserID,
	)
	return err
}

func (r *GoalRepository) UpdateSavedAmount(goalID, userID string, savedAmount float64) error {
	_, err := r.db.Exec(
		`UPDATE goals SET saved_amount = $1 WHERE id = $2 AND user_id = $3`,
		savedAmount, goalID, userID,
	)
	return err
}

func (r *GoalRepository) Delete(goalID, userID string) error {
	_, err := r.db.Exec(`DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	return err
}
