package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, user_id, name, icon, color, type) VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.UserID, category.Name, category.Icon, category.Color, category.Type,
	)
	return err
}

func (r *CategoryRepository) FindByUser(userID, categoryType string) ([]domain.Category, error) {
	query := `SELECT id, user_id, name, icon, color, type FROM categories WHERE user_id = $1`
	args := []interface{}{userID}

	if categoryType != "" {
		query += " AND type = $2"
		args = append(args, categoryType)
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name,
			&category.Icon, &category.Color, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID, userID string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name, icon, color, type FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Icon, &category.Color, &category.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	_, err := r.db.Exec(
		`UPDATE categories SET name = $1, icon = $2, color = $3, type = $4 WHERE id = $5 AND user_id = $6`,
		category.Name, category.Icon, category.Color, category.Type, category.ID, category.UserID,
	)
	return err
}

func (r *CategoryRepository) Delete(categoryID, userID string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID)
	return err
}

func (r *CategoryRepository) ExistsByID(categoryID, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)"
	err := r.db.QueryRow(query, categoryID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) CountByUserAndType(userID, categoryType string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM categories WHERE user_id = $1 AND type = $2`,
		userID, categoryType,
	).Scan(&count)
	return count, err
}
