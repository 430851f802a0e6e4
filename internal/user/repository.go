package user

import (
	"database/sql"
	"errors"
)

type Repository interface {
	Save(user *User) error
	FindByID(userID string) (*User, error)
	FindByLoginOrEmail(loginOrEmail string) (*User, error)
	EmailExists(email string) (bool, error)
	LoginExists(login string) (bool, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Save(user *User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (id, email, login, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Login, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *userRepository) FindByID(userID string) (*User, error) {
	var user User
	err := r.db.QueryRow(
		`SELECT id, email, login, password_hash, created_at, updated_at FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Email, &user.Login, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByLoginOrEmail(loginOrEmail string) (*User, error) {
	var user User
	err := r.db.QueryRow(
		`SELECT id, email, login, password_hash, created_at, updated_at FROM users
        WHERE email = $1 OR login = $1`,
		loginOrEmail,
	).Scan(&user.ID, &user.Email, &user.Login, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *userRepository) LoginExists(login string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)`, login).Scan(&exists)
	return exists, err
}
