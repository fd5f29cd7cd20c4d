package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hallmate/internal/db"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(conn *sql.DB) *UserRepository {
	return &UserRepository{DB: conn}
}

// GetByEmail returns (nil, nil) when no user carries the email.
func (r *UserRepository) GetByEmail(email string) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(`SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(u *db.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// List returns all users. Password hashes are scanned but carry a json:"-"
// tag, so they never leave the process.
func (r *UserRepository) List() ([]db.User, error) {
	rows, err := r.DB.Query(`SELECT id, name, email, password_hash, role, created_at FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating user rows: %w", err)
	}
	return users, nil
}

func (r *UserRepository) UpdatePassword(email, passwordHash string) error {
	result, err := r.DB.Exec(`UPDATE users SET password_hash = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no user with email %s", email)
	}
	return nil
}
