package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hallmate/internal/db"
)

type TokenRepository struct {
	DB *sql.DB
}

func NewTokenRepository(conn *sql.DB) *TokenRepository {
	return &TokenRepository{DB: conn}
}

func (r *TokenRepository) Create(t *db.ResetToken) error {
	_, err := r.DB.Exec(`INSERT INTO reset_tokens (token, email, expires_at, used) VALUES ($1, $2, $3, $4)`,
		t.Token, t.Email, t.ExpiresAt, t.Used)
	if err != nil {
		return fmt.Errorf("error inserting reset token: %w", err)
	}
	return nil
}

// Get returns (nil, nil) when the token is unknown.
func (r *TokenRepository) Get(token string) (*db.ResetToken, error) {
	var t db.ResetToken
	err := r.DB.QueryRow(`SELECT token, email, expires_at, used FROM reset_tokens WHERE token = $1`, token).
		Scan(&t.Token, &t.Email, &t.ExpiresAt, &t.Used)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying reset token: %w", err)
	}
	return &t, nil
}

func (r *TokenRepository) MarkUsed(token string) error {
	_, err := r.DB.Exec(`UPDATE reset_tokens SET used = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error marking reset token used: %w", err)
	}
	return nil
}

// DeleteExpired removes tokens that expired before the given time, along
// with any already-consumed ones.
func (r *TokenRepository) DeleteExpired(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM reset_tokens WHERE expires_at < $1 OR used = TRUE`, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired reset tokens: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading delete result: %w", err)
	}
	return affected, nil
}
