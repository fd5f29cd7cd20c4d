package db

import (
	"database/sql"
	"fmt"
)

const createBookingsTableSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    hall_name TEXT NOT NULL,
    booking_date TEXT NOT NULL,
    booking_time TEXT NOT NULL DEFAULT '',
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone_number TEXT NOT NULL DEFAULT '',
    department TEXT NOT NULL DEFAULT '',
    event_name TEXT NOT NULL DEFAULT '',
    event_purpose TEXT NOT NULL DEFAULT '',
    user_email TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'pending',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createBookingsIndexSQL = `
CREATE INDEX IF NOT EXISTS idx_bookings_hall_date ON bookings (hall_name, booking_date);`

const createHallsTableSQL = `
CREATE TABLE IF NOT EXISTS halls (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL,
    capacity TEXT NOT NULL,
    location TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createResetTokensTableSQL = `
CREATE TABLE IF NOT EXISTS reset_tokens (
    token UUID PRIMARY KEY,
    email TEXT NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL,
    used BOOLEAN NOT NULL DEFAULT FALSE
);`

// Migrate creates the schema if it does not exist. Statements are idempotent
// so the server can run it on every start.
func Migrate(conn *sql.DB) error {
	stmts := []string{
		createBookingsTableSQL,
		createBookingsIndexSQL,
		createHallsTableSQL,
		createUsersTableSQL,
		createResetTokensTableSQL,
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
