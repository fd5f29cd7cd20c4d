package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"hallmate/internal/db"
)

// BookingFilter narrows a booking listing. Empty fields are unconstrained;
// set fields are AND-combined and matched by string equality.
type BookingFilter struct {
	UserEmail   string
	BookingDate string
	HallName    string
}

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(conn *sql.DB) *BookingRepository {
	return &BookingRepository{DB: conn}
}

const bookingColumns = `id, hall_name, booking_date, booking_time, start_time, end_time,
	name, email, phone_number, department, event_name, event_purpose, user_email, status, created_at`

func (r *BookingRepository) Find(f BookingFilter) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.UserEmail != "" {
		query += " AND user_email = $" + strconv.Itoa(idx)
		args = append(args, f.UserEmail)
		idx++
	}
	if f.BookingDate != "" {
		query += " AND booking_date = $" + strconv.Itoa(idx)
		args = append(args, f.BookingDate)
		idx++
	}
	if f.HallName != "" {
		query += " AND hall_name = $" + strconv.Itoa(idx)
		args = append(args, f.HallName)
		idx++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindForSlot returns every booking for the exact hall/date pair, regardless
// of status. Rejected bookings still occupy their window until cleared.
func (r *BookingRepository) FindForSlot(hallName, bookingDate string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE hall_name = $1 AND booking_date = $2`
	rows, err := r.DB.Query(query, hallName, bookingDate)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings for slot: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) Insert(b *db.Booking) (int, error) {
	query := `
		INSERT INTO bookings
		(hall_name, booking_date, booking_time, start_time, end_time, name, email, phone_number, department, event_name, event_purpose, user_email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		b.HallName,
		b.BookingDate,
		b.BookingTime,
		b.StartTime,
		b.EndTime,
		b.Name,
		b.Email,
		b.PhoneNumber,
		b.Department,
		b.EventName,
		b.EventPurpose,
		b.UserEmail,
		b.Status,
		b.CreatedAt,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error inserting booking: %w", err)
	}
	return b.ID, nil
}

// UpdateStatus sets the booking status and returns the updated record, or
// (nil, nil) when the id does not exist.
func (r *BookingRepository) UpdateStatus(id int, status string) (*db.Booking, error) {
	query := `UPDATE bookings SET status = $1 WHERE id = $2 RETURNING ` + bookingColumns
	var b db.Booking
	err := r.DB.QueryRow(query, status, id).Scan(
		&b.ID, &b.HallName, &b.BookingDate, &b.BookingTime, &b.StartTime, &b.EndTime,
		&b.Name, &b.Email, &b.PhoneNumber, &b.Department, &b.EventName, &b.EventPurpose,
		&b.UserEmail, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating booking status: %w", err)
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]db.Booking, error) {
	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		err := rows.Scan(
			&b.ID, &b.HallName, &b.BookingDate, &b.BookingTime, &b.StartTime, &b.EndTime,
			&b.Name, &b.Email, &b.PhoneNumber, &b.Department, &b.EventName, &b.EventPurpose,
			&b.UserEmail, &b.Status, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}
