package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hallmate/internal/db"
)

type HallRepository struct {
	DB *sql.DB
}

func NewHallRepository(conn *sql.DB) *HallRepository {
	return &HallRepository{DB: conn}
}

func (r *HallRepository) List() ([]db.Hall, error) {
	rows, err := r.DB.Query(`SELECT id, name, description, capacity, location, image, created_at FROM halls ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error querying halls: %w", err)
	}
	defer rows.Close()

	var halls []db.Hall
	for rows.Next() {
		var h db.Hall
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Capacity, &h.Location, &h.Image, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning hall: %w", err)
		}
		halls = append(halls, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating hall rows: %w", err)
	}
	return halls, nil
}

// GetByName returns (nil, nil) when no hall carries the name.
func (r *HallRepository) GetByName(name string) (*db.Hall, error) {
	return r.getOne(`SELECT id, name, description, capacity, location, image, created_at FROM halls WHERE name = $1`, name)
}

// GetByNameExcluding checks name uniqueness for updates, ignoring the hall
// being updated itself.
func (r *HallRepository) GetByNameExcluding(name string, id int) (*db.Hall, error) {
	return r.getOne(`SELECT id, name, description, capacity, location, image, created_at FROM halls WHERE name = $1 AND id <> $2`, name, id)
}

func (r *HallRepository) getOne(query string, args ...interface{}) (*db.Hall, error) {
	var h db.Hall
	err := r.DB.QueryRow(query, args...).Scan(&h.ID, &h.Name, &h.Description, &h.Capacity, &h.Location, &h.Image, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying hall: %w", err)
	}
	return &h, nil
}

func (r *HallRepository) Insert(h *db.Hall) (int, error) {
	query := `
		INSERT INTO halls (name, description, capacity, location, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query, h.Name, h.Description, h.Capacity, h.Location, h.Image, h.CreatedAt).
		Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error inserting hall: %w", err)
	}
	return h.ID, nil
}

// Update rewrites the descriptive fields and returns the updated hall, or
// (nil, nil) when the id does not exist.
func (r *HallRepository) Update(h *db.Hall) (*db.Hall, error) {
	query := `
		UPDATE halls SET name = $1, description = $2, capacity = $3, location = $4, image = $5
		WHERE id = $6
		RETURNING id, name, description, capacity, location, image, created_at`
	var updated db.Hall
	err := r.DB.QueryRow(query, h.Name, h.Description, h.Capacity, h.Location, h.Image, h.ID).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Capacity, &updated.Location, &updated.Image, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating hall: %w", err)
	}
	return &updated, nil
}

func (r *HallRepository) Delete(id int) (bool, error) {
	result, err := r.DB.Exec(`DELETE FROM halls WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting hall: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading delete result: %w", err)
	}
	return affected > 0, nil
}
