package room

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, capacity int) (*Room, error) {
	query := `
		INSERT INTO rooms (room_name, capacity, status)
		VALUES ($1, $2, 'Available')
		RETURNING room_id, room_name, capacity, status
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, name, capacity)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT room_id, room_name, capacity, status
		FROM rooms
		WHERE room_id = $1
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) List(ctx context.Context) ([]Room, error) {
	query := `
		SELECT room_id, room_name, capacity, status
		FROM rooms
		ORDER BY room_name
	`

	var rooms []Room
	err := r.db.SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	query := `
		UPDATE rooms
		SET status = $1
		WHERE room_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
