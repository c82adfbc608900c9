package booking

import (
	"context"

	"fitclub/internal/db"
	"fitclub/internal/room"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) CreateBooking(ctx context.Context, roomID int, date, clock, bookingType string, referenceID int) (int, error) {
	query := `
		INSERT INTO room_bookings (room_id, booking_date, booking_time, booking_type, reference_id, status)
		VALUES ($1, $2, $3, $4, $5, 'Booked')
		RETURNING booking_id
	`

	var id int
	err := r.db.GetContext(ctx, &id, query, roomID, date, clock, bookingType, referenceID)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) IsRoomBookedAt(ctx context.Context, roomID int, date, clock string, excludeType string, excludeReferenceID int) (bool, error) {
	if excludeReferenceID > 0 {
		query := `
			SELECT EXISTS(
				SELECT 1 FROM room_bookings
				WHERE room_id = $1 AND booking_date = $2 AND booking_time = $3
				AND status = 'Booked'
				AND NOT (booking_type = $4 AND reference_id = $5)
			)
		`
		return db.Exists(ctx, r.db, query, roomID, date, clock, excludeType, excludeReferenceID)
	}

	query := `
		SELECT EXISTS(
			SELECT 1 FROM room_bookings
			WHERE room_id = $1 AND booking_date = $2 AND booking_time = $3
			AND status = 'Booked'
		)
	`
	return db.Exists(ctx, r.db, query, roomID, date, clock)
}

func (r *repository) UpdateBookingSlot(ctx context.Context, bookingType string, referenceID int, date, clock string) error {
	query := `
		UPDATE room_bookings
		SET booking_date = $1, booking_time = $2
		WHERE reference_id = $3 AND booking_type = $4
	`

	_, err := r.db.ExecContext(ctx, query, date, clock, referenceID, bookingType)
	return err
}

func (r *repository) ListBookings(ctx context.Context, roomID *int, date *string) ([]BookingWithRoom, error) {
	query := `
		SELECT rb.booking_id, rb.room_id,
			to_char(rb.booking_date, 'YYYY-MM-DD') AS booking_date,
			to_char(rb.booking_time, 'HH24:MI') AS booking_time,
			rb.booking_type, rb.reference_id, rb.status, r.room_name
		FROM room_bookings rb
		JOIN rooms r ON rb.room_id = r.room_id
		WHERE ($1::int IS NULL OR rb.room_id = $1)
		AND ($2::date IS NULL OR rb.booking_date = $2)
		ORDER BY rb.booking_date, rb.booking_time
	`

	var bookings []BookingWithRoom
	err := r.db.SelectContext(ctx, &bookings, query, roomID, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListAvailableRooms(ctx context.Context, date, clock string, minCapacity *int) ([]room.Room, error) {
	query := `
		SELECT r.room_id, r.room_name, r.capacity, r.status
		FROM rooms r
		WHERE r.status = 'Available'
		AND r.room_id NOT IN (
			SELECT room_id FROM room_bookings
			WHERE booking_date = $1 AND booking_time = $2 AND status = 'Booked'
		)
		AND ($3::int IS NULL OR r.capacity >= $3)
		ORDER BY r.capacity
	`

	var rooms []room.Room
	err := r.db.SelectContext(ctx, &rooms, query, date, clock, minCapacity)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) SessionExists(ctx context.Context, sessionID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM personal_training_sessions WHERE session_id = $1
		)
	`
	return db.Exists(ctx, r.db, query, sessionID)
}

func (r *repository) SetSessionRoom(ctx context.Context, sessionID, roomID int) error {
	query := `
		UPDATE personal_training_sessions
		SET room_id = $1
		WHERE session_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, roomID, sessionID)
	return err
}
