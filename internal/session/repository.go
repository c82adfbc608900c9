package session

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, memberID, trainerID int, date, clock string, durationMinutes int, roomID *int) (int, error) {
	query := `
		INSERT INTO personal_training_sessions
		(member_id, trainer_id, session_date, session_time, duration_minutes, room_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING session_id
	`

	var id int
	err := r.db.GetContext(ctx, &id, query, memberID, trainerID, date, clock, durationMinutes, roomID)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Session, error) {
	query := `
		SELECT session_id, member_id, trainer_id,
			to_char(session_date, 'YYYY-MM-DD') AS session_date,
			to_char(session_time, 'HH24:MI') AS session_time,
			duration_minutes, room_id, status
		FROM personal_training_sessions
		WHERE session_id = $1
	`

	var s Session
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) UpdateSlot(ctx context.Context, id int, date, clock string) error {
	query := `
		UPDATE personal_training_sessions
		SET session_date = $1, session_time = $2
		WHERE session_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, date, clock, id)
	return err
}

func (r *repository) ListUpcomingByMember(ctx context.Context, memberID, limit int) ([]SessionDetail, error) {
	query := `
		SELECT s.session_id,
			to_char(s.session_date, 'YYYY-MM-DD') AS session_date,
			to_char(s.session_time, 'HH24:MI') AS session_time,
			s.duration_minutes, m.name AS member_name, t.name AS trainer_name,
			r.room_name, s.status
		FROM personal_training_sessions s
		JOIN members m ON s.member_id = m.member_id
		JOIN trainers t ON s.trainer_id = t.trainer_id
		LEFT JOIN rooms r ON s.room_id = r.room_id
		WHERE s.member_id = $1
		AND s.session_date >= CURRENT_DATE
		AND s.status = 'Scheduled'
		ORDER BY s.session_date, s.session_time
		LIMIT $2
	`

	var sessions []SessionDetail
	if err := r.db.SelectContext(ctx, &sessions, query, memberID, limit); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) ListUpcomingByTrainer(ctx context.Context, trainerID int) ([]SessionDetail, error) {
	query := `
		SELECT s.session_id,
			to_char(s.session_date, 'YYYY-MM-DD') AS session_date,
			to_char(s.session_time, 'HH24:MI') AS session_time,
			s.duration_minutes, m.name AS member_name, t.name AS trainer_name,
			r.room_name, s.status
		FROM personal_training_sessions s
		JOIN members m ON s.member_id = m.member_id
		JOIN trainers t ON s.trainer_id = t.trainer_id
		LEFT JOIN rooms r ON s.room_id = r.room_id
		WHERE s.trainer_id = $1
		AND s.session_date >= CURRENT_DATE
		AND s.status = 'Scheduled'
		ORDER BY s.session_date, s.session_time
	`

	var sessions []SessionDetail
	if err := r.db.SelectContext(ctx, &sessions, query, trainerID); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) GetContact(ctx context.Context, memberID, trainerID int) (*Contact, error) {
	query := `
		SELECT m.name AS member_name, m.email AS member_email, t.name AS trainer_name
		FROM members m, trainers t
		WHERE m.member_id = $1 AND t.trainer_id = $2
	`

	var c Contact
	if err := r.db.GetContext(ctx, &c, query, memberID, trainerID); err != nil {
		return nil, err
	}

	return &c, nil
}
