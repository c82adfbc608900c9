package availability

import (
	"context"

	"fitclub/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, trainerID, dayOfWeek int, startTime, endTime string) (int, error) {
	query := `
		INSERT INTO trainer_availability (trainer_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING availability_id
	`

	var id int
	err := r.db.GetContext(ctx, &id, query, trainerID, dayOfWeek, startTime, endTime)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Window, error) {
	query := `
		SELECT availability_id, trainer_id, day_of_week,
			to_char(start_time, 'HH24:MI') AS start_time,
			to_char(end_time, 'HH24:MI') AS end_time
		FROM trainer_availability
		WHERE availability_id = $1
	`

	var w Window
	err := r.db.GetContext(ctx, &w, query, id)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *repository) ListForTrainerDay(ctx context.Context, trainerID, dayOfWeek int) ([]Window, error) {
	query := `
		SELECT availability_id, trainer_id, day_of_week,
			to_char(start_time, 'HH24:MI') AS start_time,
			to_char(end_time, 'HH24:MI') AS end_time
		FROM trainer_availability
		WHERE trainer_id = $1 AND day_of_week = $2
		ORDER BY start_time
	`

	var windows []Window
	err := r.db.SelectContext(ctx, &windows, query, trainerID, dayOfWeek)
	if err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *repository) ListForTrainer(ctx context.Context, trainerID int) ([]Window, error) {
	query := `
		SELECT availability_id, trainer_id, day_of_week,
			to_char(start_time, 'HH24:MI') AS start_time,
			to_char(end_time, 'HH24:MI') AS end_time
		FROM trainer_availability
		WHERE trainer_id = $1
		ORDER BY day_of_week, start_time
	`

	var windows []Window
	err := r.db.SelectContext(ctx, &windows, query, trainerID)
	if err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *repository) Update(ctx context.Context, id int, startTime, endTime *string) error {
	query := `
		UPDATE trainer_availability
		SET start_time = COALESCE($1, start_time),
			end_time = COALESCE($2, end_time)
		WHERE availability_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, startTime, endTime, id)
	return err
}

func (r *repository) SessionExistsAt(ctx context.Context, trainerID int, date, clock string, excludeSessionID int) (bool, error) {
	if excludeSessionID > 0 {
		query := `
			SELECT EXISTS(
				SELECT 1 FROM personal_training_sessions
				WHERE trainer_id = $1 AND session_date = $2 AND session_time = $3
				AND status = 'Scheduled' AND session_id != $4
			)
		`
		return db.Exists(ctx, r.db, query, trainerID, date, clock, excludeSessionID)
	}

	query := `
		SELECT EXISTS(
			SELECT 1 FROM personal_training_sessions
			WHERE trainer_id = $1 AND session_date = $2 AND session_time = $3
			AND status = 'Scheduled'
		)
	`
	return db.Exists(ctx, r.db, query, trainerID, date, clock)
}
