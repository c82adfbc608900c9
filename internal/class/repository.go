package class

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

func (r *repository) GetByID(ctx context.Context, id int) (*GroupClass, error) {
	query := `
		SELECT class_id, class_name, description,
			to_char(class_date, 'YYYY-MM-DD') AS class_date,
			to_char(class_time, 'HH24:MI') AS class_time,
			duration_minutes, trainer_id, room_id, capacity, current_enrollment, status
		FROM group_classes
		WHERE class_id = $1
	`

	var cls GroupClass
	err := r.db.GetContext(ctx, &cls, query, id)
	if err != nil {
		return nil, err
	}

	return &cls, nil
}

func (r *repository) UpdateRoom(ctx context.Context, classID, roomID int) error {
	query := `
		UPDATE group_classes
		SET room_id = $1
		WHERE class_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, roomID, classID)
	return err
}

func (r *repository) ListUpcomingByTrainer(ctx context.Context, trainerID int) ([]ClassWithRoom, error) {
	query := `
		SELECT gc.class_id, gc.class_name,
			to_char(gc.class_date, 'YYYY-MM-DD') AS class_date,
			to_char(gc.class_time, 'HH24:MI') AS class_time,
			gc.duration_minutes, gc.capacity, gc.current_enrollment, r.room_name
		FROM group_classes gc
		LEFT JOIN rooms r ON gc.room_id = r.room_id
		WHERE gc.trainer_id = $1
		AND gc.class_date >= CURRENT_DATE
		AND gc.status = 'Scheduled'
		ORDER BY gc.class_date, gc.class_time
	`

	var classes []ClassWithRoom
	err := r.db.SelectContext(ctx, &classes, query, trainerID)
	if err != nil {
		return nil, err
	}

	return classes, nil
}
