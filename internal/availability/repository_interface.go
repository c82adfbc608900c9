package availability

import "context"

type Repository interface {
	Create(ctx context.Context, trainerID, dayOfWeek int, startTime, endTime string) (int, error)
	GetByID(ctx context.Context, id int) (*Window, error)
	ListForTrainerDay(ctx context.Context, trainerID, dayOfWeek int) ([]Window, error)
	ListForTrainer(ctx context.Context, trainerID int) ([]Window, error)
	Update(ctx context.Context, id int, startTime, endTime *string) error

	// SessionExistsAt reports whether the trainer already has a Scheduled
	// session at the exact (date, time) instant. A positive
	// excludeSessionID removes that session from the check.
	SessionExistsAt(ctx context.Context, trainerID int, date, clock string, excludeSessionID int) (bool, error)
}
