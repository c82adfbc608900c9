package session

import "context"

type Repository interface {
	Create(ctx context.Context, memberID, trainerID int, date, clock string, durationMinutes int, roomID *int) (int, error)
	GetByID(ctx context.Context, id int) (*Session, error)
	UpdateSlot(ctx context.Context, id int, date, clock string) error

	ListUpcomingByMember(ctx context.Context, memberID, limit int) ([]SessionDetail, error)
	ListUpcomingByTrainer(ctx context.Context, trainerID int) ([]SessionDetail, error)

	// GetContact resolves the member and trainer names plus the member's
	// email address for notification messages.
	GetContact(ctx context.Context, memberID, trainerID int) (*Contact, error)
}
