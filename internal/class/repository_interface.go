package class

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*GroupClass, error)
	UpdateRoom(ctx context.Context, classID, roomID int) error
	ListUpcomingByTrainer(ctx context.Context, trainerID int) ([]ClassWithRoom, error)
}
