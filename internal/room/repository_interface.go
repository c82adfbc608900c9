package room

import "context"

type Repository interface {
	Create(ctx context.Context, name string, capacity int) (*Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
	List(ctx context.Context) ([]Room, error)
	UpdateStatus(ctx context.Context, id int, status string) (bool, error)
}
