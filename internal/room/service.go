package room

import (
	"context"

	"fitclub/internal/apperr"
)

type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetRoom(ctx context.Context, id int) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	SetStatus(ctx context.Context, id int, status string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	if req.Capacity <= 0 {
		return nil, apperr.New(apperr.KindRange, "room capacity must be positive")
	}
	return s.repo.Create(ctx, req.Name, req.Capacity)
}

func (s *service) GetRoom(ctx context.Context, id int) (*Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "room not found")
	}
	return room, nil
}

func (s *service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.repo.List(ctx)
}

func (s *service) SetStatus(ctx context.Context, id int, status string) error {
	if !ValidStatus(status) {
		return apperr.Newf(apperr.KindRange, "invalid room status %q", status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to update room status", err)
	}
	if !updated {
		return apperr.New(apperr.KindNotFound, "room not found")
	}
	return nil
}
