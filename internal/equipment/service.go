package equipment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitclub/internal/apperr"
	"fitclub/internal/timeutil"
)

type Service interface {
	GetEquipment(ctx context.Context, id int) (*Equipment, error)
	// LogIssue marks equipment as faulty and appends a timestamped note
	// to its maintenance log. An empty status defaults to Maintenance.
	LogIssue(ctx context.Context, id int, description, status string) error
	// UpdateMaintenance records a completed or scheduled maintenance.
	// An empty status defaults to Operational.
	UpdateMaintenance(ctx context.Context, id int, req UpdateMaintenanceRequest) error
	ListStatus(ctx context.Context, roomID *int, status *string) ([]Equipment, error)
	// ListNeedingAttention returns faulty equipment plus anything whose
	// next maintenance is due within 30 days.
	ListNeedingAttention(ctx context.Context) ([]Equipment, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) GetEquipment(ctx context.Context, id int) (*Equipment, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "equipment not found")
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load equipment", err)
	}

	if e.MaintenanceNotes != nil {
		e.NoteEntries = ParseNotes(*e.MaintenanceNotes)
	}

	return e, nil
}

func (s *service) LogIssue(ctx context.Context, id int, description, status string) error {
	if status == "" {
		status = StatusMaintenance
	}
	if !validStatus(status, IssueStatuses) {
		return apperr.New(apperr.KindRange, "status must be 'Maintenance' or 'Out of Order'")
	}

	updated, err := s.repo.LogIssue(ctx, id, status, FormatNote(description, s.now()))
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to log equipment issue", err)
	}
	if !updated {
		return apperr.New(apperr.KindNotFound, "equipment not found")
	}

	return nil
}

func (s *service) UpdateMaintenance(ctx context.Context, id int, req UpdateMaintenanceRequest) error {
	status := req.Status
	if status == "" {
		status = StatusOperational
	}
	if !validStatus(status, AllStatuses) {
		return apperr.New(apperr.KindRange, "invalid equipment status")
	}

	if req.LastMaintenance != nil {
		if _, err := timeutil.ParseDate(*req.LastMaintenance); err != nil {
			return err
		}
	}
	if req.NextMaintenance != nil {
		if _, err := timeutil.ParseDate(*req.NextMaintenance); err != nil {
			return err
		}
	}

	updated, err := s.repo.UpdateMaintenance(ctx, id, req.LastMaintenance, req.NextMaintenance, status)
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to update maintenance record", err)
	}
	if !updated {
		return apperr.New(apperr.KindNotFound, "equipment not found")
	}

	return nil
}

func (s *service) ListStatus(ctx context.Context, roomID *int, status *string) ([]Equipment, error) {
	items, err := s.repo.List(ctx, roomID, status)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to list equipment", err)
	}

	for i := range items {
		if items[i].MaintenanceNotes != nil {
			items[i].NoteEntries = ParseNotes(*items[i].MaintenanceNotes)
		}
	}

	return items, nil
}

func (s *service) ListNeedingAttention(ctx context.Context) ([]Equipment, error) {
	items, err := s.repo.ListNeedingMaintenance(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to list equipment", err)
	}

	return items, nil
}
