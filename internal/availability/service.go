package availability

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitclub/internal/apperr"
	"fitclub/internal/metrics"
	"fitclub/internal/overlap"
	"fitclub/internal/timeutil"
)

type Service interface {
	// AddWindow records a new weekly availability window and returns its id.
	AddWindow(ctx context.Context, trainerID, dayOfWeek int, startTime, endTime string) (int, error)
	// UpdateWindow merges the provided fields over the stored window,
	// re-checking overlap against the trainer's other windows on that day.
	UpdateWindow(ctx context.Context, id int, startTime, endTime *string) error
	ListWindows(ctx context.Context, trainerID int) ([]Window, error)

	// Covers reports whether some standing window fully contains
	// [time, time+duration) on the requested date's day of week. An
	// unparseable date resolves to false rather than an error.
	Covers(ctx context.Context, trainerID int, date, clock string, durationMinutes int) (bool, error)
	// IsTrainerFree reports whether the trainer has no Scheduled session
	// at the exact (date, time) instant, optionally excluding one session.
	IsTrainerFree(ctx context.Context, trainerID int, date, clock string, excludeSessionID int) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddWindow(ctx context.Context, trainerID, dayOfWeek int, startTime, endTime string) (int, error) {
	start, err := timeutil.ParseTime(startTime)
	if err != nil {
		return 0, err
	}
	end, err := timeutil.ParseTime(endTime)
	if err != nil {
		return 0, err
	}

	if dayOfWeek < 0 || dayOfWeek > 6 {
		return 0, apperr.New(apperr.KindRange, "day of week must be 0-6 (0=Sunday)")
	}

	if !end.After(start) {
		return 0, apperr.New(apperr.KindOrder, "end time must be after start time")
	}

	conflict, err := s.hasOverlap(ctx, trainerID, dayOfWeek, start, end, 0)
	if err != nil {
		return 0, err
	}
	if conflict {
		metrics.RecordConflictRejected("availability")
		return 0, apperr.Newf(apperr.KindConflict,
			"availability overlaps with an existing window on %s", timeutil.DayName(dayOfWeek))
	}

	id, err := s.repo.Create(ctx, trainerID, dayOfWeek, startTime, endTime)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to add availability", err)
	}

	metrics.RecordAvailabilityWindow()
	return id, nil
}

func (s *service) UpdateWindow(ctx context.Context, id int, startTime, endTime *string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.New(apperr.KindNotFound, "availability window not found")
		}
		return apperr.Wrap(apperr.KindPersistence, "failed to load availability window", err)
	}

	if startTime == nil && endTime == nil {
		return apperr.New(apperr.KindFormat, "no updates provided")
	}

	newStart := current.StartTime
	if startTime != nil {
		newStart = *startTime
	}
	newEnd := current.EndTime
	if endTime != nil {
		newEnd = *endTime
	}

	start, err := timeutil.ParseTime(newStart)
	if err != nil {
		return err
	}
	end, err := timeutil.ParseTime(newEnd)
	if err != nil {
		return err
	}

	conflict, err := s.hasOverlap(ctx, current.TrainerID, current.DayOfWeek, start, end, id)
	if err != nil {
		return err
	}
	if conflict {
		metrics.RecordConflictRejected("availability")
		return apperr.New(apperr.KindConflict, "updated availability overlaps with another window")
	}

	if err := s.repo.Update(ctx, id, startTime, endTime); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to update availability", err)
	}
	return nil
}

func (s *service) ListWindows(ctx context.Context, trainerID int) ([]Window, error) {
	return s.repo.ListForTrainer(ctx, trainerID)
}

func (s *service) Covers(ctx context.Context, trainerID int, date, clock string, durationMinutes int) (bool, error) {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return false, nil
	}
	start, err := timeutil.ParseTime(clock)
	if err != nil {
		return false, nil
	}
	end := timeutil.AddMinutes(start, durationMinutes)

	windows, err := s.repo.ListForTrainerDay(ctx, trainerID, timeutil.DayOfWeek(day))
	if err != nil {
		return false, apperr.Wrap(apperr.KindPersistence, "failed to load availability windows", err)
	}

	for _, w := range windows {
		wStart, err := timeutil.ParseTime(w.StartTime)
		if err != nil {
			continue
		}
		wEnd, err := timeutil.ParseTime(w.EndTime)
		if err != nil {
			continue
		}
		if !wStart.After(start) && !wEnd.Before(end) {
			return true, nil
		}
	}

	return false, nil
}

func (s *service) IsTrainerFree(ctx context.Context, trainerID int, date, clock string, excludeSessionID int) (bool, error) {
	busy, err := s.repo.SessionExistsAt(ctx, trainerID, date, clock, excludeSessionID)
	if err != nil {
		return false, apperr.Wrap(apperr.KindPersistence, "failed to check trainer sessions", err)
	}
	return !busy, nil
}

// hasOverlap loads the trainer's windows for the day and applies the
// half-open interval predicate in memory.
func (s *service) hasOverlap(ctx context.Context, trainerID, dayOfWeek int, start, end time.Time, excludeID int) (bool, error) {
	windows, err := s.repo.ListForTrainerDay(ctx, trainerID, dayOfWeek)
	if err != nil {
		return false, apperr.Wrap(apperr.KindPersistence, "failed to load availability windows", err)
	}

	existing := make([]overlap.Interval, 0, len(windows))
	for _, w := range windows {
		wStart, err := timeutil.ParseTime(w.StartTime)
		if err != nil {
			continue
		}
		wEnd, err := timeutil.ParseTime(w.EndTime)
		if err != nil {
			continue
		}
		existing = append(existing, overlap.Interval{ID: w.ID, Start: wStart, End: wEnd})
	}

	candidate := overlap.Interval{Start: start, End: end}
	return overlap.AnyConflict(existing, candidate, excludeID), nil
}
