package session

import (
	"context"
	"database/sql"
	"errors"

	"fitclub/internal/apperr"
	"fitclub/internal/availability"
	"fitclub/internal/booking"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"
	"fitclub/internal/timeutil"
)

// Notifier is the slice of the email service scheduling needs.
type Notifier interface {
	SendSessionConfirmation(ctx context.Context, email, name, trainerName, date, time string) error
	SendSessionReschedule(ctx context.Context, email, name, date, time string) error
}

type Service interface {
	// Schedule books a PT session, checking the trainer's availability
	// windows, the trainer's existing sessions and, when a room is
	// requested, the room's bookings at the same instant.
	Schedule(ctx context.Context, req ScheduleRequest) (int, error)
	// Reschedule moves an existing session to a new slot, re-running the
	// same checks while ignoring the session's own current slot.
	Reschedule(ctx context.Context, sessionID int, date, clock string) error
	GetSession(ctx context.Context, id int) (*Session, error)
	ListUpcomingByMember(ctx context.Context, memberID, limit int) ([]SessionDetail, error)
	ListUpcomingByTrainer(ctx context.Context, trainerID int) ([]SessionDetail, error)
}

type service struct {
	repo         Repository
	availability availability.Service
	bookings     booking.Repository
	notifier     Notifier
}

func NewService(repo Repository, avail availability.Service, bookings booking.Repository, notifier Notifier) Service {
	return &service{repo: repo, availability: avail, bookings: bookings, notifier: notifier}
}

func (s *service) Schedule(ctx context.Context, req ScheduleRequest) (int, error) {
	if _, err := timeutil.ParseDate(req.Date); err != nil {
		return 0, err
	}
	if _, err := timeutil.ParseTime(req.Time); err != nil {
		return 0, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	covered, err := s.availability.Covers(ctx, req.TrainerID, req.Date, req.Time, duration)
	if err != nil {
		return 0, err
	}
	if !covered {
		return 0, apperr.New(apperr.KindUnavailable, "trainer is not available at this time")
	}

	free, err := s.availability.IsTrainerFree(ctx, req.TrainerID, req.Date, req.Time, 0)
	if err != nil {
		return 0, err
	}
	if !free {
		metrics.RecordConflictRejected("trainer")
		return 0, apperr.New(apperr.KindConflict, "trainer already has a session at this time")
	}

	if req.RoomID != nil {
		booked, err := s.bookings.IsRoomBookedAt(ctx, *req.RoomID, req.Date, req.Time, "", 0)
		if err != nil {
			return 0, apperr.Wrap(apperr.KindPersistence, "failed to check room bookings", err)
		}
		if booked {
			metrics.RecordConflictRejected("room")
			return 0, apperr.New(apperr.KindConflict, "room is not available at this time")
		}
	}

	sessionID, err := s.repo.Create(ctx, req.MemberID, req.TrainerID, req.Date, req.Time, duration, req.RoomID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to create session", err)
	}

	if req.RoomID != nil {
		// Independent statement: a failure here leaves the session committed.
		if _, err := s.bookings.CreateBooking(ctx, *req.RoomID, req.Date, req.Time, booking.TypePTSession, sessionID); err != nil {
			return 0, apperr.Wrap(apperr.KindPersistence, "failed to book room for session", err)
		}
		metrics.RecordRoomBooking(booking.TypePTSession)
	}

	metrics.RecordSessionScheduled()
	s.notifyConfirmation(ctx, req.MemberID, req.TrainerID, req.Date, req.Time)

	return sessionID, nil
}

func (s *service) Reschedule(ctx context.Context, sessionID int, date, clock string) error {
	if _, err := timeutil.ParseDate(date); err != nil {
		return err
	}
	if _, err := timeutil.ParseTime(clock); err != nil {
		return err
	}

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.New(apperr.KindNotFound, "session not found")
		}
		return apperr.Wrap(apperr.KindPersistence, "failed to load session", err)
	}

	covered, err := s.availability.Covers(ctx, sess.TrainerID, date, clock, sess.DurationMinutes)
	if err != nil {
		return err
	}
	if !covered {
		return apperr.New(apperr.KindUnavailable, "trainer is not available at this time")
	}

	free, err := s.availability.IsTrainerFree(ctx, sess.TrainerID, date, clock, sessionID)
	if err != nil {
		return err
	}
	if !free {
		metrics.RecordConflictRejected("trainer")
		return apperr.New(apperr.KindConflict, "trainer already has a session at this time")
	}

	if sess.RoomID != nil {
		// The session's own booking must not block its move.
		booked, err := s.bookings.IsRoomBookedAt(ctx, *sess.RoomID, date, clock, booking.TypePTSession, sessionID)
		if err != nil {
			return apperr.Wrap(apperr.KindPersistence, "failed to check room bookings", err)
		}
		if booked {
			metrics.RecordConflictRejected("room")
			return apperr.New(apperr.KindConflict, "room is not available at this time")
		}
	}

	if err := s.repo.UpdateSlot(ctx, sessionID, date, clock); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to update session", err)
	}

	if sess.RoomID != nil {
		if err := s.bookings.UpdateBookingSlot(ctx, booking.TypePTSession, sessionID, date, clock); err != nil {
			return apperr.Wrap(apperr.KindPersistence, "failed to move room booking", err)
		}
	}

	metrics.RecordSessionRescheduled()
	s.notifyReschedule(ctx, sess.MemberID, sess.TrainerID, date, clock)

	return nil
}

func (s *service) GetSession(ctx context.Context, id int) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "session not found")
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load session", err)
	}
	return sess, nil
}

func (s *service) ListUpcomingByMember(ctx context.Context, memberID, limit int) ([]SessionDetail, error) {
	return s.repo.ListUpcomingByMember(ctx, memberID, limit)
}

func (s *service) ListUpcomingByTrainer(ctx context.Context, trainerID int) ([]SessionDetail, error) {
	return s.repo.ListUpcomingByTrainer(ctx, trainerID)
}

// Notification failures never fail the scheduling call.
func (s *service) notifyConfirmation(ctx context.Context, memberID, trainerID int, date, clock string) {
	if s.notifier == nil {
		return
	}

	contact, err := s.repo.GetContact(ctx, memberID, trainerID)
	if err != nil {
		logger.Errorf("Failed to load contact for session confirmation: %v", err)
		return
	}

	if err := s.notifier.SendSessionConfirmation(ctx, contact.MemberEmail, contact.MemberName, contact.TrainerName, date, clock); err != nil {
		logger.Errorf("Failed to queue session confirmation: %v", err)
	}
}

func (s *service) notifyReschedule(ctx context.Context, memberID, trainerID int, date, clock string) {
	if s.notifier == nil {
		return
	}

	contact, err := s.repo.GetContact(ctx, memberID, trainerID)
	if err != nil {
		logger.Errorf("Failed to load contact for reschedule notice: %v", err)
		return
	}

	if err := s.notifier.SendSessionReschedule(ctx, contact.MemberEmail, contact.MemberName, date, clock); err != nil {
		logger.Errorf("Failed to queue reschedule notice: %v", err)
	}
}
