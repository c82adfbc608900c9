package booking

import (
	"context"
	"database/sql"
	"errors"

	"fitclub/internal/apperr"
	"fitclub/internal/class"
	"fitclub/internal/metrics"
	"fitclub/internal/room"
	"fitclub/internal/timeutil"
)

type Service interface {
	// BookRoomForSession reserves a room for an existing PT session and
	// points the session at the room. Checks run in a fixed order: format,
	// session existence, double-booking, room status.
	BookRoomForSession(ctx context.Context, roomID, sessionID int, date, clock string) (int, error)
	// BookRoomForClass additionally gates on room capacity >= class
	// capacity, checked before the double-booking lookup.
	BookRoomForClass(ctx context.Context, roomID, classID int, date, clock string) (int, error)
	ListBookings(ctx context.Context, roomID *int, date *string) ([]BookingWithRoom, error)
	ListAvailableRooms(ctx context.Context, date, clock string, minCapacity *int) ([]room.Room, error)
}

type service struct {
	repo      Repository
	roomRepo  room.Repository
	classRepo class.Repository
}

func NewService(repo Repository, roomRepo room.Repository, classRepo class.Repository) Service {
	return &service{
		repo:      repo,
		roomRepo:  roomRepo,
		classRepo: classRepo,
	}
}

func (s *service) BookRoomForSession(ctx context.Context, roomID, sessionID int, date, clock string) (int, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return 0, err
	}
	if _, err := timeutil.ParseTime(clock); err != nil {
		return 0, err
	}

	exists, err := s.repo.SessionExists(ctx, sessionID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to look up session", err)
	}
	if !exists {
		return 0, apperr.New(apperr.KindNotFound, "PT session not found")
	}

	booked, err := s.repo.IsRoomBookedAt(ctx, roomID, date, clock, "", 0)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to check room bookings", err)
	}
	if booked {
		metrics.RecordConflictRejected("room")
		return 0, apperr.New(apperr.KindConflict, "room is already booked at this time")
	}

	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.New(apperr.KindNotFound, "room not found")
		}
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to load room", err)
	}
	if rm.Status != room.StatusAvailable {
		return 0, apperr.Newf(apperr.KindUnavailable, "room is currently %s", rm.Status)
	}

	bookingID, err := s.repo.CreateBooking(ctx, roomID, date, clock, TypePTSession, sessionID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to create booking", err)
	}

	// Independent statement: a failure here leaves the booking committed.
	if err := s.repo.SetSessionRoom(ctx, sessionID, roomID); err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to attach room to session", err)
	}

	metrics.RecordRoomBooking(TypePTSession)
	return bookingID, nil
}

func (s *service) BookRoomForClass(ctx context.Context, roomID, classID int, date, clock string) (int, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return 0, err
	}
	if _, err := timeutil.ParseTime(clock); err != nil {
		return 0, err
	}

	cls, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.New(apperr.KindNotFound, "group class not found")
		}
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to load class", err)
	}

	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.New(apperr.KindNotFound, "room not found")
		}
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to load room", err)
	}

	// Capacity gate precedes the conflict check: a room that is both too
	// small and already booked reports the capacity failure.
	if rm.Capacity < cls.Capacity {
		return 0, apperr.Newf(apperr.KindCapacity,
			"room capacity (%d) is less than class capacity (%d)", rm.Capacity, cls.Capacity)
	}

	booked, err := s.repo.IsRoomBookedAt(ctx, roomID, date, clock, "", 0)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to check room bookings", err)
	}
	if booked {
		metrics.RecordConflictRejected("room")
		return 0, apperr.New(apperr.KindConflict, "room is already booked at this time")
	}

	if rm.Status != room.StatusAvailable {
		return 0, apperr.Newf(apperr.KindUnavailable, "room is currently %s", rm.Status)
	}

	bookingID, err := s.repo.CreateBooking(ctx, roomID, date, clock, TypeGroupClass, classID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to create booking", err)
	}

	if err := s.classRepo.UpdateRoom(ctx, classID, roomID); err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to attach room to class", err)
	}

	metrics.RecordRoomBooking(TypeGroupClass)
	return bookingID, nil
}

func (s *service) ListBookings(ctx context.Context, roomID *int, date *string) ([]BookingWithRoom, error) {
	return s.repo.ListBookings(ctx, roomID, date)
}

func (s *service) ListAvailableRooms(ctx context.Context, date, clock string, minCapacity *int) ([]room.Room, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, err
	}
	if _, err := timeutil.ParseTime(clock); err != nil {
		return nil, err
	}
	return s.repo.ListAvailableRooms(ctx, date, clock, minCapacity)
}
