package booking

import (
	"context"

	"fitclub/internal/room"
)

type Repository interface {
	CreateBooking(ctx context.Context, roomID int, date, clock, bookingType string, referenceID int) (int, error)

	// IsRoomBookedAt reports whether an active booking occupies the exact
	// (room, date, time) instant. When excludeType/excludeReferenceID are
	// set, the booking belonging to that reference entity is ignored, so a
	// reschedule does not conflict with its own booking.
	IsRoomBookedAt(ctx context.Context, roomID int, date, clock string, excludeType string, excludeReferenceID int) (bool, error)

	UpdateBookingSlot(ctx context.Context, bookingType string, referenceID int, date, clock string) error

	ListBookings(ctx context.Context, roomID *int, date *string) ([]BookingWithRoom, error)
	ListAvailableRooms(ctx context.Context, date, clock string, minCapacity *int) ([]room.Room, error)

	SessionExists(ctx context.Context, sessionID int) (bool, error)
	SetSessionRoom(ctx context.Context, sessionID, roomID int) error
}
