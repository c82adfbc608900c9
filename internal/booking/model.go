package booking

// Booking types tie a room reservation to its reference entity.
const (
	TypePTSession  = "PT Session"
	TypeGroupClass = "Group Class"
)

const (
	StatusBooked    = "Booked"
	StatusCancelled = "Cancelled"
)

type Booking struct {
	ID          int    `db:"booking_id" json:"booking_id"`
	RoomID      int    `db:"room_id" json:"room_id"`
	Date        string `db:"booking_date" json:"booking_date"`
	Time        string `db:"booking_time" json:"booking_time"`
	Type        string `db:"booking_type" json:"booking_type"`
	ReferenceID int    `db:"reference_id" json:"reference_id"`
	Status      string `db:"status" json:"status"`
}

type BookingWithRoom struct {
	Booking
	RoomName string `db:"room_name" json:"room_name"`
}

type BookRoomRequest struct {
	RoomID      int    `json:"room_id" binding:"required"`
	ReferenceID int    `json:"reference_id" binding:"required"`
	Date        string `json:"booking_date" binding:"required"`
	Time        string `json:"booking_time" binding:"required"`
}
