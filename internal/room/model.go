package room

// Room operational statuses. Admin operations are the only writer.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusClosed      = "Closed"
)

type Room struct {
	ID       int    `db:"room_id" json:"room_id"`
	Name     string `db:"room_name" json:"room_name"`
	Capacity int    `db:"capacity" json:"capacity"`
	Status   string `db:"status" json:"status"`
}

type CreateRoomRequest struct {
	Name     string `json:"room_name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusMaintenance || s == StatusClosed
}
