package session

const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// DefaultDurationMinutes applies when a schedule request omits the duration.
const DefaultDurationMinutes = 60

type Session struct {
	ID              int    `db:"session_id" json:"session_id"`
	MemberID        int    `db:"member_id" json:"member_id"`
	TrainerID       int    `db:"trainer_id" json:"trainer_id"`
	Date            string `db:"session_date" json:"session_date"`
	Time            string `db:"session_time" json:"session_time"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes"`
	RoomID          *int   `db:"room_id" json:"room_id,omitempty"`
	Status          string `db:"status" json:"status"`
}

// SessionDetail joins in the names a schedule listing shows.
type SessionDetail struct {
	ID              int     `db:"session_id" json:"session_id"`
	Date            string  `db:"session_date" json:"session_date"`
	Time            string  `db:"session_time" json:"session_time"`
	DurationMinutes int     `db:"duration_minutes" json:"duration_minutes"`
	MemberName      string  `db:"member_name" json:"member_name"`
	TrainerName     string  `db:"trainer_name" json:"trainer_name"`
	RoomName        *string `db:"room_name" json:"room_name,omitempty"`
	Status          string  `db:"status" json:"status"`
}

// Contact is what the confirmation email needs about the participants.
type Contact struct {
	MemberName  string `db:"member_name"`
	MemberEmail string `db:"member_email"`
	TrainerName string `db:"trainer_name"`
}

type ScheduleRequest struct {
	MemberID        int    `json:"member_id" binding:"required"`
	TrainerID       int    `json:"trainer_id" binding:"required"`
	Date            string `json:"session_date" binding:"required"`
	Time            string `json:"session_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	RoomID          *int   `json:"room_id"`
}

type RescheduleRequest struct {
	Date string `json:"session_date" binding:"required"`
	Time string `json:"session_time" binding:"required"`
}
