package class

type GroupClass struct {
	ID                int     `db:"class_id" json:"class_id"`
	Name              string  `db:"class_name" json:"class_name"`
	Description       *string `db:"description" json:"description,omitempty"`
	Date              string  `db:"class_date" json:"class_date"`
	Time              string  `db:"class_time" json:"class_time"`
	DurationMinutes   int     `db:"duration_minutes" json:"duration_minutes"`
	TrainerID         int     `db:"trainer_id" json:"trainer_id"`
	RoomID            *int    `db:"room_id" json:"room_id,omitempty"`
	Capacity          int     `db:"capacity" json:"capacity"`
	CurrentEnrollment int     `db:"current_enrollment" json:"current_enrollment"`
	Status            string  `db:"status" json:"status"`
}

// ClassWithRoom is the trainer schedule view row.
type ClassWithRoom struct {
	ID                int     `db:"class_id" json:"class_id"`
	Name              string  `db:"class_name" json:"class_name"`
	Date              string  `db:"class_date" json:"class_date"`
	Time              string  `db:"class_time" json:"class_time"`
	DurationMinutes   int     `db:"duration_minutes" json:"duration_minutes"`
	Capacity          int     `db:"capacity" json:"capacity"`
	CurrentEnrollment int     `db:"current_enrollment" json:"current_enrollment"`
	RoomName          *string `db:"room_name" json:"room_name,omitempty"`
}
