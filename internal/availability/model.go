package availability

// Window is a trainer's recurring weekly availability interval for one
// day of week (0=Sunday .. 6=Saturday). Times are canonical HH:MM.
type Window struct {
	ID        int    `db:"availability_id" json:"availability_id"`
	TrainerID int    `db:"trainer_id" json:"trainer_id"`
	DayOfWeek int    `db:"day_of_week" json:"day_of_week"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

type AddWindowRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateWindowRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}
