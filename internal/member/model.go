package member

import "fitclub/internal/session"

type Member struct {
	ID          int     `db:"member_id" json:"member_id"`
	Name        string  `db:"name" json:"name"`
	Email       string  `db:"email" json:"email"`
	DateOfBirth string  `db:"date_of_birth" json:"date_of_birth"`
	Gender      *string `db:"gender" json:"gender,omitempty"`
	Phone       *string `db:"phone" json:"phone,omitempty"`
	Address     *string `db:"address" json:"address,omitempty"`
	JoinDate    string  `db:"join_date" json:"join_date"`
}

type FitnessGoal struct {
	ID           int      `db:"goal_id" json:"goal_id"`
	MemberID     int      `db:"member_id" json:"member_id"`
	GoalType     string   `db:"goal_type" json:"goal_type"`
	TargetValue  float64  `db:"target_value" json:"target_value"`
	CurrentValue *float64 `db:"current_value" json:"current_value,omitempty"`
	TargetDate   string   `db:"target_date" json:"target_date"`
	Status       string   `db:"status" json:"status"`
}

type HealthMetric struct {
	ID           int      `db:"metric_id" json:"metric_id"`
	MemberID     int      `db:"member_id" json:"member_id"`
	MetricType   string   `db:"metric_type" json:"metric_type"`
	Value        float64  `db:"value" json:"value"`
	Notes        *string  `db:"notes" json:"notes,omitempty"`
	RecordedDate string   `db:"recorded_date" json:"recorded_date"`
}

// LatestMetrics carries the newest reading per tracked metric type.
type LatestMetrics struct {
	Weight    *float64 `json:"weight,omitempty"`
	HeartRate *float64 `json:"heart_rate,omitempty"`
	BodyFat   *float64 `json:"body_fat,omitempty"`
}

type Dashboard struct {
	MemberID         int                     `json:"member_id"`
	Name             string                  `json:"name"`
	Latest           LatestMetrics           `json:"latest_metrics"`
	ActiveGoals      []FitnessGoal           `json:"active_goals"`
	PastClassCount   int                     `json:"past_class_count"`
	UpcomingSessions []session.SessionDetail `json:"upcoming_sessions"`
}

type RegisterRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	DateOfBirth string  `json:"date_of_birth" binding:"required"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type AddGoalRequest struct {
	GoalType     string   `json:"goal_type" binding:"required"`
	TargetValue  float64  `json:"target_value" binding:"required"`
	CurrentValue *float64 `json:"current_value"`
	TargetDate   string   `json:"target_date" binding:"required"`
}

type LogMetricRequest struct {
	MetricType string   `json:"metric_type" binding:"required"`
	Value      float64  `json:"value" binding:"required"`
	Notes      *string  `json:"notes"`
}
