package trainer

import (
	"fitclub/internal/class"
	"fitclub/internal/session"
)

type Trainer struct {
	ID             int     `db:"trainer_id" json:"trainer_id"`
	Name           string  `db:"name" json:"name"`
	Email          string  `db:"email" json:"email"`
	Specialization *string `db:"specialization" json:"specialization,omitempty"`
	Phone          *string `db:"phone" json:"phone,omitempty"`
}

// ScheduleView is a trainer's upcoming commitments, sessions and classes
// combined.
type ScheduleView struct {
	TrainerID   int                     `json:"trainer_id"`
	TrainerName string                  `json:"trainer_name"`
	Sessions    []session.SessionDetail `json:"sessions"`
	Classes     []class.ClassWithRoom   `json:"classes"`
}

type GoalSummary struct {
	GoalType     string   `db:"goal_type" json:"goal_type"`
	TargetValue  float64  `db:"target_value" json:"target_value"`
	CurrentValue *float64 `db:"current_value" json:"current_value,omitempty"`
	TargetDate   string   `db:"target_date" json:"target_date"`
}

type MetricSummary struct {
	MetricType   string  `db:"metric_type" json:"metric_type"`
	Value        float64 `db:"value" json:"value"`
	RecordedDate string  `db:"recorded_date" json:"recorded_date"`
}

// MemberMatch is one row of a member lookup, with the context a trainer
// wants at a glance.
type MemberMatch struct {
	MemberID     int            `db:"member_id" json:"member_id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	ActiveGoals  []GoalSummary  `json:"active_goals,omitempty"`
	LatestMetric *MetricSummary `json:"latest_metric,omitempty"`
}
