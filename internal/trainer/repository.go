package trainer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT trainer_id, name, email, specialization, phone
		FROM trainers
		WHERE trainer_id = $1
	`

	var t Trainer
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) List(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT trainer_id, name, email, specialization, phone
		FROM trainers
		ORDER BY name
	`

	var trainers []Trainer
	if err := r.db.SelectContext(ctx, &trainers, query); err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) SearchMembers(ctx context.Context, nameSearch string, limit int) ([]MemberMatch, error) {
	query := `
		SELECT member_id, name, email
		FROM members
		WHERE LOWER(name) LIKE LOWER($1)
		ORDER BY name
		LIMIT $2
	`

	var matches []MemberMatch
	pattern := fmt.Sprintf("%%%s%%", nameSearch)
	if err := r.db.SelectContext(ctx, &matches, query, pattern, limit); err != nil {
		return nil, err
	}

	return matches, nil
}

func (r *repository) ListMemberGoals(ctx context.Context, memberID, limit int) ([]GoalSummary, error) {
	query := `
		SELECT goal_type, target_value, current_value,
			to_char(target_date, 'YYYY-MM-DD') AS target_date
		FROM fitness_goals
		WHERE member_id = $1 AND status = 'Active'
		ORDER BY target_date
		LIMIT $2
	`

	var goals []GoalSummary
	if err := r.db.SelectContext(ctx, &goals, query, memberID, limit); err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *repository) LatestMemberMetric(ctx context.Context, memberID int) (*MetricSummary, error) {
	query := `
		SELECT metric_type, value,
			to_char(recorded_date, 'YYYY-MM-DD') AS recorded_date
		FROM health_metrics
		WHERE member_id = $1
		ORDER BY health_metrics.recorded_date DESC
		LIMIT 1
	`

	var metric MetricSummary
	err := r.db.GetContext(ctx, &metric, query, memberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &metric, nil
}
