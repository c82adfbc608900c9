package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fitclub/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, req RegisterRequest) (int, error) {
	query := `
		INSERT INTO members (name, email, date_of_birth, gender, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING member_id
	`

	var id int
	err := r.db.GetContext(ctx, &id, query, req.Name, req.Email, req.DateOfBirth, req.Gender, req.Phone, req.Address)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`
	return db.Exists(ctx, r.db, query, email)
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT member_id, name, email,
			to_char(date_of_birth, 'YYYY-MM-DD') AS date_of_birth,
			gender, phone, address,
			to_char(join_date, 'YYYY-MM-DD') AS join_date
		FROM members
		WHERE member_id = $1
	`

	var m Member
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (bool, error) {
	var sets []string
	var params []interface{}

	add := func(column string, value *string) {
		if value != nil {
			params = append(params, *value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(params)))
		}
	}
	add("name", req.Name)
	add("phone", req.Phone)
	add("address", req.Address)

	if len(sets) == 0 {
		return false, errors.New("no fields to update")
	}

	params = append(params, id)
	query := fmt.Sprintf("UPDATE members SET %s WHERE member_id = $%d", strings.Join(sets, ", "), len(params))

	res, err := r.db.ExecContext(ctx, query, params...)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *repository) AddGoal(ctx context.Context, memberID int, req AddGoalRequest) (int, error) {
	query := `
		INSERT INTO fitness_goals (member_id, goal_type, target_value, current_value, target_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING goal_id
	`

	var id int
	err := r.db.GetContext(ctx, &id, query, memberID, req.GoalType, req.TargetValue, req.CurrentValue, req.TargetDate)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) ListActiveGoals(ctx context.Context, memberID int) ([]FitnessGoal, error) {
	query := `
		SELECT goal_id, member_id, goal_type, target_value, current_value,
			to_char(target_date, 'YYYY-MM-DD') AS target_date, status
		FROM fitness_goals
		WHERE member_id = $1 AND status = 'Active'
		ORDER BY target_date
	`

	var goals []FitnessGoal
	if err := r.db.SelectContext(ctx, &goals, query, memberID); err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *repository) LogMetric(ctx context.Context, memberID int, req LogMetricRequest) (int, error) {
	query := `
		INSERT INTO health_metrics (member_id, metric_type, value, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING metric_id
	`

	var id int
	err := r.db.GetContext(ctx, &id, query, memberID, req.MetricType, req.Value, req.Notes)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) LatestMetricValue(ctx context.Context, memberID int, metricType string) (*float64, error) {
	query := `
		SELECT value FROM health_metrics
		WHERE member_id = $1 AND metric_type = $2
		ORDER BY recorded_date DESC
		LIMIT 1
	`

	var value float64
	err := r.db.GetContext(ctx, &value, query, memberID, metricType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func (r *repository) CountPastClasses(ctx context.Context, memberID int) (int, error) {
	query := `
		SELECT COUNT(*) FROM class_registrations cr
		JOIN group_classes gc ON cr.class_id = gc.class_id
		WHERE cr.member_id = $1 AND gc.class_date < CURRENT_DATE
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, memberID); err != nil {
		return 0, err
	}

	return count, nil
}
