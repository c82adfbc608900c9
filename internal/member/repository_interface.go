package member

import "context"

type Repository interface {
	Create(ctx context.Context, req RegisterRequest) (int, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int) (*Member, error)

	// UpdateProfile applies only the non-nil fields and reports whether a
	// row was touched.
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (bool, error)

	AddGoal(ctx context.Context, memberID int, req AddGoalRequest) (int, error)
	ListActiveGoals(ctx context.Context, memberID int) ([]FitnessGoal, error)

	LogMetric(ctx context.Context, memberID int, req LogMetricRequest) (int, error)
	LatestMetricValue(ctx context.Context, memberID int, metricType string) (*float64, error)

	CountPastClasses(ctx context.Context, memberID int) (int, error)
}
