package trainer

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Trainer, error)
	List(ctx context.Context) ([]Trainer, error)

	// SearchMembers matches member names case-insensitively on a
	// substring, at most limit rows in name order.
	SearchMembers(ctx context.Context, nameSearch string, limit int) ([]MemberMatch, error)
	ListMemberGoals(ctx context.Context, memberID, limit int) ([]GoalSummary, error)
	LatestMemberMetric(ctx context.Context, memberID int) (*MetricSummary, error)
}
