package equipment

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Equipment, error)

	// LogIssue sets the status and appends a pre-formatted line to the
	// maintenance log, reporting whether the equipment exists.
	LogIssue(ctx context.Context, id int, status, noteLine string) (bool, error)

	// UpdateMaintenance applies the non-nil dates plus the status and
	// reports whether a row was touched.
	UpdateMaintenance(ctx context.Context, id int, lastMaintenance, nextMaintenance *string, status string) (bool, error)

	List(ctx context.Context, roomID *int, status *string) ([]Equipment, error)
	ListNeedingMaintenance(ctx context.Context) ([]Equipment, error)
}
