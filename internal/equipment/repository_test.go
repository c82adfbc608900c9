package equipment

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestLogIssueAppendsToLog(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("UPDATE equipment").
		WithArgs(StatusMaintenance, "belt slipping (Logged: 2024-06-01 10:30:00)", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.LogIssue(context.Background(), 3, StatusMaintenance, "belt slipping (Logged: 2024-06-01 10:30:00)")
	require.NoError(t, err)
	require.True(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMaintenancePartialSet(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	next := "2024-09-01"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET next_maintenance = $1, status = $2 WHERE equipment_id = $3")).
		WithArgs(next, StatusOperational, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateMaintenance(context.Background(), 3, nil, &next, StatusOperational)
	require.NoError(t, err)
	require.True(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListNeedingMaintenanceOrdering(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{"equipment_id", "equipment_name", "room_id", "room_name", "status", "last_maintenance", "next_maintenance", "maintenance_notes"}).
		AddRow(5, "Bike 3", nil, nil, StatusOutOfOrder, nil, nil, nil).
		AddRow(3, "Treadmill 2", 1, "Cardio Zone", StatusMaintenance, "2024-05-01", "2024-06-15", nil)

	mock.ExpectQuery("INTERVAL '30 days'").WillReturnRows(rows)

	items, err := repo.ListNeedingMaintenance(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, StatusOutOfOrder, items[0].Status)
}
