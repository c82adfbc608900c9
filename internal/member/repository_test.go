package member

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

func TestCreateMember(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("INSERT INTO members").
		WithArgs("Ana", "ana@example.com", "1990-01-15", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"member_id"}).AddRow(7))

	id, err := repo.Create(context.Background(), RegisterRequest{
		Name: "Ana", Email: "ana@example.com", DateOfBirth: "1990-01-15",
	})
	require.NoError(t, err)
	require.Equal(t, 7, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestUpdateProfileBuildsPartialSet(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE members SET phone = $1, address = $2 WHERE member_id = $3")).
		WithArgs("555-0101", "12 Oak St", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateProfile(context.Background(), 7, UpdateProfileRequest{
		Phone:   strPtr("555-0101"),
		Address: strPtr("12 Oak St"),
	})
	require.NoError(t, err)
	require.True(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfileNoRows(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("UPDATE members SET").
		WithArgs("Ana", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateProfile(context.Background(), 99, UpdateProfileRequest{Name: strPtr("Ana")})
	require.NoError(t, err)
	require.False(t, updated)
}

func TestLatestMetricValueMissingIsNil(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("FROM health_metrics").
		WithArgs(7, MetricBodyFat).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, err := repo.LatestMetricValue(context.Background(), 7, MetricBodyFat)
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestCountPastClasses(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("FROM class_registrations cr").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountPastClasses(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 12, count)
}
