package availability

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

func TestCreateWindow(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trainer_availability (trainer_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4) RETURNING availability_id")).
		WithArgs(3, 1, "09:00", "12:00").
		WillReturnRows(sqlmock.NewRows([]string{"availability_id"}).AddRow(11))

	id, err := repo.Create(context.Background(), 3, 1, "09:00", "12:00")
	require.NoError(t, err)
	require.Equal(t, 11, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{"availability_id", "trainer_id", "day_of_week", "start_time", "end_time"}).
		AddRow(11, 3, 1, "09:00", "12:00")

	mock.ExpectQuery("SELECT availability_id, trainer_id, day_of_week").
		WithArgs(11).
		WillReturnRows(rows)

	w, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	require.Equal(t, 3, w.TrainerID)
	require.Equal(t, "09:00", w.StartTime)
	require.Equal(t, "12:00", w.EndTime)
}

func TestListForTrainerDay(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{"availability_id", "trainer_id", "day_of_week", "start_time", "end_time"}).
		AddRow(1, 3, 1, "09:00", "12:00").
		AddRow(2, 3, 1, "14:00", "18:00")

	mock.ExpectQuery("SELECT availability_id, trainer_id, day_of_week").
		WithArgs(3, 1).
		WillReturnRows(rows)

	windows, err := repo.ListForTrainerDay(context.Background(), 3, 1)
	require.NoError(t, err)
	require.Len(t, windows, 2)
}

func TestUpdateWindowPersistsProvidedColumns(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	newEnd := "13:00"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trainer_availability SET start_time = COALESCE($1, start_time), end_time = COALESCE($2, end_time) WHERE availability_id = $3")).
		WithArgs(nil, &newEnd, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 11, nil, &newEnd)
	require.NoError(t, err)
}

func TestSessionExistsAt(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(3, "2024-06-03", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	busy, err := repo.SessionExistsAt(context.Background(), 3, "2024-06-03", "10:00", 0)
	require.NoError(t, err)
	require.True(t, busy)
}

func TestSessionExistsAtExcludesSession(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(3, "2024-06-03", "10:00", 42).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	busy, err := repo.SessionExistsAt(context.Background(), 3, "2024-06-03", "10:00", 42)
	require.NoError(t, err)
	require.False(t, busy)
}
