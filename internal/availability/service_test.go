package availability

import (
	"context"
	"database/sql"
	"testing"

	"fitclub/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, trainerID, dayOfWeek int, startTime, endTime string) (int, error) {
	args := m.Called(ctx, trainerID, dayOfWeek, startTime, endTime)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) GetByID(ctx context.Context, id int) (*Window, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Window), args.Error(1)
}

func (m *MockRepo) ListForTrainerDay(ctx context.Context, trainerID, dayOfWeek int) ([]Window, error) {
	args := m.Called(ctx, trainerID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Window), args.Error(1)
}

func (m *MockRepo) ListForTrainer(ctx context.Context, trainerID int) ([]Window, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Window), args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, id int, startTime, endTime *string) error {
	return m.Called(ctx, id, startTime, endTime).Error(0)
}

func (m *MockRepo) SessionExistsAt(ctx context.Context, trainerID int, date, clock string, excludeSessionID int) (bool, error) {
	args := m.Called(ctx, trainerID, date, clock, excludeSessionID)
	return args.Bool(0), args.Error(1)
}

func TestAddWindowInvalidFormat(t *testing.T) {
	svc := NewService(new(MockRepo))

	_, err := svc.AddWindow(context.Background(), 1, 1, "9am", "10:00")
	require.Error(t, err)
	assert.Equal(t, apperr.KindFormat, apperr.KindOf(err))

	_, err = svc.AddWindow(context.Background(), 1, 1, "09:00", "ten")
	require.Error(t, err)
	assert.Equal(t, apperr.KindFormat, apperr.KindOf(err))
}

func TestAddWindowDayOutOfRange(t *testing.T) {
	svc := NewService(new(MockRepo))

	for _, day := range []int{-1, 7, 12} {
		_, err := svc.AddWindow(context.Background(), 1, day, "09:00", "10:00")
		require.Error(t, err)
		assert.Equal(t, apperr.KindRange, apperr.KindOf(err))
	}
}

func TestAddWindowEndNotAfterStart(t *testing.T) {
	svc := NewService(new(MockRepo))

	// Equal endpoints
	_, err := svc.AddWindow(context.Background(), 1, 2, "09:00", "09:00")
	require.Error(t, err)
	assert.Equal(t, apperr.KindOrder, apperr.KindOf(err))

	// Inverted
	_, err = svc.AddWindow(context.Background(), 1, 2, "10:00", "09:00")
	require.Error(t, err)
	assert.Equal(t, apperr.KindOrder, apperr.KindOf(err))
}

func TestAddWindowTouchingEndpointsAllowed(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	existing := []Window{{ID: 1, TrainerID: 1, DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00"}}
	repo.On("ListForTrainerDay", mock.Anything, 1, 2).Return(existing, nil)
	repo.On("Create", mock.Anything, 1, 2, "10:00", "11:00").Return(5, nil)

	// 10:00-11:00 touches 09:00-10:00 but does not overlap.
	id, err := svc.AddWindow(context.Background(), 1, 2, "10:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, 5, id)
	repo.AssertExpectations(t)
}

func TestAddWindowOverlapRejected(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	existing := []Window{
		{ID: 1, TrainerID: 1, DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, TrainerID: 1, DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00"},
	}
	repo.On("ListForTrainerDay", mock.Anything, 1, 2).Return(existing, nil)

	// 09:30-10:30 straddles both existing windows.
	_, err := svc.AddWindow(context.Background(), 1, 2, "09:30", "10:30")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateWindowNotFound(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 99).Return(nil, errNoRows())

	err := svc.UpdateWindow(context.Background(), 99, strPtr("09:00"), nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateWindowExcludesSelf(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	current := &Window{ID: 7, TrainerID: 1, DayOfWeek: 3, StartTime: "09:00", EndTime: "10:00"}
	repo.On("GetByID", mock.Anything, 7).Return(current, nil)
	repo.On("ListForTrainerDay", mock.Anything, 1, 3).Return([]Window{*current}, nil)

	newEnd := "10:30"
	repo.On("Update", mock.Anything, 7, (*string)(nil), &newEnd).Return(nil)

	// Extending the window overlaps only its own row, which is excluded.
	err := svc.UpdateWindow(context.Background(), 7, nil, &newEnd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateWindowConflictDoesNotMutate(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	current := &Window{ID: 7, TrainerID: 1, DayOfWeek: 3, StartTime: "09:00", EndTime: "10:00"}
	other := Window{ID: 8, TrainerID: 1, DayOfWeek: 3, StartTime: "10:00", EndTime: "11:00"}
	repo.On("GetByID", mock.Anything, 7).Return(current, nil)
	repo.On("ListForTrainerDay", mock.Anything, 1, 3).Return([]Window{*current, other}, nil)

	newEnd := "10:30"
	err := svc.UpdateWindow(context.Background(), 7, nil, &newEnd)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateWindowNoFields(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	current := &Window{ID: 7, TrainerID: 1, DayOfWeek: 3, StartTime: "09:00", EndTime: "10:00"}
	repo.On("GetByID", mock.Anything, 7).Return(current, nil)

	err := svc.UpdateWindow(context.Background(), 7, nil, nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindFormat, apperr.KindOf(err))
}

func TestCovers(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	// 2024-06-03 is a Monday (day 1).
	windows := []Window{{ID: 1, TrainerID: 4, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}}
	repo.On("ListForTrainerDay", mock.Anything, 4, 1).Return(windows, nil)

	covered, err := svc.Covers(context.Background(), 4, "2024-06-03", "10:00", 60)
	require.NoError(t, err)
	assert.True(t, covered)

	// Session runs past the window end.
	covered, err = svc.Covers(context.Background(), 4, "2024-06-03", "11:30", 60)
	require.NoError(t, err)
	assert.False(t, covered)

	// Session exactly fills the window.
	covered, err = svc.Covers(context.Background(), 4, "2024-06-03", "09:00", 180)
	require.NoError(t, err)
	assert.True(t, covered)
}

func TestCoversBadDateIsFalseNotError(t *testing.T) {
	svc := NewService(new(MockRepo))

	covered, err := svc.Covers(context.Background(), 4, "garbage", "10:00", 60)
	require.NoError(t, err)
	assert.False(t, covered)
}

func TestIsTrainerFree(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	repo.On("SessionExistsAt", mock.Anything, 4, "2024-06-03", "10:00", 0).Return(true, nil)
	repo.On("SessionExistsAt", mock.Anything, 4, "2024-06-03", "11:00", 0).Return(false, nil)

	free, err := svc.IsTrainerFree(context.Background(), 4, "2024-06-03", "10:00", 0)
	require.NoError(t, err)
	assert.False(t, free)

	free, err = svc.IsTrainerFree(context.Background(), 4, "2024-06-03", "11:00", 0)
	require.NoError(t, err)
	assert.True(t, free)
}

func strPtr(s string) *string { return &s }

func errNoRows() error { return sql.ErrNoRows }
