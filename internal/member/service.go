package member

import (
	"context"
	"database/sql"
	"errors"

	"fitclub/internal/apperr"
	"fitclub/internal/logger"
	"fitclub/internal/session"
	"fitclub/internal/timeutil"

	"github.com/go-playground/validator/v10"
)

// Metric types surfaced on the dashboard.
const (
	MetricWeight    = "Weight"
	MetricHeartRate = "Heart Rate"
	MetricBodyFat   = "Body Fat"
)

const dashboardSessionLimit = 5

// Notifier is the slice of the email service registration needs.
type Notifier interface {
	SendWelcome(ctx context.Context, email, name string) error
}

type Service interface {
	// Register creates a member, rejecting malformed emails and
	// duplicate registrations.
	Register(ctx context.Context, req RegisterRequest) (int, error)
	GetMember(ctx context.Context, id int) (*Member, error)
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) error

	AddGoal(ctx context.Context, memberID int, req AddGoalRequest) (int, error)
	ListActiveGoals(ctx context.Context, memberID int) ([]FitnessGoal, error)
	LogMetric(ctx context.Context, memberID int, req LogMetricRequest) (int, error)

	// Dashboard aggregates the member's latest metrics, active goals,
	// attended class count and next upcoming sessions.
	Dashboard(ctx context.Context, memberID int) (*Dashboard, error)
}

type service struct {
	repo     Repository
	sessions session.Repository
	notifier Notifier
	validate *validator.Validate
}

func NewService(repo Repository, sessions session.Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		sessions: sessions,
		notifier: notifier,
		validate: validator.New(),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (int, error) {
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		return 0, apperr.New(apperr.KindFormat, "invalid email format")
	}
	if _, err := timeutil.ParseDate(req.DateOfBirth); err != nil {
		return 0, err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to check email", err)
	}
	if exists {
		return 0, apperr.Newf(apperr.KindConflict, "email %s is already registered", req.Email)
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to create member", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, req.Email, req.Name); err != nil {
			logger.Errorf("Failed to queue welcome email: %v", err)
		}
	}

	return id, nil
}

func (s *service) GetMember(ctx context.Context, id int) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "member not found")
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load member", err)
	}
	return m, nil
}

func (s *service) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) error {
	if req.Name == nil && req.Phone == nil && req.Address == nil {
		return apperr.New(apperr.KindFormat, "no updates provided")
	}

	updated, err := s.repo.UpdateProfile(ctx, id, req)
	if err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to update profile", err)
	}
	if !updated {
		return apperr.New(apperr.KindNotFound, "member not found")
	}

	return nil
}

func (s *service) AddGoal(ctx context.Context, memberID int, req AddGoalRequest) (int, error) {
	if _, err := timeutil.ParseDate(req.TargetDate); err != nil {
		return 0, err
	}

	id, err := s.repo.AddGoal(ctx, memberID, req)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to add fitness goal", err)
	}

	return id, nil
}

func (s *service) ListActiveGoals(ctx context.Context, memberID int) ([]FitnessGoal, error) {
	return s.repo.ListActiveGoals(ctx, memberID)
}

func (s *service) LogMetric(ctx context.Context, memberID int, req LogMetricRequest) (int, error) {
	id, err := s.repo.LogMetric(ctx, memberID, req)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "failed to log health metric", err)
	}

	return id, nil
}

func (s *service) Dashboard(ctx context.Context, memberID int) (*Dashboard, error) {
	m, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{MemberID: m.ID, Name: m.Name}

	for metricType, dest := range map[string]**float64{
		MetricWeight:    &dash.Latest.Weight,
		MetricHeartRate: &dash.Latest.HeartRate,
		MetricBodyFat:   &dash.Latest.BodyFat,
	} {
		value, err := s.repo.LatestMetricValue(ctx, memberID, metricType)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, "failed to load latest metrics", err)
		}
		*dest = value
	}

	goals, err := s.repo.ListActiveGoals(ctx, memberID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load goals", err)
	}
	dash.ActiveGoals = goals

	count, err := s.repo.CountPastClasses(ctx, memberID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to count past classes", err)
	}
	dash.PastClassCount = count

	upcoming, err := s.sessions.ListUpcomingByMember(ctx, memberID, dashboardSessionLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load upcoming sessions", err)
	}
	dash.UpcomingSessions = upcoming

	return dash, nil
}
