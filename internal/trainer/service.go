package trainer

import (
	"context"
	"database/sql"
	"errors"

	"fitclub/internal/apperr"
	"fitclub/internal/class"
	"fitclub/internal/session"
)

const (
	memberSearchLimit = 10
	memberGoalsLimit  = 3
)

type Service interface {
	GetTrainer(ctx context.Context, id int) (*Trainer, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)

	// Schedule returns the trainer's upcoming PT sessions and group
	// classes in one view.
	Schedule(ctx context.Context, trainerID int) (*ScheduleView, error)

	// LookupMembers searches members by name and decorates each match
	// with active goals and the latest recorded metric.
	LookupMembers(ctx context.Context, nameSearch string) ([]MemberMatch, error)
}

type service struct {
	repo     Repository
	sessions session.Repository
	classes  class.Repository
}

func NewService(repo Repository, sessions session.Repository, classes class.Repository) Service {
	return &service{repo: repo, sessions: sessions, classes: classes}
}

func (s *service) GetTrainer(ctx context.Context, id int) (*Trainer, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "trainer not found")
		}
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load trainer", err)
	}
	return t, nil
}

func (s *service) ListTrainers(ctx context.Context) ([]Trainer, error) {
	return s.repo.List(ctx)
}

func (s *service) Schedule(ctx context.Context, trainerID int) (*ScheduleView, error) {
	t, err := s.GetTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListUpcomingByTrainer(ctx, trainerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load sessions", err)
	}

	classes, err := s.classes.ListUpcomingByTrainer(ctx, trainerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to load classes", err)
	}

	return &ScheduleView{
		TrainerID:   t.ID,
		TrainerName: t.Name,
		Sessions:    sessions,
		Classes:     classes,
	}, nil
}

func (s *service) LookupMembers(ctx context.Context, nameSearch string) ([]MemberMatch, error) {
	matches, err := s.repo.SearchMembers(ctx, nameSearch, memberSearchLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to search members", err)
	}

	for i := range matches {
		goals, err := s.repo.ListMemberGoals(ctx, matches[i].MemberID, memberGoalsLimit)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, "failed to load member goals", err)
		}
		matches[i].ActiveGoals = goals

		metric, err := s.repo.LatestMemberMetric(ctx, matches[i].MemberID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindPersistence, "failed to load member metric", err)
		}
		matches[i].LatestMetric = metric
	}

	return matches, nil
}
