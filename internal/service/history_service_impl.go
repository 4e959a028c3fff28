package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/alexanderramin/stint/internal/stacking"
	"github.com/alexanderramin/stint/internal/stats"
	"golang.org/x/sync/errgroup"
)

type historyService struct {
	sessions   repository.SessionRepo
	categories repository.CategoryRepo
	tasks      repository.TaskRepo
	loc        *time.Location
	observer   UseCaseObserver
}

func NewHistoryService(
	sessions repository.SessionRepo,
	categories repository.CategoryRepo,
	tasks repository.TaskRepo,
	loc *time.Location,
	observers ...UseCaseObserver,
) HistoryService {
	if loc == nil {
		loc = time.Local
	}
	return &historyService{
		sessions:   sessions,
		categories: categories,
		tasks:      tasks,
		loc:        loc,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) Timeline(ctx context.Context, wsID string, mode domain.ViewMode, ref time.Time) (view *TimelineView, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "history-timeline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"workspace": wsID, "mode": string(mode)},
		})
	}()

	p, err := s.periodFor(mode, ref)
	if err != nil {
		return nil, err
	}

	var (
		sessions   []domain.Session
		categories []domain.Category
		tasks      []domain.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var loadErr error
		sessions, loadErr = s.sessions.ListOverlapping(gctx, wsID, p.Start, p.End)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		categories, loadErr = s.categories.ListByWorkspace(gctx, wsID)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		tasks, loadErr = s.tasks.List(gctx, true)
		return loadErr
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("loading %s timeline: %w", mode, err)
	}

	lookup := stacking.Lookup{
		Categories: make(map[string]domain.Category, len(categories)),
		Tasks:      make(map[string]domain.Task, len(tasks)),
	}
	for _, c := range categories {
		lookup.Categories[c.ID] = c
	}
	for _, t := range tasks {
		lookup.Tasks[t.ID] = t
	}

	asOf := time.Now().UTC()
	stacks := stacking.Stack(sessions, mode, p, lookup, s.loc, asOf)

	return &TimelineView{
		Period: p,
		Groups: stacking.GroupForDisplay(stacks, mode, s.loc),
		Stats:  stats.Compute(sessions, p, lookup.Categories, s.loc, asOf),
	}, nil
}

func (s *historyService) TrackerStats(ctx context.Context, wsID string) (domain.TrackerStats, error) {
	sessions, err := s.sessions.ListClosed(ctx, wsID)
	if err != nil {
		return domain.TrackerStats{}, err
	}
	return stats.ComputeTrackerStats(sessions, s.loc, time.Now().UTC()), nil
}

func (s *historyService) periodFor(mode domain.ViewMode, ref time.Time) (interval.Period, error) {
	switch mode {
	case domain.ViewDay:
		return interval.Day(ref.In(s.loc).Format(interval.DateLayout), s.loc)
	case domain.ViewWeek:
		return interval.Week(ref, s.loc), nil
	case domain.ViewMonth:
		return interval.Month(ref, s.loc), nil
	default:
		return interval.Period{}, fmt.Errorf("unknown view mode '%s'", mode)
	}
}
