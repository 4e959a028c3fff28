package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stint/internal/approval"
	"github.com/alexanderramin/stint/internal/db"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/google/uuid"
)

type trackerService struct {
	sessions repository.SessionRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTrackerService(
	sessions repository.SessionRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TrackerService {
	return &trackerService{
		sessions: sessions,
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trackerService) Start(ctx context.Context, wsID string, draft StartDraft) (session *domain.Session, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "start-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"workspace": wsID},
		})
	}()

	if draft.Title == "" {
		return nil, approval.ErrTitleRequired
	}

	now := time.Now().UTC()
	session = &domain.Session{
		ID:          uuid.New().String(),
		WorkspaceID: wsID,
		Title:       draft.Title,
		Description: draft.Description,
		CategoryID:  draft.CategoryID,
		TaskID:      draft.TaskID,
		StartTime:   now,
		IsRunning:   true,
		CreatedAt:   now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		_, getErr := txSessions.GetRunning(ctx, wsID)
		if getErr == nil {
			return repository.ErrRunningSessionExists
		}
		if !errors.Is(getErr, repository.ErrNotFound) {
			return getErr
		}
		return txSessions.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *trackerService) Stop(ctx context.Context, wsID string) (session *domain.Session, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "stop-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"workspace": wsID},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		running, getErr := txSessions.GetRunning(ctx, wsID)
		if getErr != nil {
			return getErr
		}

		end := time.Now().UTC()
		if end.Before(running.StartTime) {
			end = running.StartTime
		}
		secs := int(end.Sub(running.StartTime).Seconds())

		running.EndTime = &end
		running.DurationSeconds = &secs
		running.IsRunning = false
		if updErr := txSessions.Update(ctx, running); updErr != nil {
			return updErr
		}
		session = running
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *trackerService) Current(ctx context.Context, wsID string) (*domain.Session, error) {
	return s.sessions.GetRunning(ctx, wsID)
}

func (s *trackerService) Resume(ctx context.Context, wsID string) (*domain.Session, error) {
	recent, err := s.sessions.ListRecent(ctx, wsID, 10)
	if err != nil {
		return nil, err
	}
	for _, prev := range recent {
		if prev.IsRunning {
			continue
		}
		return s.Start(ctx, wsID, StartDraft{
			Title:       prev.Title,
			Description: prev.Description,
			CategoryID:  prev.CategoryID,
			TaskID:      prev.TaskID,
		})
	}
	return nil, fmt.Errorf("resuming session: %w", repository.ErrNotFound)
}

// CheckExceeded resolves the workspace policy and applies it to the
// running session. A nil session with a nil error means nothing needs
// the exceeded-session flow.
func (s *trackerService) CheckExceeded(ctx context.Context, wsID string) (*domain.Session, error) {
	running, err := s.sessions.GetRunning(ctx, wsID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	stored, err := s.settings.GetThreshold(ctx, wsID)
	if err != nil {
		return nil, err
	}
	policy, err := domain.PolicyFromStored(stored)
	if err != nil {
		return nil, err
	}

	if approval.SessionExceedsPolicy(*running, policy, time.Now().UTC()) {
		return running, nil
	}
	return nil, nil
}
