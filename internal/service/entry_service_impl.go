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

// ErrRequestNotPending rejects resolving a request twice.
var ErrRequestNotPending = errors.New("request is not pending")

type entryService struct {
	sessions repository.SessionRepo
	requests repository.RequestRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewEntryService(
	sessions repository.SessionRepo,
	requests repository.RequestRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) EntryService {
	return &entryService{
		sessions: sessions,
		requests: requests,
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// sessionPort adapts the session repository to the workflow's writer
// interface, owning id assignment and duration bookkeeping.
type sessionPort struct {
	sessions repository.SessionRepo
}

func (p sessionPort) CreateSession(ctx context.Context, d approval.EntryDraft) (*domain.Session, error) {
	secs := int(d.EndTime.Sub(d.StartTime).Seconds())
	end := d.EndTime
	s := &domain.Session{
		ID:              uuid.New().String(),
		WorkspaceID:     d.WorkspaceID,
		Title:           d.Title,
		Description:     d.Description,
		CategoryID:      d.CategoryID,
		TaskID:          d.TaskID,
		StartTime:       d.StartTime,
		EndTime:         &end,
		DurationSeconds: &secs,
		CreatedAt:       time.Now().UTC(),
	}
	if err := p.sessions.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (p sessionPort) DeleteSession(ctx context.Context, id string) error {
	return p.sessions.Delete(ctx, id)
}

type requestPort struct {
	requests repository.RequestRepo
}

func (p requestPort) CreateRequest(ctx context.Context, req domain.ApprovalRequest) (*domain.ApprovalRequest, error) {
	req.ID = uuid.New().String()
	req.CreatedAt = time.Now().UTC()
	if err := p.requests.Create(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *entryService) Backfill(ctx context.Context, wsID string, in BackfillInput) (result *BackfillResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "backfill-entry",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"workspace": wsID},
		})
	}()

	policy, err := s.Policy(ctx, wsID)
	if err != nil {
		return nil, err
	}

	wf := approval.NewWorkflow(
		sessionPort{sessions: s.sessions},
		requestPort{requests: s.requests},
	)
	outcome, err := wf.Submit(ctx, approval.Input{
		Draft: approval.EntryDraft{
			WorkspaceID: wsID,
			Title:       in.Title,
			Description: in.Description,
			CategoryID:  in.CategoryID,
			TaskID:      in.TaskID,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
		},
		Policy:          policy,
		Now:             time.Now().UTC(),
		ProofPaths:      in.ProofPaths,
		ExceededSession: in.DiscardRunning,
	})
	if err != nil {
		return nil, err
	}
	return &BackfillResult{
		ApprovalRequired: outcome.ApprovalRequired,
		Session:          outcome.Session,
		Request:          outcome.Request,
	}, nil
}

func (s *entryService) Policy(ctx context.Context, wsID string) (domain.ThresholdPolicy, error) {
	stored, err := s.settings.GetThreshold(ctx, wsID)
	if err != nil {
		return domain.LoadingPolicy(), err
	}
	return domain.PolicyFromStored(stored)
}

func (s *entryService) SetThreshold(ctx context.Context, wsID string, days *int) error {
	if days != nil && *days < 0 {
		return fmt.Errorf("threshold days must not be negative, got %d", *days)
	}
	return s.settings.SetThreshold(ctx, wsID, days)
}

func (s *entryService) ListRequests(ctx context.Context, wsID string, status string) ([]domain.ApprovalRequest, error) {
	return s.requests.ListByWorkspace(ctx, wsID, status)
}

// Approve turns a pending request into a committed session. Both writes
// happen in one transaction so a rejected status update cannot strand a
// materialized session.
func (s *entryService) Approve(ctx context.Context, requestID string) (session *domain.Session, err error) {
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txRequests := repository.NewSQLiteRequestRepo(tx)

		req, getErr := txRequests.GetByID(ctx, requestID)
		if getErr != nil {
			return getErr
		}
		if req.Status != domain.RequestPending {
			return fmt.Errorf("request %s is already %s: %w", requestID, req.Status, ErrRequestNotPending)
		}

		secs := int(req.EndTime.Sub(req.StartTime).Seconds())
		end := req.EndTime
		session = &domain.Session{
			ID:              uuid.New().String(),
			WorkspaceID:     req.WorkspaceID,
			Title:           req.Title,
			Description:     req.Description,
			CategoryID:      req.CategoryID,
			TaskID:          req.TaskID,
			StartTime:       req.StartTime,
			EndTime:         &end,
			DurationSeconds: &secs,
			CreatedAt:       time.Now().UTC(),
		}
		if createErr := txSessions.Create(ctx, session); createErr != nil {
			return createErr
		}
		return txRequests.UpdateStatus(ctx, requestID, string(domain.RequestApproved))
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *entryService) Reject(ctx context.Context, requestID string) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != domain.RequestPending {
		return fmt.Errorf("request %s is already %s: %w", requestID, req.Status, ErrRequestNotPending)
	}
	return s.requests.UpdateStatus(ctx, requestID, string(domain.RequestRejected))
}
