package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrRunningSessionExists is returned when starting a session while the
// workspace already has one running.
var ErrRunningSessionExists = errors.New("a session is already running")

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)

	// GetRunning returns the workspace's open session, or ErrNotFound.
	GetRunning(ctx context.Context, wsID string) (*domain.Session, error)

	// ListOverlapping returns sessions whose interval intersects
	// [start, end): started before end and either still open or ended
	// after start. Ordered by start time descending.
	ListOverlapping(ctx context.Context, wsID string, start, end time.Time) ([]domain.Session, error)

	// ListRecent returns the newest sessions by start time.
	ListRecent(ctx context.Context, wsID string, limit int) ([]domain.Session, error)

	// ListClosed returns every completed session in the workspace,
	// used for whole-history rollups.
	ListClosed(ctx context.Context, wsID string) ([]domain.Session, error)

	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListByWorkspace(ctx context.Context, wsID string) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]domain.Task, error)
}

// SettingsRepo stores the workspace approval threshold in its raw
// nullable-integer form; domain.PolicyFromStored gives it meaning.
type SettingsRepo interface {
	// GetThreshold returns the stored value. A workspace with no row
	// behaves as null (no approval required).
	GetThreshold(ctx context.Context, wsID string) (*int, error)
	SetThreshold(ctx context.Context, wsID string, days *int) error
}

type RequestRepo interface {
	Create(ctx context.Context, r *domain.ApprovalRequest) error
	GetByID(ctx context.Context, id string) (*domain.ApprovalRequest, error)
	ListByWorkspace(ctx context.Context, wsID string, status string) ([]domain.ApprovalRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
