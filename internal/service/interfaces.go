package service

import (
	"context"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
	"github.com/alexanderramin/stint/internal/stacking"
)

// StartDraft is the caller-supplied content of a new live session.
type StartDraft struct {
	Title       string
	Description *string
	CategoryID  *string
	TaskID      *string
}

type TrackerService interface {
	// Start opens a live session. Fails with
	// repository.ErrRunningSessionExists when one is already open.
	Start(ctx context.Context, wsID string, draft StartDraft) (*domain.Session, error)

	// Stop closes the workspace's running session and fixes its duration.
	Stop(ctx context.Context, wsID string) (*domain.Session, error)

	// Current returns the running session, or repository.ErrNotFound.
	Current(ctx context.Context, wsID string) (*domain.Session, error)

	// Resume starts a new session carrying the title, category, and task
	// of the most recently started closed session.
	Resume(ctx context.Context, wsID string) (*domain.Session, error)

	// CheckExceeded reports whether the running session has outlived the
	// workspace's approval window. Nil when no session is running.
	CheckExceeded(ctx context.Context, wsID string) (*domain.Session, error)
}

// TimelineView is one rendered period of history: the resolved period
// bounds, the stacks bucketed under display headings, and the period's
// summary statistics.
type TimelineView struct {
	Period interval.Period
	Groups []stacking.DisplayGroup
	Stats  domain.PeriodStats
}

type HistoryService interface {
	// Timeline loads, stacks, and summarizes every session overlapping
	// the period anchored at ref for the given view mode.
	Timeline(ctx context.Context, wsID string, mode domain.ViewMode, ref time.Time) (*TimelineView, error)

	// TrackerStats rolls the whole history into today/week/month totals
	// and the consecutive-day streak.
	TrackerStats(ctx context.Context, wsID string) (domain.TrackerStats, error)
}

// BackfillInput describes one missed-entry submission.
type BackfillInput struct {
	Title       string
	Description *string
	CategoryID  *string
	TaskID      *string
	StartTime   time.Time
	EndTime     time.Time
	ProofPaths  []string

	// DiscardRunning routes the submission through exceeded-session
	// mode: the named running session is discarded before the request
	// is filed.
	DiscardRunning *domain.Session
}

// BackfillResult mirrors the workflow outcome for the CLI.
type BackfillResult struct {
	ApprovalRequired bool
	Session          *domain.Session
	Request          *domain.ApprovalRequest
}

type EntryService interface {
	// Backfill submits a past entry: committed directly when the
	// workspace policy allows, otherwise filed as an approval request.
	Backfill(ctx context.Context, wsID string, in BackfillInput) (*BackfillResult, error)

	// Policy resolves the workspace's stored threshold setting.
	Policy(ctx context.Context, wsID string) (domain.ThresholdPolicy, error)
	SetThreshold(ctx context.Context, wsID string, days *int) error

	ListRequests(ctx context.Context, wsID string, status string) ([]domain.ApprovalRequest, error)

	// Approve materializes a pending request into a session.
	Approve(ctx context.Context, requestID string) (*domain.Session, error)
	Reject(ctx context.Context, requestID string) error
}

type CategoryService interface {
	Create(ctx context.Context, wsID, name string, color domain.CategoryColor) (*domain.Category, error)
	List(ctx context.Context, wsID string) ([]domain.Category, error)
	Rename(ctx context.Context, id, name string) error
	Recolor(ctx context.Context, id string, color domain.CategoryColor) error
	Delete(ctx context.Context, id string) error
}
