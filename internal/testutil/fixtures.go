package testutil

import (
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/google/uuid"
)

// DefaultWorkspace is the workspace every fixture belongs to unless
// overridden.
const DefaultWorkspace = "ws-test"

// Session options
type SessionOption func(*domain.Session)

func WithWorkspace(id string) SessionOption {
	return func(s *domain.Session) {
		s.WorkspaceID = id
	}
}

func WithDescription(d string) SessionOption {
	return func(s *domain.Session) {
		s.Description = &d
	}
}

func WithCategory(id string) SessionOption {
	return func(s *domain.Session) {
		s.CategoryID = &id
	}
}

func WithTask(id string) SessionOption {
	return func(s *domain.Session) {
		s.TaskID = &id
	}
}

// Running marks the session as still open: no end time, no duration.
func Running() SessionOption {
	return func(s *domain.Session) {
		s.EndTime = nil
		s.DurationSeconds = nil
		s.IsRunning = true
	}
}

// NewTestSession builds a closed session covering [start, start+d).
func NewTestSession(title string, start time.Time, d time.Duration, opts ...SessionOption) *domain.Session {
	end := start.Add(d)
	secs := int(d.Seconds())
	s := &domain.Session{
		ID:              uuid.New().String(),
		WorkspaceID:     DefaultWorkspace,
		Title:           title,
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: &secs,
		CreatedAt:       start,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Category options
type CategoryOption func(*domain.Category)

func WithColor(c domain.CategoryColor) CategoryOption {
	return func(cat *domain.Category) {
		cat.Color = c
	}
}

func WithCategoryWorkspace(id string) CategoryOption {
	return func(cat *domain.Category) {
		cat.WorkspaceID = id
	}
}

func NewTestCategory(name string, opts ...CategoryOption) *domain.Category {
	c := &domain.Category{
		ID:          uuid.New().String(),
		WorkspaceID: DefaultWorkspace,
		Name:        name,
		Color:       domain.DefaultCategoryColor,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Task options
type TaskOption func(*domain.Task)

func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Request options
type RequestOption func(*domain.ApprovalRequest)

func WithProof(paths ...string) RequestOption {
	return func(r *domain.ApprovalRequest) {
		r.ProofPaths = paths
	}
}

func WithLinkedSession(id string) RequestOption {
	return func(r *domain.ApprovalRequest) {
		r.LinkedSessionID = &id
	}
}

func WithStatus(s domain.RequestStatus) RequestOption {
	return func(r *domain.ApprovalRequest) {
		r.Status = s
	}
}

func NewTestRequest(title string, start time.Time, d time.Duration, opts ...RequestOption) *domain.ApprovalRequest {
	r := &domain.ApprovalRequest{
		ID:          uuid.New().String(),
		WorkspaceID: DefaultWorkspace,
		Title:       title,
		StartTime:   start,
		EndTime:     start.Add(d),
		ProofPaths:  []string{"proof.png"},
		Status:      domain.RequestPending,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
