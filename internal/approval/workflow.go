package approval

import (
	"context"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
)

// State is the workflow's position in the approval sub-flow.
type State string

const (
	StateIdle             State = "idle"
	StateValidating       State = "validating"
	StateNoApprovalNeeded State = "no_approval_needed"
	StateCommitting       State = "committing"
	StateApprovalRequired State = "approval_required"
	StateAwaitingProof    State = "awaiting_proof"
	StateSubmitting       State = "submitting"
	StateDiscardingPrior  State = "discarding_prior_session"
	StateCreatingRequest  State = "creating_request"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// EntryDraft is the caller-supplied content of a backfilled entry.
type EntryDraft struct {
	WorkspaceID string
	Title       string
	Description *string
	CategoryID  *string
	TaskID      *string
	StartTime   time.Time
	EndTime     time.Time
}

// SessionWriter is the slice of the networking collaborator the
// workflow commands for direct mutations.
type SessionWriter interface {
	CreateSession(ctx context.Context, draft EntryDraft) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// RequestWriter files approval requests.
type RequestWriter interface {
	CreateRequest(ctx context.Context, req domain.ApprovalRequest) (*domain.ApprovalRequest, error)
}

// Input drives one submission through the workflow.
type Input struct {
	Draft  EntryDraft
	Policy domain.ThresholdPolicy

	// Now is the reference instant for the threshold decision.
	Now time.Time

	// ProofPaths are the attached proof artifacts. Required (non-empty)
	// whenever the submission is approval-gated.
	ProofPaths []string

	// ExceededSession, when set, forces approval regardless of the
	// draft's timestamp and makes the workflow discard this still-open
	// session before filing the request.
	ExceededSession *domain.Session
}

// Outcome reports what the workflow did.
type Outcome struct {
	ApprovalRequired bool

	// Session is set when the entry was committed directly.
	Session *domain.Session

	// Request is set when an approval request was filed instead.
	Request *domain.ApprovalRequest
}

// Workflow executes the validate -> decide -> commit-or-request
// sequence against its collaborators. One Workflow value serves one
// submission at a time; it is not safe for concurrent reuse.
type Workflow struct {
	sessions SessionWriter
	requests RequestWriter
	state    State
}

func NewWorkflow(sessions SessionWriter, requests RequestWriter) *Workflow {
	return &Workflow{sessions: sessions, requests: requests, state: StateIdle}
}

// State exposes the workflow's last position, chiefly for callers
// rendering progress and for tests asserting the failure point.
func (w *Workflow) State() State { return w.state }

// Submit runs one entry through the workflow.
//
// In exceeded-session mode the pre-existing open session is deleted
// BEFORE the request is created. The two steps are not transactional:
// if the delete succeeds and the create fails, neither an open session
// nor a pending request remains. That ordering is the inherited
// contract and is preserved here rather than reordered; see DESIGN.md.
func (w *Workflow) Submit(ctx context.Context, in Input) (*Outcome, error) {
	w.state = StateValidating
	if err := validateDraft(in.Draft); err != nil {
		w.state = StateFailed
		return nil, err
	}

	needsApproval := in.ExceededSession != nil ||
		RequiresApproval(in.Draft.StartTime, in.Policy, in.Now)

	if !needsApproval {
		w.state = StateNoApprovalNeeded
		w.state = StateCommitting
		s, err := w.sessions.CreateSession(ctx, in.Draft)
		if err != nil {
			w.state = StateFailed
			return nil, &StepError{Step: StepCreateSession, Err: err}
		}
		w.state = StateDone
		return &Outcome{Session: s}, nil
	}

	w.state = StateApprovalRequired
	w.state = StateAwaitingProof
	if len(in.ProofPaths) == 0 {
		w.state = StateFailed
		return nil, ErrProofRequired
	}

	w.state = StateSubmitting
	req := domain.ApprovalRequest{
		WorkspaceID: in.Draft.WorkspaceID,
		Title:       in.Draft.Title,
		Description: in.Draft.Description,
		CategoryID:  in.Draft.CategoryID,
		TaskID:      in.Draft.TaskID,
		StartTime:   in.Draft.StartTime,
		EndTime:     in.Draft.EndTime,
		ProofPaths:  in.ProofPaths,
		Status:      domain.RequestPending,
	}

	if in.ExceededSession != nil {
		w.state = StateDiscardingPrior
		if err := w.sessions.DeleteSession(ctx, in.ExceededSession.ID); err != nil {
			w.state = StateFailed
			return nil, &StepError{Step: StepDiscard, Err: err}
		}
	}

	w.state = StateCreatingRequest
	created, err := w.requests.CreateRequest(ctx, req)
	if err != nil {
		w.state = StateFailed
		return nil, &StepError{Step: StepCreateRequest, Err: err}
	}

	w.state = StateDone
	return &Outcome{ApprovalRequired: true, Request: created}, nil
}

func validateDraft(d EntryDraft) error {
	if d.Title == "" {
		return ErrTitleRequired
	}
	if d.EndTime.Before(d.StartTime) {
		return ErrEndBeforeStart
	}
	if d.EndTime.Sub(d.StartTime) < time.Minute {
		return ErrDurationTooShort
	}
	return nil
}
