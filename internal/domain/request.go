package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// ApprovalRequest is a pending, human-reviewable substitute for a
// direct session mutation, filed when the threshold policy is
// triggered.
type ApprovalRequest struct {
	ID          string
	WorkspaceID string
	Title       string
	Description *string
	CategoryID  *string
	TaskID      *string
	StartTime   time.Time
	EndTime     time.Time

	// ProofPaths reference the attached proof artifacts; at least one
	// is required before a request may be filed.
	ProofPaths []string

	// LinkedSessionID points at the open session a paused exceeded
	// session was converted from, when applicable.
	LinkedSessionID *string

	Status    RequestStatus
	CreatedAt time.Time
}
