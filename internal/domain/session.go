package domain

import "time"

// Session is one contiguous (or still-open) span of tracked work time.
// Sessions are immutable once persisted; edits go through the entry
// service, never through in-place mutation of a loaded Session.
type Session struct {
	ID          string
	WorkspaceID string
	Title       string
	Description *string
	CategoryID  *string
	TaskID      *string
	StartTime   time.Time
	EndTime     *time.Time

	// DurationSeconds is the precomputed full duration. It is nil for a
	// running session, whose duration must be derived from asOf.
	DurationSeconds *int

	IsRunning bool
	CreatedAt time.Time
}

// EffectiveEnd resolves the session's end instant, substituting asOf for
// a session that is still running.
func (s Session) EffectiveEnd(asOf time.Time) time.Time {
	if s.EndTime != nil {
		return *s.EndTime
	}
	return asOf
}

// FullDurationSeconds returns the session's complete duration in whole
// seconds, deriving it from asOf when the session is still running.
func (s Session) FullDurationSeconds(asOf time.Time) int {
	if s.DurationSeconds != nil {
		return *s.DurationSeconds
	}
	d := int(s.EffectiveEnd(asOf).Sub(s.StartTime) / time.Second)
	if d < 0 {
		return 0
	}
	return d
}

// Category labels sessions with a name and one of the fixed color tokens.
type Category struct {
	ID          string
	WorkspaceID string
	Name        string
	Color       CategoryColor
	CreatedAt   time.Time
}

// Task is a unit of project work a session may be attributed to.
type Task struct {
	ID        string
	Name      string
	Completed bool
	CreatedAt time.Time
}
