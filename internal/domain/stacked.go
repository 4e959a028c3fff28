package domain

import "time"

// StackedSession is a derived, never-persisted aggregate of sessions
// sharing a title, category, and task within one day, week, or month
// view. The earliest-starting member supplies the identity fields.
type StackedSession struct {
	ID          string
	Title       string
	Description *string
	Category    *Category
	Task        *Task

	// Sessions holds the members in ascending start-time order.
	Sessions []Session

	// TotalDuration is the sum of every member's full duration.
	TotalDuration int

	// PeriodDuration is the portion of TotalDuration falling inside the
	// calendar day this stack represents. Equal to TotalDuration when
	// the stack carries no display date (month view).
	PeriodDuration int

	FirstStartTime time.Time

	// LastEndTime is nil when the latest member is still running.
	LastEndTime *time.Time

	// DisplayDate is the YYYY-MM-DD day this stack is shown under.
	// Empty in month view.
	DisplayDate string
}

// IsActive reports whether any member session is still running.
func (st StackedSession) IsActive() bool {
	for _, s := range st.Sessions {
		if s.IsRunning {
			return true
		}
	}
	return false
}

// SessionCount returns the number of member sessions.
func (st StackedSession) SessionCount() int {
	return len(st.Sessions)
}
