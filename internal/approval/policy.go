// Package approval decides whether a session edit or backfill may be
// committed directly or must go through an approval request, and owns
// the sequencing contract of the request-submission workflow.
package approval

import (
	"time"

	"github.com/alexanderramin/stint/internal/domain"
)

// RequiresApproval reports whether an entry with the given start
// timestamp needs administrative approval under the workspace policy.
//
//	NoApproval    -> never
//	Loading       -> always (fail safe until the setting resolves)
//	Immediate     -> always
//	AfterDays(n)  -> only when ts is strictly older than now - n days
func RequiresApproval(ts time.Time, p domain.ThresholdPolicy, now time.Time) bool {
	switch p.Kind {
	case domain.ThresholdNoApproval:
		return false
	case domain.ThresholdLoading, domain.ThresholdImmediate:
		return true
	case domain.ThresholdAfterDays:
		return ts.Before(now.AddDate(0, 0, -p.Days))
	default:
		return true
	}
}

// SessionExceedsPolicy reports whether a running session has been open
// past the workspace's allowed window, forcing the exceeded-session
// workflow (discard the open session, then file a request). A loading
// policy never forces the exceeded flow: discarding a live session on
// an unresolved setting would be destructive guesswork.
func SessionExceedsPolicy(s domain.Session, p domain.ThresholdPolicy, now time.Time) bool {
	if !s.IsRunning || p.Kind == domain.ThresholdLoading {
		return false
	}
	return RequiresApproval(s.StartTime, p, now)
}
