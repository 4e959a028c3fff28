package approval

import (
	"testing"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.AddDate(0, 0, -n) }

func TestRequiresApproval_NoApprovalNever(t *testing.T) {
	p := domain.NoApprovalPolicy()
	assert.False(t, RequiresApproval(now, p, now))
	assert.False(t, RequiresApproval(daysAgo(365), p, now))
}

func TestRequiresApproval_LoadingAlways(t *testing.T) {
	p := domain.LoadingPolicy()
	assert.True(t, RequiresApproval(now, p, now))
	assert.True(t, RequiresApproval(daysAgo(1), p, now))
}

func TestRequiresApproval_ImmediateAlways(t *testing.T) {
	p := domain.ImmediatePolicy()
	assert.True(t, RequiresApproval(now, p, now))
	assert.True(t, RequiresApproval(now.Add(time.Hour), p, now))
}

func TestRequiresApproval_AfterDaysWindow(t *testing.T) {
	p := domain.AfterDaysPolicy(7)

	assert.False(t, RequiresApproval(now, p, now))
	assert.False(t, RequiresApproval(daysAgo(6), p, now))
	assert.False(t, RequiresApproval(daysAgo(7), p, now),
		"exactly at the boundary is not strictly older")
	assert.True(t, RequiresApproval(daysAgo(7).Add(-time.Second), p, now))
	assert.True(t, RequiresApproval(daysAgo(8), p, now))
}

func TestSessionExceedsPolicy(t *testing.T) {
	running := domain.Session{ID: "s-1", StartTime: daysAgo(3), IsRunning: true}
	closed := domain.Session{ID: "s-2", StartTime: daysAgo(3)}

	assert.True(t, SessionExceedsPolicy(running, domain.AfterDaysPolicy(1), now))
	assert.False(t, SessionExceedsPolicy(running, domain.AfterDaysPolicy(7), now))
	assert.False(t, SessionExceedsPolicy(closed, domain.AfterDaysPolicy(1), now),
		"only running sessions can exceed their open window")
	assert.True(t, SessionExceedsPolicy(running, domain.ImmediatePolicy(), now))
	assert.False(t, SessionExceedsPolicy(running, domain.LoadingPolicy(), now),
		"an unresolved policy must not force a destructive discard")
	assert.False(t, SessionExceedsPolicy(running, domain.NoApprovalPolicy(), now))
}
