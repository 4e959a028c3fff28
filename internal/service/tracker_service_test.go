package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/stint/internal/repository"
	"github.com/alexanderramin/stint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWS = "ws-test"

func newTrackerService(t *testing.T) (TrackerService, *repository.SQLiteSessionRepo, *repository.SQLiteSettingsRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	svc := NewTrackerService(sessions, settings, testutil.NewTestUoW(database))
	return svc, sessions, settings
}

func TestTrackerService_StartCreatesRunningSession(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	ctx := context.Background()

	desc := "sprint planning"
	s, err := svc.Start(ctx, testWS, StartDraft{Title: "Planning", Description: &desc})
	require.NoError(t, err)
	assert.True(t, s.IsRunning)
	assert.Nil(t, s.EndTime)
	assert.Equal(t, "Planning", s.Title)

	current, err := svc.Current(ctx, testWS)
	require.NoError(t, err)
	assert.Equal(t, s.ID, current.ID)
}

func TestTrackerService_StartRejectsSecondRunningSession(t *testing.T) {
	svc, _, _ := newTrackerService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, testWS, StartDraft{Title: "First"})
	require.NoError(t, err)

	_, err = svc.Start(ctx, testWS, StartDraft{Title: "Second"})
	assert.ErrorIs(t, err, repository.ErrRunningSessionExists)
}

func TestTrackerService_StartRequiresTitle(t *testing.T) {
	svc, _, _ := newTrackerService(t)

	_, err := svc.Start(context.Background(), testWS, StartDraft{})
	assert.Error(t, err)
}

func TestTrackerService_StopClosesAndFixesDuration(t *testing.T) {
	svc, sessions, _ := newTrackerService(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, testWS, StartDraft{Title: "Work"})
	require.NoError(t, err)

	// Backdate the start so the computed duration is clearly positive.
	started.StartTime = started.StartTime.Add(-30 * time.Minute)
	require.NoError(t, sessions.Update(ctx, started))

	stopped, err := svc.Stop(ctx, testWS)
	require.NoError(t, err)
	assert.False(t, stopped.IsRunning)
	require.NotNil(t, stopped.EndTime)
	require.NotNil(t, stopped.DurationSeconds)
	assert.GreaterOrEqual(t, *stopped.DurationSeconds, 1800)

	_, err = svc.Current(ctx, testWS)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTrackerService_StopWithoutRunningSession(t *testing.T) {
	svc, _, _ := newTrackerService(t)

	_, err := svc.Stop(context.Background(), testWS)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTrackerService_ResumeCopiesLastClosedSession(t *testing.T) {
	svc, sessions, _ := newTrackerService(t)
	ctx := context.Background()

	cat := "cat-1"
	prev := testutil.NewTestSession("Writing", time.Now().UTC().Add(-3*time.Hour), time.Hour,
		testutil.WithCategory(cat))
	prev.CategoryID = &cat
	require.NoError(t, sessions.Create(ctx, prev))

	resumed, err := svc.Resume(ctx, testWS)
	require.NoError(t, err)
	assert.Equal(t, "Writing", resumed.Title)
	require.NotNil(t, resumed.CategoryID)
	assert.Equal(t, cat, *resumed.CategoryID)
	assert.True(t, resumed.IsRunning)
}

func TestTrackerService_ResumeWithEmptyHistory(t *testing.T) {
	svc, _, _ := newTrackerService(t)

	_, err := svc.Resume(context.Background(), testWS)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTrackerService_CheckExceeded_ImmediateThreshold(t *testing.T) {
	svc, sessions, settings := newTrackerService(t)
	ctx := context.Background()

	zero := 0
	require.NoError(t, settings.SetThreshold(ctx, testWS, &zero))

	open := testutil.NewTestSession("Open", time.Now().UTC().Add(-2*time.Hour), 0, testutil.Running())
	require.NoError(t, sessions.Create(ctx, open))

	exceeded, err := svc.CheckExceeded(ctx, testWS)
	require.NoError(t, err)
	require.NotNil(t, exceeded)
	assert.Equal(t, open.ID, exceeded.ID)
}

func TestTrackerService_CheckExceeded_NoThresholdSet(t *testing.T) {
	svc, sessions, _ := newTrackerService(t)
	ctx := context.Background()

	open := testutil.NewTestSession("Open", time.Now().UTC().Add(-100*time.Hour), 0, testutil.Running())
	require.NoError(t, sessions.Create(ctx, open))

	exceeded, err := svc.CheckExceeded(ctx, testWS)
	require.NoError(t, err)
	assert.Nil(t, exceeded)
}

func TestTrackerService_CheckExceeded_WithinWindow(t *testing.T) {
	svc, sessions, settings := newTrackerService(t)
	ctx := context.Background()

	seven := 7
	require.NoError(t, settings.SetThreshold(ctx, testWS, &seven))

	open := testutil.NewTestSession("Open", time.Now().UTC().Add(-time.Hour), 0, testutil.Running())
	require.NoError(t, sessions.Create(ctx, open))

	exceeded, err := svc.CheckExceeded(ctx, testWS)
	require.NoError(t, err)
	assert.Nil(t, exceeded)
}

func TestTrackerService_CheckExceeded_NoRunningSession(t *testing.T) {
	svc, _, _ := newTrackerService(t)

	exceeded, err := svc.CheckExceeded(context.Background(), testWS)
	require.NoError(t, err)
	assert.Nil(t, exceeded)
}
