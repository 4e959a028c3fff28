package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/stint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sess := testutil.NewTestSession("Deep work", start, 45*time.Minute,
		testutil.WithDescription("API refactor"))
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, "Deep work", fetched.Title)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "API refactor", *fetched.Description)
	assert.True(t, start.Equal(fetched.StartTime))
	require.NotNil(t, fetched.DurationSeconds)
	assert.Equal(t, 2700, *fetched.DurationSeconds)
	assert.False(t, fetched.IsRunning)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_GetRunning(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	closed := testutil.NewTestSession("Done", time.Now().UTC().Add(-3*time.Hour), time.Hour)
	open := testutil.NewTestSession("Current", time.Now().UTC().Add(-30*time.Minute), 0, testutil.Running())
	require.NoError(t, repo.Create(ctx, closed))
	require.NoError(t, repo.Create(ctx, open))

	running, err := repo.GetRunning(ctx, testutil.DefaultWorkspace)
	require.NoError(t, err)
	assert.Equal(t, open.ID, running.ID)
	assert.True(t, running.IsRunning)
	assert.Nil(t, running.EndTime)
	assert.Nil(t, running.DurationSeconds)
}

func TestSessionRepo_GetRunning_NoneOpen(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	closed := testutil.NewTestSession("Done", time.Now().UTC().Add(-2*time.Hour), time.Hour)
	require.NoError(t, repo.Create(ctx, closed))

	_, err := repo.GetRunning(ctx, testutil.DefaultWorkspace)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListOverlapping(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	inside := testutil.NewTestSession("Inside", dayStart.Add(9*time.Hour), time.Hour)
	overnight := testutil.NewTestSession("Overnight", dayStart.Add(-2*time.Hour), 4*time.Hour)
	before := testutil.NewTestSession("Before", dayStart.Add(-6*time.Hour), time.Hour)
	endsAtStart := testutil.NewTestSession("EdgeTouch", dayStart.Add(-time.Hour), time.Hour)
	open := testutil.NewTestSession("Open", dayStart.Add(22*time.Hour), 0, testutil.Running())
	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, overnight))
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, endsAtStart))
	require.NoError(t, repo.Create(ctx, open))

	list, err := repo.ListOverlapping(ctx, testutil.DefaultWorkspace, dayStart, dayEnd)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Ordered by start time descending.
	assert.Equal(t, open.ID, list[0].ID)
	assert.Equal(t, inside.ID, list[1].ID)
	assert.Equal(t, overnight.ID, list[2].ID)
}

func TestSessionRepo_ListRecent(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s := testutil.NewTestSession("Work", base.AddDate(0, 0, i), time.Hour)
		require.NoError(t, repo.Create(ctx, s))
	}

	list, err := repo.ListRecent(ctx, testutil.DefaultWorkspace, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].StartTime.After(list[1].StartTime))
	assert.True(t, list[1].StartTime.After(list[2].StartTime))
}

func TestSessionRepo_ListClosed_ExcludesRunning(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	closed := testutil.NewTestSession("Closed", time.Now().UTC().Add(-2*time.Hour), time.Hour)
	open := testutil.NewTestSession("Open", time.Now().UTC(), 0, testutil.Running())
	require.NoError(t, repo.Create(ctx, closed))
	require.NoError(t, repo.Create(ctx, open))

	list, err := repo.ListClosed(ctx, testutil.DefaultWorkspace)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, closed.ID, list[0].ID)
}

func TestSessionRepo_Update_ClosesRunningSession(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sess := testutil.NewTestSession("Open", start, 0, testutil.Running())
	require.NoError(t, repo.Create(ctx, sess))

	end := start.Add(90 * time.Minute)
	secs := 5400
	sess.EndTime = &end
	sess.DurationSeconds = &secs
	sess.IsRunning = false
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsRunning)
	require.NotNil(t, fetched.EndTime)
	assert.True(t, end.Equal(*fetched.EndTime))
	require.NotNil(t, fetched.DurationSeconds)
	assert.Equal(t, 5400, *fetched.DurationSeconds)
}

func TestSessionRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	sess := testutil.NewTestSession("Ghost", time.Now().UTC(), time.Hour)
	sess.ID = "missing"
	err := repo.Update(context.Background(), sess)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession("Gone", time.Now().UTC(), time.Hour)
	require.NoError(t, repo.Create(ctx, sess))

	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_WorkspaceIsolation(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	mine := testutil.NewTestSession("Mine", time.Now().UTC(), time.Hour)
	other := testutil.NewTestSession("Other", time.Now().UTC(), time.Hour,
		testutil.WithWorkspace("ws-other"))
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListRecent(ctx, testutil.DefaultWorkspace, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}
