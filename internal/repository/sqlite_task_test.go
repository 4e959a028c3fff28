package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/stint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Ship release notes")
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ship release notes", fetched.Name)
	assert.False(t, fetched.Completed)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_List_FiltersCompleted(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	open := testutil.NewTestTask("Open task")
	done := testutil.NewTestTask("Done task", testutil.Completed())
	require.NoError(t, repo.Create(ctx, open))
	require.NoError(t, repo.Create(ctx, done))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, open.ID, active[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
