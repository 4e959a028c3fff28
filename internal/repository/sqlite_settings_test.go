package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/stint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_GetThreshold_MissingRowIsNull(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	days, err := repo.GetThreshold(context.Background(), "ws-test")
	require.NoError(t, err)
	assert.Nil(t, days)
}

func TestSettingsRepo_SetAndGetThreshold(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seven := 7
	require.NoError(t, repo.SetThreshold(ctx, "ws-test", &seven))

	days, err := repo.GetThreshold(ctx, "ws-test")
	require.NoError(t, err)
	require.NotNil(t, days)
	assert.Equal(t, 7, *days)
}

func TestSettingsRepo_SetThreshold_Overwrites(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seven := 7
	require.NoError(t, repo.SetThreshold(ctx, "ws-test", &seven))
	zero := 0
	require.NoError(t, repo.SetThreshold(ctx, "ws-test", &zero))

	days, err := repo.GetThreshold(ctx, "ws-test")
	require.NoError(t, err)
	require.NotNil(t, days)
	assert.Equal(t, 0, *days)
}

func TestSettingsRepo_SetThreshold_BackToNull(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seven := 7
	require.NoError(t, repo.SetThreshold(ctx, "ws-test", &seven))
	require.NoError(t, repo.SetThreshold(ctx, "ws-test", nil))

	days, err := repo.GetThreshold(ctx, "ws-test")
	require.NoError(t, err)
	assert.Nil(t, days)
}
