package services

import (
	"testing"

	"htbnotes/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheService(t *testing.T) CacheServiceInterface {
	t.Helper()
	return NewCacheService(newSettingsService(t, nil), &serviceTestLogger{})
}

func TestCacheService_MergeKeepsFirstSeen(t *testing.T) {
	c := newCacheService(t)

	added, err := c.Merge(models.KindMachine, []models.SearchItem{
		{ID: "620", Name: "Pandora", Difficulty: "Easy"},
		{ID: "621", Name: "Timelapse"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// Same id with different data must not overwrite the cached row.
	added, err = c.Merge(models.KindMachine, []models.SearchItem{
		{ID: "620", Name: "Pandora", Difficulty: "Medium"},
		{ID: "622", Name: "Late"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	items := c.Items(models.KindMachine)
	require.Len(t, items, 3)
	assert.Equal(t, "Easy", items[0].Difficulty)
	assert.Equal(t, []string{"620", "621", "622"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestCacheService_ReplaceDropsStale(t *testing.T) {
	c := newCacheService(t)

	_, err := c.Merge(models.KindChallenge, []models.SearchItem{
		{ID: "1", Name: "Old"},
		{ID: "2", Name: "Gone"},
	})
	require.NoError(t, err)

	require.NoError(t, c.Replace(models.KindChallenge, []models.SearchItem{
		{ID: "1", Name: "Old"},
		{ID: "3", Name: "New"},
	}))

	items := c.Items(models.KindChallenge)
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[1].ID)
}

func TestCacheService_KindsAreIndependent(t *testing.T) {
	c := newCacheService(t)

	_, err := c.Merge(models.KindSherlock, []models.SearchItem{{ID: "733", Name: "Meerkat"}})
	require.NoError(t, err)

	assert.True(t, c.IsEmpty(models.KindMachine))
	assert.True(t, c.IsEmpty(models.KindChallenge))
	assert.False(t, c.IsEmpty(models.KindSherlock))
}

func TestCacheService_FetchedAt(t *testing.T) {
	c := newCacheService(t)

	assert.True(t, c.FetchedAt(models.KindMachine).IsZero())

	_, err := c.Merge(models.KindMachine, []models.SearchItem{{ID: "620"}})
	require.NoError(t, err)
	assert.False(t, c.FetchedAt(models.KindMachine).IsZero())
}
