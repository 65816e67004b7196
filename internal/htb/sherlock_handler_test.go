package htb

import (
	"context"
	"fmt"
	"testing"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sherlockPage1 = `{"data":[
		{"id": 551, "name": "Meerkat", "category_name": "SOC", "difficulty": "Easy", "state": "active", "rating": 4.5, "solves": 12000},
		{"id": 552, "name": "Bumblebee", "category_name": "SOC", "difficulty": "Easy", "state": "active"}
	], "meta": {"current_page": 1, "last_page": 2, "per_page": 2, "total": 3}}`
	sherlockPage2 = `{"data":[
		{"id": 553, "name": "Litter", "category_name": "DFIR", "difficulty": "Medium", "state": "retired_free"}
	], "meta": {"current_page": 2, "last_page": 2, "per_page": 2, "total": 3}}`
)

func sherlockInfoBody(id int, name, description string) string {
	return fmt.Sprintf(`{"data":{
		"id": %d,
		"name": %q,
		"category_name": "SOC",
		"difficulty": "Easy",
		"rating": 4.5,
		"state": "active",
		"description": %q
	}}`, id, name, description)
}

func seedSherlockPages(t *testing.T, e *htbEnv) {
	t.Helper()
	e.http.Respond("page=1", sherlockPage1)
	e.http.Respond("page=2", sherlockPage2)
}

func TestSherlockHandler_SearchPaginatesOnEmptyCache(t *testing.T) {
	e := newHTBEnv(t)
	seedSherlockPages(t, e)
	h := e.sherlocks()

	items, err := h.Search(context.Background(), "meerkat")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "551", items[0].ID)

	// Both pages were walked and every row cached.
	assert.Equal(t, 1, e.http.RequestCount("page=2"))
	assert.Len(t, e.lists.Items(models.KindSherlock), 3)

	// Later searches never touch the network.
	_, err = h.Search(context.Background(), "litter")
	require.NoError(t, err)
	assert.Equal(t, 1, e.http.RequestCount("page=1"))
}

func TestSherlockHandler_SearchPageFailurePropagates(t *testing.T) {
	e := newHTBEnv(t)
	e.http.Respond("page=1", sherlockPage1)
	e.http.Fail("page=2", fmt.Errorf("%w: upstream", providers.ErrServer))

	_, err := e.sherlocks().Search(context.Background(), "meerkat")
	assert.ErrorIs(t, err, providers.ErrServer)
	assert.True(t, e.lists.IsEmpty(models.KindSherlock))
}

func TestSherlockHandler_RefreshCacheDropsStaleRows(t *testing.T) {
	e := newHTBEnv(t)
	_, err := e.lists.Merge(models.KindSherlock, []models.SearchItem{{ID: "999", Name: "Gone"}})
	require.NoError(t, err)
	seedSherlockPages(t, e)

	count, err := e.sherlocks().RefreshCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	for _, it := range e.lists.Items(models.KindSherlock) {
		assert.NotEqual(t, "999", it.ID)
	}
}

func TestSherlockHandler_LoadCachedRowMergesDescription(t *testing.T) {
	e := newHTBEnv(t)
	require.NoError(t, e.lists.Replace(models.KindSherlock, []models.SearchItem{
		{ID: "551", Name: "Meerkat", Category: "SOC", Difficulty: "Easy", State: "active", Rating: 4.5},
	}))
	e.http.Respond("/sherlocks/551/info", sherlockInfoBody(551, "Meerkat", "A business intelligence breach."))

	s, err := e.sherlocks().Load(context.Background(), "551")
	require.NoError(t, err)
	assert.Equal(t, "Meerkat", s.Name)
	assert.Equal(t, "SOC", s.Category)
	assert.Equal(t, "A business intelligence breach.", s.Description)
	assert.Equal(t, s.Description, s.Scenario)
}

func TestSherlockHandler_LoadDescriptionFailureDegrades(t *testing.T) {
	e := newHTBEnv(t)
	require.NoError(t, e.lists.Replace(models.KindSherlock, []models.SearchItem{
		{ID: "551", Name: "Meerkat", Category: "SOC", Difficulty: "Easy", State: "active"},
	}))
	e.http.Fail("/sherlocks/551/info", fmt.Errorf("%w: upstream", providers.ErrServer))

	s, err := e.sherlocks().Load(context.Background(), "551")
	require.NoError(t, err)
	assert.Equal(t, "Meerkat", s.Name)
	assert.Empty(t, s.Description)
	assert.True(t, e.logger.HasLog("warn", "keeping list data"))
}

func TestSherlockHandler_LoadUncachedIDHitsDetail(t *testing.T) {
	e := newHTBEnv(t)
	e.http.Respond("/sherlocks/700/info", sherlockInfoBody(700, "OpTinselTrace", "Santa got popped."))

	s, err := e.sherlocks().Load(context.Background(), "700")
	require.NoError(t, err)
	assert.Equal(t, "OpTinselTrace", s.Name)
	assert.Equal(t, "Santa got popped.", s.Description)
}

func TestSherlockHandler_LoadByName(t *testing.T) {
	e := newHTBEnv(t)
	seedSherlockPages(t, e)
	e.http.Respond("/sherlocks/552/info", sherlockInfoBody(552, "Bumblebee", "Forum takeover."))

	s, err := e.sherlocks().Load(context.Background(), "bumble")
	require.NoError(t, err)
	assert.Equal(t, "552", s.ID)
	assert.Equal(t, "Forum takeover.", s.Description)
}

func TestSherlockHandler_LoadByNameNotFound(t *testing.T) {
	e := newHTBEnv(t)
	seedSherlockPages(t, e)

	_, err := e.sherlocks().Load(context.Background(), "nosuchsherlock")
	assert.ErrorIs(t, err, providers.ErrNotFound)
}

func TestSherlockHandler_GenerateContent(t *testing.T) {
	e := newHTBEnv(t)
	s := &models.Sherlock{ID: "551", Name: "Meerkat", Category: "SOC", Difficulty: "Easy", Rating: 4.5}

	out := e.sherlocks().GenerateContent(s, "HTB/Sherlocks/Meerkat.md")
	assert.Contains(t, out, "Meerkat")
	assert.NotContains(t, out, "{{name}}")
}
