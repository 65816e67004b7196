package htb

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"testing"

	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"
	"htbnotes/internal/template"
	"htbnotes/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type htbEnv struct {
	conf     *structures.Config
	http     *testutil.MockHttp
	store    services.SettingsServiceInterface
	lists    services.CacheServiceInterface
	memo     *testutil.MockCache
	resolver *template.Resolver
	logger   *testutil.MockLogger
}

type noopLoader struct{}

func (noopLoader) LoadTemplate(_ string) (string, error) {
	return "", errors.New("no template files in tests")
}

func newHTBEnv(t *testing.T) *htbEnv {
	t.Helper()

	conf := &structures.Config{}
	conf.API.BaseURL = "https://labs.hackthebox.com/api/v4"
	conf.Vault.SettingsFile = filepath.Join(t.TempDir(), "settings.dat")

	logger := &testutil.MockLogger{}
	compressor, err := services.NewZstdCompressor()
	require.NoError(t, err)
	files := services.NewSettingsFileManager(compressor, logger)
	t.Cleanup(files.Close)

	store, err := services.NewSettingsService(conf, files, logger)
	require.NoError(t, err)

	return &htbEnv{
		conf:     conf,
		http:     testutil.NewMockHttp(),
		store:    store,
		lists:    services.NewCacheService(store, logger),
		memo:     testutil.NewMockCache(),
		resolver: template.NewResolver(noopLoader{}, logger),
		logger:   logger,
	}
}

func (e *htbEnv) machines() MachineHandlerInterface {
	return NewMachineHandler(e.conf, e.http, e.store, e.lists, e.memo, e.resolver, e.logger)
}

func (e *htbEnv) challenges() ChallengeHandlerInterface {
	return NewChallengeHandler(e.conf, e.http, e.store, e.lists, e.memo, e.resolver, e.logger)
}

func (e *htbEnv) sherlocks() SherlockHandlerInterface {
	return NewSherlockHandler(e.conf, e.http, e.store, e.lists, e.resolver, e.logger)
}

func (e *htbEnv) auth() AuthServiceInterface {
	return NewAuthService(e.conf, e.http, e.store, e.logger)
}

func TestBuildURL(t *testing.T) {
	base := "https://labs.hackthebox.com/api/v4"

	assert.Equal(t, base+"/machine/profile/620",
		BuildURL(base, EndpointMachineProfile, map[string]string{"id": "620"}, nil))
	assert.Equal(t, base+"/sherlocks/733/info",
		BuildURL(base, EndpointSherlockInfo, map[string]string{"id": "733"}, nil))
	assert.Equal(t, base+"/sherlocks?page=2",
		BuildURL(base, EndpointSherlockList, nil, url.Values{"page": {"2"}}))
	assert.Equal(t, base+"/search/fetch?query=pandora",
		BuildURL(base+"/", EndpointSearch, nil, url.Values{"query": {"pandora"}}))
}

func TestIsNumericID(t *testing.T) {
	assert.True(t, isNumericID("620"))
	assert.False(t, isNumericID(""))
	assert.False(t, isNumericID("620a"))
	assert.False(t, isNumericID("Pandora"))
}

func TestStatusSentinelsRoundTrip(t *testing.T) {
	e := newHTBEnv(t)
	e.http.Fail("/machine/profile/999", providers.ErrNotFound)

	_, err := e.machines().Load(context.Background(), "999")
	assert.ErrorIs(t, err, providers.ErrNotFound)
}
