package services

import (
	"os"
	"path/filepath"
	"testing"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/structures"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// local mock logger to avoid import cycle with testutil
type serviceTestLogger struct{}

func (m *serviceTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *serviceTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *serviceTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *serviceTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *serviceTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *serviceTestLogger) Close()                                                  {}

func newFileManager(t *testing.T) *SettingsFileManager {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	fm := NewSettingsFileManager(compressor, &serviceTestLogger{})
	t.Cleanup(fm.Close)
	return fm
}

func sampleSettings() *structures.Settings {
	return &structures.Settings{
		APIToken: "secret-token",
		MachineCache: structures.CachedList{
			Items:     []models.SearchItem{{ID: "620", Name: "Pandora"}},
			FetchedAt: 1700000000000,
		},
		SherlockTemplate: &structures.TypeTemplateConfig{
			UseDefaultBuiltInTemplate: true,
			FolderRules: []structures.FolderRule{
				{ID: "r1", Name: "forensics", Enabled: true, Priority: 5, FolderPath: "HTB/Sherlocks"},
			},
		},
	}
}

func TestSettingsFileManager_SaveLoadRoundtrip(t *testing.T) {
	fm := newFileManager(t)
	path := filepath.Join(t.TempDir(), "nested", "settings.dat")

	require.NoError(t, fm.Save(path, sampleSettings()))

	loaded, err := fm.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", loaded.APIToken)
	require.Len(t, loaded.MachineCache.Items, 1)
	assert.Equal(t, "Pandora", loaded.MachineCache.Items[0].Name)
	require.NotNil(t, loaded.SherlockTemplate)
	assert.Equal(t, 5, loaded.SherlockTemplate.FolderRules[0].Priority)
}

func TestSettingsFileManager_MissingFileYieldsDefaults(t *testing.T) {
	fm := newFileManager(t)

	loaded, err := fm.Load(filepath.Join(t.TempDir(), "absent.dat"))
	require.NoError(t, err)
	assert.Empty(t, loaded.APIToken)
	assert.Empty(t, loaded.MachineCache.Items)
}

func TestSettingsFileManager_LegacyPlainJSONMigration(t *testing.T) {
	fm := newFileManager(t)
	path := filepath.Join(t.TempDir(), "settings.dat")

	// Pre-compression files were raw JSON on disk.
	raw, err := json.Marshal(sampleSettings())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	loaded, err := fm.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", loaded.APIToken)
}

func TestSettingsFileManager_CorruptFile(t *testing.T) {
	fm := newFileManager(t)
	path := filepath.Join(t.TempDir(), "settings.dat")
	require.NoError(t, os.WriteFile(path, []byte("not json, not zstd"), 0o644))

	_, err := fm.Load(path)
	assert.Error(t, err)
}

func TestSettingsFileManager_NoTempFileLeftBehind(t *testing.T) {
	fm := newFileManager(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.dat")

	require.NoError(t, fm.Save(path, sampleSettings()))
	require.NoError(t, fm.Save(path, sampleSettings()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.dat", entries[0].Name())
}
