package services

import (
	"os"
	"path/filepath"

	"htbnotes/internal/providers"
	"htbnotes/internal/structures"

	json "github.com/goccy/go-json"
)

// SettingsFileManager persists the settings blob as zstd-compressed
// JSON. Writes go through a temp file and rename so a crash never
// leaves a half-written blob behind.
type SettingsFileManager struct {
	compressor CompressorInterface
	logger     providers.Logger
}

func NewSettingsFileManager(compressor CompressorInterface, logger providers.Logger) *SettingsFileManager {
	return &SettingsFileManager{
		compressor: compressor,
		logger:     logger,
	}
}

func (f *SettingsFileManager) Save(fileName string, settings *structures.Settings) error {
	jsonData, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// Load reads the settings blob. A missing file yields fresh defaults.
// Plain-JSON files from before compression was introduced migrate
// transparently; they get rewritten compressed on the next save.
func (f *SettingsFileManager) Load(fileName string) (*structures.Settings, error) {
	var settings structures.Settings

	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return &settings, nil
		}
		return nil, err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err == nil {
		if err := json.Unmarshal(decompressed, &settings); err != nil {
			return nil, err
		}
		return &settings, nil
	}

	f.logger.Warnf(providers.TypeApp, "Settings not zstd-compressed, trying legacy plain JSON")
	if err := json.Unmarshal(data, &settings); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return nil, err
	}
	f.logger.Warnf(providers.TypeApp, "Migration from legacy format successful")
	return &settings, nil
}

func (f *SettingsFileManager) Close() {
	f.compressor.Close()
}
