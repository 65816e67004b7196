package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type APIConfig struct {
	// Token is an optional bootstrap credential; the persisted
	// settings token takes precedence once one is stored.
	Token      string        `yaml:"token"`
	BaseURL    string        `yaml:"baseUrl" validate:"required|fullUrl"`
	WebBaseURL string        `yaml:"webBaseUrl" validate:"required|fullUrl"`
	StorageURL string        `yaml:"storageUrl" validate:"required|fullUrl"`
	Timeout    time.Duration `yaml:"timeout" validate:"required|min:1"`
	UserAgent  string        `yaml:"userAgent"`
}

type VaultConfig struct {
	Dir             string `yaml:"dir" validate:"required|unixPath"`
	SettingsFile    string `yaml:"settingsFile" validate:"required|unixPath"`
	OpenAfterCreate bool   `yaml:"openAfterCreate"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type Config struct {
	AppName string
	Debug   bool
	Path    string
	API     APIConfig    `yaml:"api"`
	Vault   VaultConfig  `yaml:"vault"`
	Logger  LoggerConfig `yaml:"logger"`
	Cache   CacheConfig  `yaml:"cache"`
}
