package providers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"htbnotes/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("api.baseUrl", "https://labs.hackthebox.com/api/v4")
	viper.SetDefault("api.webBaseUrl", "https://app.hackthebox.com")
	viper.SetDefault("api.storageUrl", "https://htb-mp-prod-public-storage.s3.eu-central-1.amazonaws.com")
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("api.userAgent", "htbnotes")
	viper.SetDefault("vault.dir", ".")
	viper.SetDefault("vault.settingsFile", ".htbnotes/settings.dat")
	viper.SetDefault("vault.openAfterCreate", false)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", 0o644)
	viper.SetDefault("logger.dir", ".htbnotes/logs")
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.size", 16)
	viper.SetDefault("cache.ttl", 10*time.Minute)

	viper.BindEnv("api.token", "HTBNOTES_API_TOKEN")
	viper.BindEnv("api.baseUrl", "HTBNOTES_API_BASE_URL")
	viper.BindEnv("api.timeout", "HTBNOTES_API_TIMEOUT")
	viper.BindEnv("vault.dir", "HTBNOTES_VAULT_DIR")
	viper.BindEnv("logger.level", "HTBNOTES_LOG_LEVEL")
	viper.BindEnv("cache.enabled", "HTBNOTES_CACHE_ENABLED")
	viper.BindEnv("cache.size", "HTBNOTES_CACHE_SIZE")

	// The config file is optional for a CLI tool; defaults and env
	// cover the common case.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	conf.AppName = "htbnotes"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
