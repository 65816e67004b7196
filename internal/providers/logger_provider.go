package providers

import (
	"io"
	"os"
	"path/filepath"

	"htbnotes/internal/structures"

	"github.com/rs/zerolog"
)

// TypeEnum tags log records with the subsystem they came from.
type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeHttp
	TypeCache
	TypeImport
)

func (t TypeEnum) String() string {
	switch t {
	case TypeHttp:
		return "http"
	case TypeCache:
		return "cache"
	case TypeImport:
		return "import"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	log  zerolog.Logger
	file *os.File
}

// NewLogProvider opens the log file under the configured directory and
// builds the zerolog backend. In debug mode records are mirrored to
// stderr in console format.
func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(conf.Logger.Dir, 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		filepath.Join(conf.Logger.Dir, conf.AppName+".log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		os.FileMode(conf.Logger.Mode),
	)
	if err != nil {
		return nil, err
	}

	var out io.Writer = file
	if conf.Debug {
		out = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		level = zerolog.DebugLevel
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &LogProvider{log: log, file: file}, nil
}

func (p *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	p.log.Error().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	p.log.Warn().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	p.log.Info().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	p.log.Debug().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	p.log.Fatal().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Close() {
	if p.file != nil {
		_ = p.file.Close()
	}
}
