package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler, level and base attributes of the process logger.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config for an environment. Source locations are added in
// development environments only.
func NewConfig(level, format, serviceName, version, environment string) Config {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   IsDevelopment(environment),
	}
}

// IsDevelopment reports whether env names a local development environment.
func IsDevelopment(env string) bool {
	return developmentEnvironments[strings.ToLower(env)]
}

// LogLevel maps the configured level onto slog. Unknown values log at info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
