package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	LogDir      string // empty logs to stdout only

	// Storage
	StorageDriver     string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Catalogs
	ConfigDir             string // empty means the catalogs embedded in the binary
	CatalogReloadInterval time.Duration // zero disables periodic reloads
	AnalysisCacheSize     int
	AnalysisCacheTTL      time.Duration

	// Events
	EventMaxRetries       int
	EventRetryDelay       time.Duration
	EventDeadLetterPath   string
	EventLogRetentionDays int // zero keeps activity forever

	// HTTP edge
	TrustedProxies    []string // addresses or CIDR ranges
	RateLimitRequests int      // per client per window; zero disables
	RateLimitWindow   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		LogDir:      getEnv("LOG_DIR", ""),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverMemory)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		ConfigDir:             getEnv("CONFIG_DIR", ""),
		CatalogReloadInterval: getEnvAsDuration("CATALOG_RELOAD_INTERVAL", 0),
		AnalysisCacheSize:     getEnvAsInt("ANALYSIS_CACHE_SIZE", DefaultAnalysisCacheSize),
		AnalysisCacheTTL:      getEnvAsDuration("ANALYSIS_CACHE_TTL", DefaultAnalysisCacheTTL),

		EventMaxRetries:       getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:       getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath:   getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		EventLogRetentionDays: getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays),

		TrustedProxies:    getEnvAsSlice("TRUSTED_PROXIES", nil),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StorageDriver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: expected %s or %s", cfg.StorageDriver, StorageDriverMemory, StorageDriverPostgres)
	}

	return cfg, nil
}

// UsesPostgres reports whether profile state is stored in Postgres
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == StorageDriverPostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration ("30s", "5m"); bare numbers are rejected
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice splits a comma separated variable, dropping empty items
func getEnvAsSlice(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
