package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is bumped whenever .env.example gains a required variable
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be set whatever the storage driver
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// PostgresEnvVars must also be set when STORAGE_DRIVER=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// Values copied verbatim from .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// Variables Load parses, which silently fall back to their default when malformed
var (
	durationEnvVars = []string{
		"DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "ANALYSIS_CACHE_TTL",
		"CATALOG_RELOAD_INTERVAL", "EVENT_RETRY_DELAY", "RATE_LIMIT_WINDOW",
	}
	intEnvVars = []string{
		"DB_MAX_CONNS", "ANALYSIS_CACHE_SIZE", "EVENT_MAX_RETRIES",
		"EVENT_LOG_RETENTION_DAYS", "RATE_LIMIT_REQUESTS",
	}
)

// ValidateEnv fails when the schema version is stale or a required variable is empty.
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set: add it to your .env file (expected %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s; compare your .env with .env.example", ExpectedEnvSchemaVersion, v)
	}

	required := RequiredEnvVars
	if strings.EqualFold(os.Getenv("STORAGE_DRIVER"), StorageDriverPostgres) {
		required = append(append([]string(nil), RequiredEnvVars...), PostgresEnvVars...)
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then lists settings that load
// but are probably wrong. Warnings come back in a stable order.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, key := range []string{"DB_PASSWORD", "API_KEY"} {
		if os.Getenv(key) == placeholderValues[key] {
			warnings = append(warnings, fmt.Sprintf("%s still holds the .env.example placeholder; generate one with: openssl rand -hex 32", key))
		}
	}

	for _, key := range durationEnvVars {
		if raw := os.Getenv(key); raw != "" {
			if _, err := time.ParseDuration(raw); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not a duration like 30s or 5m; using the default", key, raw))
			}
		}
	}
	for _, key := range intEnvVars {
		if raw := os.Getenv(key); raw != "" {
			if _, err := strconv.Atoi(raw); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not an integer; using the default", key, raw))
			}
		}
	}

	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			warnings = append(warnings, fmt.Sprintf("CONFIG_DIR %q is not readable; catalogs will load empty", dir))
		}
	}
	return warnings, nil
}
