package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := map[string]int{
		"":             42,
		"100":          100,
		"-10":          -10,
		"0":            0,
		"not-a-number": 42,
		"42.5":         42,
		" 7":           42,
	}
	for raw, want := range tests {
		t.Run("value="+raw, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", raw)
			assert.Equal(t, want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}

	t.Run("unset", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	fallback := 5 * time.Minute
	tests := map[string]time.Duration{
		"":               fallback,
		"10m":            10 * time.Minute,
		"1h30m45s":       time.Hour + 30*time.Minute + 45*time.Second,
		"500ms":          500 * time.Millisecond,
		"500us":          500 * time.Microsecond,
		"100":            fallback,
		"not-a-duration": fallback,
	}
	for raw, want := range tests {
		t.Run("value="+raw, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", raw)
			assert.Equal(t, want, getEnvAsDuration("TEST_DURATION_VAR", fallback))
		})
	}
}

func TestLoad_DatabasePool(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantConns    int
		wantIdle     time.Duration
		wantLifetime time.Duration
	}{
		{
			name:         "defaults",
			wantConns:    20,
			wantIdle:     5 * time.Minute,
			wantLifetime: 30 * time.Minute,
		},
		{
			name: "custom",
			env: map[string]string{
				"DB_MAX_CONNS":          "50",
				"DB_MAX_CONN_IDLE_TIME": "10m",
				"DB_MAX_CONN_LIFETIME":  "1h",
			},
			wantConns:    50,
			wantIdle:     10 * time.Minute,
			wantLifetime: time.Hour,
		},
		{
			name: "malformed values fall back",
			env: map[string]string{
				"DB_MAX_CONNS":          "lots",
				"DB_MAX_CONN_IDLE_TIME": "invalid",
				"DB_MAX_CONN_LIFETIME":  "forever",
			},
			wantConns:    20,
			wantIdle:     5 * time.Minute,
			wantLifetime: 30 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("API_KEY", "test-key")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.NoError(t, err)
			assert.Equal(t, tt.wantConns, cfg.DBMaxConns)
			assert.Equal(t, tt.wantIdle, cfg.DBMaxConnIdleTime)
			assert.Equal(t, tt.wantLifetime, cfg.DBMaxConnLifetime)
		})
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"single", "10.0.0.1", []string{"10.0.0.1"}},
		{"trims and drops empty", " 10.0.0.1 , ,127.0.0.1,", []string{"10.0.0.1", "127.0.0.1"}},
		{"blank uses default", "   ", []string{"default"}},
		{"only commas uses default", ",,", []string{"default"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SLICE_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsSlice("TEST_SLICE_VAR", []string{"default"}))
		})
	}
}

func TestLoad_CatalogAndStorageConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
		assert.False(t, cfg.UsesPostgres())
		assert.Empty(t, cfg.ConfigDir, "empty means embedded catalogs")
		assert.Equal(t, DefaultAnalysisCacheSize, cfg.AnalysisCacheSize)
		assert.Equal(t, DefaultAnalysisCacheTTL, cfg.AnalysisCacheTTL)
		assert.Nil(t, cfg.TrustedProxies)
		assert.Empty(t, cfg.LogDir)
		assert.Equal(t, DefaultEventMaxRetries, cfg.EventMaxRetries)
		assert.Equal(t, DefaultEventRetryDelay, cfg.EventRetryDelay)
		assert.Equal(t, DefaultEventDeadLetterPath, cfg.EventDeadLetterPath)
		assert.Zero(t, cfg.CatalogReloadInterval, "periodic reload is off by default")
		assert.Equal(t, DefaultEventLogRetentionDays, cfg.EventLogRetentionDays)
		assert.Equal(t, DefaultRateLimitRequests, cfg.RateLimitRequests)
		assert.Equal(t, DefaultRateLimitWindow, cfg.RateLimitWindow)
	})

	t.Run("custom", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("STORAGE_DRIVER", "Postgres")
		t.Setenv("CONFIG_DIR", "/etc/characterforge")
		t.Setenv("ANALYSIS_CACHE_SIZE", "1024")
		t.Setenv("ANALYSIS_CACHE_TTL", "90s")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")
		t.Setenv("CATALOG_RELOAD_INTERVAL", "5m")
		t.Setenv("EVENT_LOG_RETENTION_DAYS", "0")
		t.Setenv("RATE_LIMIT_REQUESTS", "0")
		t.Setenv("RATE_LIMIT_WINDOW", "1m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.True(t, cfg.UsesPostgres())
		assert.Equal(t, "/etc/characterforge", cfg.ConfigDir)
		assert.Equal(t, 1024, cfg.AnalysisCacheSize)
		assert.Equal(t, 90*time.Second, cfg.AnalysisCacheTTL)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 5*time.Minute, cfg.CatalogReloadInterval)
		assert.Zero(t, cfg.EventLogRetentionDays)
		assert.Zero(t, cfg.RateLimitRequests, "zero disables throttling")
		assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	})

	t.Run("rejects unknown storage driver", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("STORAGE_DRIVER", "sqlite")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "STORAGE_DRIVER")
	})
}

func TestCatalogPaths(t *testing.T) {
	assert.Len(t, CatalogFiles, 7)
	assert.Equal(t, "configs/glyphs.json", ConfigPathGlyphs)
	assert.Equal(t, "configs/schemas/glyphs.schema.json", SchemaPathFor(ConfigPathGlyphs))
	assert.Equal(t, "configs/schemas/crystal.schema.json", SchemaPathFor(ConfigPathCrystal))
}
