package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestReadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		env, err := readEnv(fakeEnv(map[string]string{
			"DISCORD_TOKEN":  "tok",
			"DISCORD_APP_ID": "app",
		}))

		require.NoError(t, err)
		assert.Equal(t, defaultAPIURL, env.APIURL)
		assert.Equal(t, defaultWebhookPort, env.WebhookPort)
		assert.False(t, env.ForceSync)
		assert.Equal(t, "json", env.LogFormat)
	})

	t.Run("overrides", func(t *testing.T) {
		env, err := readEnv(fakeEnv(map[string]string{
			"DISCORD_TOKEN":                "tok",
			"DISCORD_APP_ID":               "app",
			"API_URL":                      "http://api:8080",
			"DISCORD_WEBHOOK_PORT":         "9000",
			"DISCORD_FORCE_COMMAND_UPDATE": "TRUE",
			"LOG_FORMAT":                   "text",
		}))

		require.NoError(t, err)
		assert.Equal(t, "http://api:8080", env.APIURL)
		assert.Equal(t, "9000", env.WebhookPort)
		assert.True(t, env.ForceSync)
		assert.Equal(t, "text", env.LogFormat)
	})

	t.Run("missing credentials", func(t *testing.T) {
		env, err := readEnv(fakeEnv(map[string]string{"LOG_LEVEL": "debug"}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DISCORD_TOKEN, DISCORD_APP_ID")
		assert.Equal(t, "debug", env.LogLevel, "logging settings survive the error")
	})
}
