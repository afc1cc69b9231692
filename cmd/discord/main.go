package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/CharacterForge_Go/internal/discord"
	"github.com/osse101/CharacterForge_Go/internal/logger"
)

const (
	defaultWebhookPort = "8082"
	defaultAPIURL      = "http://localhost:8080"
	serviceName        = "characterforge-discord"
)

// botEnv is the bot's view of the environment
type botEnv struct {
	discord.Config
	WebhookPort string
	ForceSync   bool
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
}

func main() {
	_ = godotenv.Load()

	env, err := readEnv(os.Getenv)
	logger.InitLogger(logger.NewConfig(env.LogLevel, env.LogFormat, serviceName, env.Version, env.Environment))
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	if err := run(env); err != nil {
		slog.Error("Discord bot stopped", "error", err)
		os.Exit(1)
	}
}

func run(env botEnv) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if env.APIKey == "" {
		slog.Warn("API_KEY not set, API calls will be rejected")
	}
	if env.DevChannelID == "" {
		slog.Info("DISCORD_DEV_CHANNEL_ID not set, announcements are disabled")
	}

	bot, err := discord.New(env.Config)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	bot.Registry.RegisterAll(discord.DefaultCommands())

	httpServer := discord.NewHTTPServer(env.WebhookPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	// Commands registered by an earlier run keep working when the sync fails
	if err := bot.SyncCommands(bot.Registry, env.ForceSync); err != nil {
		slog.Error("Failed to sync commands", "error", err)
	}

	return bot.Run(ctx)
}

// readEnv collects the bot settings. The logging fields are always filled so
// a configuration error can still be logged in the right format.
func readEnv(getenv func(string) string) (botEnv, error) {
	or := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	env := botEnv{
		Config: discord.Config{
			Token:        getenv("DISCORD_TOKEN"),
			AppID:        getenv("DISCORD_APP_ID"),
			APIURL:       or("API_URL", defaultAPIURL),
			APIKey:       getenv("API_KEY"),
			DevChannelID: getenv("DISCORD_DEV_CHANNEL_ID"),
		},
		WebhookPort: or("DISCORD_WEBHOOK_PORT", defaultWebhookPort),
		ForceSync:   strings.EqualFold(getenv("DISCORD_FORCE_COMMAND_UPDATE"), "true"),
		LogLevel:    or("LOG_LEVEL", logger.LogLevelInfo),
		LogFormat:   or("LOG_FORMAT", logger.LogFormatJSON),
		Environment: or("ENVIRONMENT", "dev"),
		Version:     or("VERSION", "dev"),
	}

	var missing []string
	if env.Token == "" {
		missing = append(missing, "DISCORD_TOKEN")
	}
	if env.AppID == "" {
		missing = append(missing, "DISCORD_APP_ID")
	}
	if len(missing) > 0 {
		return env, errors.New("missing required variables: " + strings.Join(missing, ", "))
	}
	return env, nil
}
