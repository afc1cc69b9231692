package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/database"
)

const (
	migrationsSourceDir = "internal/database/migrations"
	migrateTimeout      = 2 * time.Minute
	devtoolMaxConns     = 2
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, create")
	}
	subcmd := args[0]

	// create only writes a file, so it goes through the goose CLI without a database
	if subcmd == "create" {
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		migrationType := "sql"
		if len(args) > 2 {
			migrationType = args[2]
		}
		return runStreaming("go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", migrationsSourceDir, "create", args[1], migrationType)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch subcmd {
	case "up":
		if err := database.MigrateUp(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		if err := database.MigrateDown(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Last migration rolled back")
	case "status":
		statuses, err := database.MigrationStatuses(ctx, pool)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		if len(statuses) == 0 {
			PrintInfo("No migrations found")
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("  %05d  %-8s  %s\n", s.Version, state, s.Source)
		}
	default:
		return fmt.Errorf("unknown subcommand %q: want up, down, status or create", subcmd)
	}
	return nil
}

// openPool connects with DB_URL when set and the app's DB_* variables otherwise.
// It skips config.Load so that migrations do not need API_KEY.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	connString := os.Getenv("DB_URL")
	if connString == "" {
		cfg := &config.Config{
			DBUser:     getEnv("DB_USER", "postgres"),
			DBPassword: getEnv("DB_PASSWORD", "postgres"),
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "5432"),
			DBName:     getEnv("DB_NAME", config.DefaultDBName),
		}
		connString = cfg.GetDBConnString()
	}
	return database.NewPool(ctx, connString, database.PoolOptions{
		MaxConns:        devtoolMaxConns,
		ApplicationName: appName + "-devtool",
	})
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
