package main

import (
	"context"
	"fmt"
	"time"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Aliases() []string {
	return []string{"wait"}
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	var lastErr error
	for i := 0; i < waitMaxRetries; i++ {
		lastErr = pingOnce()
		if lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, lastErr)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitMaxRetries, lastErr)
}

// pingOnce opens a pool, which pings on connect, and closes it again
func pingOnce() error {
	ctx, cancel := context.WithTimeout(context.Background(), waitRetryInterval)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	pool.Close()
	return nil
}
