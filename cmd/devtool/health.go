package main

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultHealthURL  = "http://localhost:8080"
	slowHealthWarning = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Aliases() []string {
	return []string{"health"}
}

func (c *HealthCheckCommand) Description() string {
	return "Check the API liveness and readiness probes [base-url]"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := getEnv("API_URL", defaultHealthURL)
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, probe := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkHealth(client, baseURL+probe); err != nil {
			PrintError("%s failed: %v", probe, err)
			return err
		}
		duration := time.Since(start)

		if duration > slowHealthWarning {
			PrintWarning("%s slow response time (%v)", probe, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", probe, duration)
		}
	}

	return nil
}

func checkHealth(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return nil
}
