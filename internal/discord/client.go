package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/utils"
)

// APIPrefix is the versioned prefix of every CharacterForge API route
const APIPrefix = "/api/v1"

// Retry settings for API calls
const (
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond
	requestTimeout = 10 * time.Second
)

// APIClient handles communication with the CharacterForge API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
const apiErrorPrefix = "API error: "

func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: requestTimeout,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := baseRetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doJSON performs a request and decodes a 2xx JSON body into out.
// Error bodies surface as apiErrorPrefix followed by the message.
func (c *APIClient) doJSON(method, path string, body, out interface{}) error {
	resp, err := c.doRequest(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if msg := utils.String(raw, "error"); msg != "" {
			if details := fieldErrors(raw); details != "" {
				msg += ": " + details
			}
			return fmt.Errorf("%s%s", apiErrorPrefix, msg)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// fieldErrors flattens a validation response's "fields" object into "field: reason" pairs
func fieldErrors(raw []byte) string {
	fields := gjson.GetBytes(raw, "fields")
	if !fields.IsObject() {
		return ""
	}
	var parts []string
	fields.ForEach(func(k, v gjson.Result) bool {
		parts = append(parts, k.String()+": "+v.String())
		return true
	})
	return strings.Join(parts, "; ")
}

// Ping checks that the API answers its liveness probe
func (c *APIClient) Ping() error {
	return c.doJSON(http.MethodGet, "/healthz", nil, nil)
}

// AnalyzeGlyphs detects the glyphs named in free text
func (c *APIClient) AnalyzeGlyphs(text string) (*domain.GlyphDetection, error) {
	var detection domain.GlyphDetection
	req := map[string]string{"text": text}
	if err := c.doJSON(http.MethodPost, APIPrefix+"/glyphs/analyze", req, &detection); err != nil {
		return nil, err
	}
	return &detection, nil
}

// ComputePotion evaluates a binder, catalyst and reactants combination
func (c *APIClient) ComputePotion(binder, catalyst string, reactants []string) (*domain.PotionResult, error) {
	if reactants == nil {
		reactants = []string{}
	}
	req := map[string]interface{}{
		"binder":    binder,
		"catalyst":  catalyst,
		"reactants": reactants,
	}

	var result domain.PotionResult
	if err := c.doJSON(http.MethodPost, APIPrefix+"/potion/compute", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EvaluateCrystal evaluates a crystal build without storing it
func (c *APIClient) EvaluateCrystal(rank, refine string, tiers map[string]int) (*crystal.Report, error) {
	req := map[string]interface{}{
		"rank":   rank,
		"refine": refine,
	}
	if len(tiers) > 0 {
		req["tiers"] = tiers
	}

	var report crystal.Report
	if err := c.doJSON(http.MethodPost, APIPrefix+"/crystal/evaluate", req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetCrystalConfig returns the crystal rules tables
func (c *APIClient) GetCrystalConfig() (*crystal.Config, error) {
	var cfg crystal.Config
	if err := c.doJSON(http.MethodGet, APIPrefix+"/crystal/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
