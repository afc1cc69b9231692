package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/domain"
)

func invoke(t *testing.T, a *app, body string) events.LambdaFunctionURLResponse {
	t.Helper()
	resp, err := a.handle(context.Background(), events.LambdaFunctionURLRequest{Body: body})
	require.NoError(t, err)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	return resp
}

func TestHandle_Analyze(t *testing.T) {
	a := newApp(context.Background())

	resp := invoke(t, a, `{"action":"analyze","text":"🌌 Zone"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)

	var detection domain.GlyphDetection
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &detection))
	require.NotEmpty(t, detection.Detected)
	assert.Equal(t, "🌌 Zone", detection.Detected[0].Name)
}

func TestHandle_Compute(t *testing.T) {
	a := newApp(context.Background())

	resp := invoke(t, a, `{"action":"compute"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)

	var result domain.PotionResult
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &result))
	assert.Nil(t, result.Recipe)
}

func TestHandle_Crystal(t *testing.T) {
	a := newApp(context.Background())

	resp := invoke(t, a, `{"action":"crystal","rank":"PIERRE"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)

	var report crystal.Report
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &report))
	assert.Equal(t, 1, report.BaseTier)
}

func TestHandle_Base64Body(t *testing.T) {
	a := newApp(context.Background())
	encoded := base64.StdEncoding.EncodeToString([]byte(`{"action":"crystal"}`))

	resp, err := a.handle(context.Background(), events.LambdaFunctionURLRequest{Body: encoded, IsBase64Encoded: true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = a.handle(context.Background(), events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandle_Errors(t *testing.T) {
	a := newApp(context.Background())

	tests := []struct {
		name     string
		body     string
		status   int
		contains string
	}{
		{"invalid json", `{`, http.StatusBadRequest, "invalid JSON"},
		{"missing action", `{}`, http.StatusBadRequest, "missing action"},
		{"unknown action", `{"action":"brew"}`, http.StatusBadRequest, "unknown action"},
		{"empty analyze text", `{"action":"analyze"}`, http.StatusBadRequest, "required"},
		{"unknown rank", `{"action":"crystal","rank":"DIAMANT"}`, http.StatusBadRequest, domain.ErrMsgUnknownRank},
		{"tier out of range", `{"action":"crystal","tiers":{"PUISSANCE":9}}`, http.StatusBadRequest, "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := invoke(t, a, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, resp.Body, tt.contains)
		})
	}
}
