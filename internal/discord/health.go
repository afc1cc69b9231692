package discord

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

// currentHealth snapshots the counters; connected and apiReachable come from live probes
func currentHealth(connected, apiReachable bool) HealthStatus {
	status := "healthy"
	if !connected || !apiReachable {
		status = "degraded"
	}

	var last time.Time
	if nano := lastCommandNano.Load(); nano > 0 {
		last = time.Unix(0, nano)
	}

	return HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  last,
		APIReachable:     apiReachable,
	}
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady
	apiReachable := h.bot.Client != nil && h.bot.Client.Ping() == nil

	health := currentHealth(connected, apiReachable)

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	// Headers are already sent, so an encode failure has nowhere to go
	_ = json.NewEncoder(w).Encode(health)
}
