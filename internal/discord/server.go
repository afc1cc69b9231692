package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultAnnounceColor = 0x00FF00
	shutdownTimeout      = 5 * time.Second
	maxAnnounceBody      = 16 << 10
)

// HTTPServer serves the bot's health probe and the internal announce hook
type HTTPServer struct {
	server   *http.Server
	bot      *Bot
	validate *validator.Validate
}

func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	srv := &HTTPServer{bot: bot, validate: validator.New()}

	r := chi.NewRouter()
	r.Get("/health", srv.HandleHealth)
	r.Post("/admin/announce", srv.handleAnnounce)

	srv.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv
}

func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord internal HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord internal HTTP server failed", "error", err)
		}
	}()
}

func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord internal HTTP server shutdown failed", "error", err)
	}
}

// AnnounceRequest is an embed to post in the developer channel. Lengths
// follow Discord's embed limits.
type AnnounceRequest struct {
	Title       string `json:"title" validate:"required_without=Description,max=256"`
	Description string `json:"description" validate:"required_without=Title,max=4096"`
	Color       int    `json:"color" validate:"min=0,max=16777215"`
}

func (s *HTTPServer) handleAnnounce(w http.ResponseWriter, r *http.Request) {
	var req AnnounceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnnounceBody)).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Color == 0 {
		req.Color = defaultAnnounceColor
	}

	embed := newEmbed(req.Title, req.Description, req.Color, FooterSystemUpdate)
	embed.Timestamp = time.Now().Format(time.RFC3339)

	switch err := s.bot.SendDevMessage(embed); {
	case errors.Is(err, ErrNoDevChannel):
		writeStatus(w, http.StatusServiceUnavailable, err.Error())
	case err != nil:
		slog.Error("Failed to send announcement", "error", err)
		writeStatus(w, http.StatusBadGateway, "failed to send to Discord")
	default:
		writeStatus(w, http.StatusOK, "ok")
	}
}

// writeStatus answers with {"status": msg}
func writeStatus(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": msg})
}
