package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/osse101/CharacterForge_Go/internal/handler"
	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// Probe and scrape paths are too frequent to log
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if redactedHeaders[http.CanonicalHeaderKey(k)] {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// requestLogging tags the context with a request ID and logs each request
// with the client it was attributed to.
func requestLogging(clients *clientResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range quietPaths {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}

			start := time.Now()
			ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
			r = r.WithContext(ctx)
			log := logger.FromContext(ctx)

			log.Info(LogMsgRequestStarted,
				"method", r.Method,
				"path", r.URL.Path,
				"client", clients.resolve(r),
				"content_length", r.ContentLength,
				"user_agent", r.UserAgent())
			log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.Info(LogMsgRequestCompleted,
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds())
		})
	}
}

// profileScope tags the context of profile routes so service logs carry the profile ID.
func profileScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, handler.ProfileIDParam); id != "" {
			r = r.WithContext(logger.WithProfileID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
