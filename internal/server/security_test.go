package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// fixedClock pins the tracker to a movable instant
func fixedClock(t *abuseTracker, start time.Time) *time.Time {
	now := start
	t.now = func() time.Time { return now }
	t.windowStart = start
	return &now
}

func TestRequireAPIKey(t *testing.T) {
	tracker := newAbuseTracker(RateLimit{})
	h := requireAPIKey(testAPIKey, newClientResolver(nil), tracker)(okHandler)

	tests := []struct {
		name       string
		key        string
		path       string
		wantStatus int
	}{
		{"valid key", testAPIKey, "/api/v1/profiles", http.StatusOK},
		{"wrong key", "nope", "/api/v1/profiles", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/glyphs/", http.StatusUnauthorized},
		{"healthz is public", "", "/healthz", http.StatusOK},
		{"swagger is public", "", "/swagger/index.html", http.StatusOK},
		{"metrics is public", "", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.RemoteAddr = "198.51.100.7:5000"
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}

	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	assert.Equal(t, 2, tracker.clients["198.51.100.7"].failedAuth)
}

func TestClientResolver(t *testing.T) {
	tests := []struct {
		name      string
		trusted   []string
		remote    string
		forwarded string
		want      string
	}{
		{"direct peer", nil, "10.0.0.5:4000", "", "10.0.0.5"},
		{"header from untrusted peer ignored", nil, "10.0.0.5:4000", "1.2.3.4", "10.0.0.5"},
		{"trusted peer uses last hop", []string{"10.0.0.1"}, "10.0.0.1:4000", "1.2.3.4, 5.6.7.8", "5.6.7.8"},
		{"cidr skips inner proxies", []string{"10.0.0.0/8"}, "10.0.0.1:4000", "1.2.3.4, 10.9.9.9", "1.2.3.4"},
		{"mapped ipv4 peer", []string{"10.0.0.1"}, "[::ffff:10.0.0.1]:4000", "203.0.113.9", "203.0.113.9"},
		{"garbage hop falls back to peer", []string{"10.0.0.1"}, "10.0.0.1:4000", "not-an-ip", "10.0.0.1"},
		{"only proxies in chain", []string{"10.0.0.0/8"}, "10.0.0.1:4000", "10.1.1.1", "10.0.0.1"},
		{"invalid entries skipped", []string{"bogus", "10.0.0.1/99"}, "10.0.0.1:4000", "1.2.3.4", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, newClientResolver(tt.trusted).resolve(req))
		})
	}
}

func TestAbuseTracker_WindowRolls(t *testing.T) {
	tracker := newAbuseTracker(RateLimit{Requests: 2, Window: time.Minute})
	now := fixedClock(tracker, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	ok, _ := tracker.allow("a")
	assert.True(t, ok)
	ok, _ = tracker.allow("a")
	assert.True(t, ok)

	ok, wait := tracker.allow("a")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, wait)

	// Other clients have their own budget
	ok, _ = tracker.allow("b")
	assert.True(t, ok)

	*now = now.Add(time.Minute)
	ok, _ = tracker.allow("a")
	assert.True(t, ok, "a new window resets the count")
}

func TestThrottle(t *testing.T) {
	t.Run("rejects over the limit with Retry-After", func(t *testing.T) {
		tracker := newAbuseTracker(RateLimit{Requests: 3, Window: time.Minute})
		now := fixedClock(tracker, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
		h := throttle(newClientResolver(nil), tracker)(okHandler)

		send := func(path string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.RemoteAddr = "192.168.1.100:1234"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			return rec
		}

		for i := 0; i < 3; i++ {
			require.Equal(t, http.StatusOK, send("/api/v1/glyphs/").Code, "request %d", i)
		}

		*now = now.Add(15 * time.Second)
		rec := send("/api/v1/glyphs/")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "45", rec.Header().Get(HeaderRetryAfter))
		assert.JSONEq(t, `{"error":"Too many requests, slow down"}`, rec.Body.String())

		assert.Equal(t, http.StatusOK, send("/healthz").Code, "probes are never throttled")
	})

	t.Run("zero limit disables", func(t *testing.T) {
		h := throttle(newClientResolver(nil), newAbuseTracker(RateLimit{}))(okHandler)
		for i := 0; i < 50; i++ {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/glyphs/", nil))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestLimitBody(t *testing.T) {
	h := limitBody(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("too long")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	secureHeaders(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestRequestLogging_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/glyphs/", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "forge-cli")
	requestLogging(newClientResolver(nil))(okHandler).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "mytoken")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "forge-cli")
	assert.Contains(t, out, "status=200")

	buf.Reset()
	requestLogging(newClientResolver(nil))(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String(), "probe paths are not logged")
}
