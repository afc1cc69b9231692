package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/handler"
	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/metrics"
)

// RateLimit bounds how many requests one client may send per window.
// A non-positive Requests disables throttling.
type RateLimit struct {
	Requests int
	Window   time.Duration
}

// clientResolver attributes a request to a client address. X-Forwarded-For
// is only read when the direct peer is a trusted proxy.
type clientResolver struct {
	proxies []netip.Prefix
}

// newClientResolver accepts bare addresses and CIDR ranges. Invalid entries are skipped.
func newClientResolver(trusted []string) *clientResolver {
	c := &clientResolver{}
	for _, entry := range trusted {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if p, err := netip.ParsePrefix(entry); err == nil {
				c.proxies = append(c.proxies, p.Masked())
				continue
			}
		} else if a, err := netip.ParseAddr(entry); err == nil {
			a = a.Unmap()
			c.proxies = append(c.proxies, netip.PrefixFrom(a, a.BitLen()))
			continue
		}
		slog.Warn(LogMsgInvalidTrustedProxy, "entry", entry)
	}
	return c
}

func (c *clientResolver) trusts(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range c.proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// resolve walks X-Forwarded-For right to left and returns the first hop that
// is not one of our proxies.
func (c *clientResolver) resolve(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	addr, err := netip.ParseAddr(peer)
	if err != nil || !c.trusts(addr) {
		return peer
	}

	hops := strings.Split(r.Header.Get(HeaderForwardedFor), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		hopAddr, err := netip.ParseAddr(hop)
		if err != nil {
			return peer
		}
		if !c.trusts(hopAddr) {
			return hopAddr.Unmap().String()
		}
	}
	return peer
}

type clientCounters struct {
	requests   int
	failedAuth int
}

// abuseTracker counts requests and failed logins per client over a fixed window.
type abuseTracker struct {
	mu          sync.Mutex
	limit       RateLimit
	clients     map[string]*clientCounters
	windowStart time.Time
	now         func() time.Time
}

func newAbuseTracker(limit RateLimit) *abuseTracker {
	if limit.Window <= 0 {
		limit.Window = DefaultRateWindow
	}
	return &abuseTracker{
		limit:       limit,
		clients:     make(map[string]*clientCounters),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// countersFor rolls the window when it has elapsed. Caller holds mu.
func (t *abuseTracker) countersFor(ip string) *clientCounters {
	if now := t.now(); now.Sub(t.windowStart) >= t.limit.Window {
		t.clients = make(map[string]*clientCounters)
		t.windowStart = now
	}
	c, ok := t.clients[ip]
	if !ok {
		c = &clientCounters{}
		t.clients[ip] = c
	}
	return c
}

// recordFailedAuth returns the client's failure count in the current window.
func (t *abuseTracker) recordFailedAuth(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.countersFor(ip)
	c.failedAuth++
	if c.failedAuth%FailedAuthAlertEvery == 0 {
		slog.Warn(LogMsgRepeatedAuthFailures, "ip", ip, "count", c.failedAuth, "window", t.limit.Window)
	}
	return c.failedAuth
}

// allow counts the request and reports whether it fits the limit. When it
// does not, the second value is the time left until the window resets.
func (t *abuseTracker) allow(ip string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.countersFor(ip)
	c.requests++
	if t.limit.Requests <= 0 || c.requests <= t.limit.Requests {
		return true, 0
	}
	if over := c.requests - t.limit.Requests; over%ThrottleLogEvery == 1 {
		slog.Warn(LogMsgClientThrottled, "ip", ip, "count", c.requests, "limit", t.limit.Requests)
	}
	return false, t.windowStart.Add(t.limit.Window).Sub(t.now())
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// reject writes a JSON error and counts the rejection by reason.
func reject(w http.ResponseWriter, status int, message, reason string) {
	metrics.HTTPRequestsRejected.WithLabelValues(reason).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(handler.ErrorResponse{Error: message})
}

// requireAPIKey guards every non-public path behind the X-API-Key header.
func requireAPIKey(apiKey string, clients *clientResolver, tracker *abuseTracker) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clients.resolve(r)
			failures := tracker.recordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", provided != "",
				"ip", ip,
				"failures", failures)
			reject(w, http.StatusUnauthorized, ErrMsgUnauthorized, RejectReasonAuth)
		})
	}
}

// throttle enforces the per-client rate limit on non-public paths.
func throttle(clients *clientResolver, tracker *abuseTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if tracker.limit.Requests <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			if ok, wait := tracker.allow(clients.resolve(r)); !ok {
				secs := int(math.Ceil(wait.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(secs))
				reject(w, http.StatusTooManyRequests, ErrMsgTooManyRequests, RejectReasonRate)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// secureHeaders stamps SecurityHeaders on every response.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range SecurityHeaders {
			h.Set(kv[0], kv[1])
		}
		next.ServeHTTP(w, r)
	})
}
