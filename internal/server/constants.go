package server

import (
	"net/http"
	"time"
)

// Error bodies written by the middleware chain
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too many requests, slow down"
)

// Values of the reason label on rejected requests
const (
	RejectReasonAuth = "unauthorized"
	RejectReasonRate = "rate_limited"
)

// Abuse tracking
const (
	DefaultRateWindow    = 5 * time.Minute
	FailedAuthAlertEvery = 5
	ThrottleLogEvery     = 100
)

const (
	LogMsgServerStarting       = "Server starting"
	LogMsgRequestStarted       = "Request started"
	LogMsgRequestCompleted     = "Request completed"
	LogMsgRequestHeaders       = "Request headers"
	LogMsgAuthFailed           = "Authentication failed"
	LogMsgRepeatedAuthFailures = "Repeated authentication failures from client"
	LogMsgClientThrottled      = "Client exceeded the request rate"
	LogMsgInvalidTrustedProxy  = "Ignoring invalid trusted proxy entry"
)

const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	HeaderForwardedFor  = "X-Forwarded-For"
	HeaderRetryAfter    = "Retry-After"
)

// SecurityHeaders is set on every response
var SecurityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Cache-Control", "no-store"},
}

// PublicPaths are prefixes served without an API key or throttling
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// Headers whose values never reach the logs
var redactedHeaders = map[string]bool{
	http.CanonicalHeaderKey(HeaderAPIKey):        true,
	http.CanonicalHeaderKey(HeaderAuthorization): true,
	http.CanonicalHeaderKey("Cookie"):            true,
}

const RedactedValue = "[REDACTED]"
