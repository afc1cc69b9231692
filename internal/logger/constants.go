package logger

// Accepted LOG_LEVEL values, matched case-insensitively
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const DefaultServiceName = "characterforge"

// Environments that log source locations
var developmentEnvironments = map[string]bool{
	"dev":         true,
	"development": true,
	"local":       true,
}

// Attribute keys added by this package
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyProfileID   = "profile_id"
)

// RedactedValue replaces the value of any attribute named in sensitiveKeys
const RedactedValue = "[REDACTED]"

var sensitiveKeys = map[string]bool{
	"api_key":     true,
	"password":    true,
	"db_password": true,
	"token":       true,
	"bot_token":   true,
}
