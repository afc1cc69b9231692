package eventlog

import "time"

// History limits
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Retention job
const (
	RetentionJobName  = "activity-retention"
	RetentionInterval = 24 * time.Hour
)

// Log messages - service events
const (
	LogMsgEventMissingProfile = "Event has no profile ID, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event"
	LogMsgEventLogged         = "Event logged"
)

// Log messages - retention job
const (
	LogMsgRetentionPruned  = "Pruned old activity"
	LogMsgRetentionOverlap = "Previous retention run still active, skipping"
)

// Error messages
const (
	ErrMsgMarshalPayload = "failed to marshal event payload"
	ErrMsgInvalidLimit   = "limit must be between 1 and 500"
)
