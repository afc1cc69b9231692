package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeForeignKeyViolation is raised when state is written for a missing profile
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - State Operations
const (
	ErrMsgFailedToCreateProfile = "failed to create profile"
	ErrMsgFailedToGetProfile    = "failed to get profile"
	ErrMsgFailedToDeleteProfile = "failed to delete profile"
	ErrMsgFailedToLoadState     = "failed to load state"
	ErrMsgFailedToSaveState     = "failed to save state"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToGetEvents     = "failed to get events"
	ErrMsgFailedToCleanupEvents = "failed to clean up events"
)
