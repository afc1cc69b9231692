package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized     = "Logging initialized"
	LogMsgStartingCharacterForge = "Starting CharacterForge"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgFailedCreateLogsDir    = "failed to create logs directory"
	LogMsgFailedOpenLogFile      = "failed to open log file"
	LogMsgFailedDeleteOldLog     = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Storage and Catalogs
// =============================================================================

const (
	LogMsgStorageMemory       = "Profile state stored in memory; it is lost on restart"
	LogMsgStoragePostgres     = "Profile state stored in Postgres"
	LogMsgMigrationsApplied   = "Database migrations applied"
	LogMsgCatalogsLoaded      = "Catalogs loaded"
	LogMsgCatalogsEmbedded    = "Using catalogs embedded in the binary"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to apply database migrations"
	ErrMsgFailedPingStore     = "state store unreachable"
	ErrMsgEmptyGlyphCatalog   = "glyph catalog is empty"
	ErrMsgEmptyPotionCatalog  = "potion catalog is empty"
	LogMsgCatalogPartialLoad  = "Catalogs loaded with missing entries"
	LogMsgServicesInitialized = "Services initialized"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown       = "Shutting down..."
	LogMsgShutdownStepFailed = "Shutdown step failed"
	LogMsgShutdownStepDone   = "Shutdown step finished"
	LogMsgClosingDatabase    = "Closing database pool..."
	LogMsgServerStopped      = "Server stopped"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// CatalogReloadJobName names the periodic reload job in worker logs
	CatalogReloadJobName = "catalog-reload"

	LogMsgBackgroundJobScheduled = "Background job scheduled"
	LogMsgBackgroundJobRejected  = "Background job could not be scheduled"
	LogMsgCatalogReloadSkipped   = "Periodic catalog reload ignored for embedded catalogs"
	LogMsgCatalogsReloaded       = "Catalogs reloaded"
	LogMsgStoppingBackgroundJobs = "Stopping background jobs..."
	LogMsgEventLogRegistered     = "Activity log subscribed to profile events"

	ErrMsgFailedRegisterEventLog = "failed to register activity log"
)
