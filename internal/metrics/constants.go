package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRequestsRejected = "http_requests_rejected_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Catalog metric names
const (
	MetricNameCatalogLoadErrors = "catalog_load_errors_total"
)

// Business metric names
const (
	MetricNameProfilesCreated        = "profiles_created_total"
	MetricNameProfilesDeleted        = "profiles_deleted_total"
	MetricNameGlyphSelectionChanges  = "glyph_selection_changes_total"
	MetricNameGlyphSelectionMana     = "glyph_selection_mana"
	MetricNamePotionRecipesMatched   = "potion_recipes_matched_total"
	MetricNamePotionBookChanges      = "potion_book_changes_total"
	MetricNameCrystalChanges         = "crystal_changes_total"
	MetricNameCrystalTierRejections  = "crystal_tier_rejections_total"
	MetricNameCrystalBuildDifficulty = "crystal_build_difficulty"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRequestsRejected = "Total number of HTTP requests rejected before routing"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Catalog metric help text
const (
	HelpTextCatalogLoadErrors = "Total number of catalog documents that failed to load"
)

// Business metric help text
const (
	HelpTextProfilesCreated        = "Total number of profiles created"
	HelpTextProfilesDeleted        = "Total number of profiles deleted"
	HelpTextGlyphSelectionChanges  = "Total number of glyph selection changes"
	HelpTextGlyphSelectionMana     = "Mana cost of glyph selections after each change"
	HelpTextPotionRecipesMatched   = "Total number of potion selections that matched a recipe"
	HelpTextPotionBookChanges      = "Total number of potion book list changes"
	HelpTextCrystalChanges         = "Total number of crystal build changes"
	HelpTextCrystalTierRejections  = "Total number of tier increases rejected for exceeding the budget"
	HelpTextCrystalBuildDifficulty = "Difficulty of crystal builds after each change"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelFile    = "file"
	LabelRecipe  = "recipe"
	LabelQuality = "quality"
	LabelReason  = "reason"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ManaBuckets covers glyph selections from a single glyph to a full bar
var ManaBuckets = []float64{0, 1, 2, 3, 5, 8, 13, 21}

// DifficultyBuckets covers crystal difficulties from the lowest rank to a maxed build
var DifficultyBuckets = []float64{5, 10, 15, 20, 30, 40, 60, 80, 120}

// UnmatchedRoute labels requests that did not match a route, keeping the
// path label bounded
const UnmatchedRoute = "unmatched"

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
