package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsRejected,
			Help: HelpTextHTTPRequestsRejected,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Catalog Metrics
var (
	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLoadErrors,
			Help: HelpTextCatalogLoadErrors,
		},
		[]string{LabelFile},
	)
)

// Business Metrics
var (
	ProfilesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesCreated,
			Help: HelpTextProfilesCreated,
		},
	)

	ProfilesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesDeleted,
			Help: HelpTextProfilesDeleted,
		},
	)

	GlyphSelectionChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGlyphSelectionChanges,
			Help: HelpTextGlyphSelectionChanges,
		},
	)

	GlyphSelectionMana = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGlyphSelectionMana,
			Help:    HelpTextGlyphSelectionMana,
			Buckets: ManaBuckets,
		},
	)

	PotionRecipesMatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePotionRecipesMatched,
			Help: HelpTextPotionRecipesMatched,
		},
		[]string{LabelRecipe},
	)

	PotionBookChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePotionBookChanges,
			Help: HelpTextPotionBookChanges,
		},
	)

	CrystalChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCrystalChanges,
			Help: HelpTextCrystalChanges,
		},
	)

	CrystalTierRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrystalTierRejections,
			Help: HelpTextCrystalTierRejections,
		},
		[]string{LabelQuality},
	)

	CrystalBuildDifficulty = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCrystalBuildDifficulty,
			Help:    HelpTextCrystalBuildDifficulty,
			Buckets: DifficultyBuckets,
		},
	)
)
