package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
	"github.com/osse101/CharacterForge_Go/internal/glyph"
	"github.com/osse101/CharacterForge_Go/internal/handler"
	"github.com/osse101/CharacterForge_Go/internal/metrics"
	"github.com/osse101/CharacterForge_Go/internal/potion"
	"github.com/osse101/CharacterForge_Go/internal/profile"
)

// MaxRequestBodyBytes caps every request body
const MaxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// Options carries the HTTP settings of the server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	RateLimit      RateLimit
}

// NewServer creates a new Server instance
func NewServer(opts Options, store handler.HealthChecker, profileService profile.Service, crystalService crystal.Service, glyphService glyph.Service, potionService potion.Service, activityService eventlog.Service, catalogs handler.CatalogReloader) *Server {
	r := chi.NewRouter()

	// Outermost first: clients over the limit are turned away before the key check
	clients := newClientResolver(opts.TrustedProxies)
	tracker := newAbuseTracker(opts.RateLimit)

	r.Use(secureHeaders)
	r.Use(throttle(clients, tracker))
	r.Use(requireAPIKey(opts.APIKey, clients, tracker))
	r.Use(limitBody(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(requestLogging(clients))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(opts.ServiceName))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	profileHandler := handler.NewProfileHandler(profileService)
	crystalHandler := handler.NewCrystalHandler(crystalService)
	glyphHandler := handler.NewGlyphHandler(glyphService)
	potionHandler := handler.NewPotionHandler(potionService)
	activityHandler := handler.NewActivityHandler(activityService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Stateless catalog routes
		r.Route("/glyphs", func(r chi.Router) {
			r.Get("/", glyphHandler.HandleList)
			r.Get("/series", glyphHandler.HandleSeries)
			r.Post("/analyze", glyphHandler.HandleAnalyze)
		})

		r.Route("/potion", func(r chi.Router) {
			r.Get("/recipes", potionHandler.HandleCatalogRecipes)
			r.Get("/inspect", potionHandler.HandleInspect)
			r.Post("/compute", potionHandler.HandleCompute)
			r.Post("/suggest", potionHandler.HandleSuggest)
		})

		r.Route("/crystal", func(r chi.Router) {
			r.Get("/config", crystalHandler.HandleConfig)
			r.Post("/evaluate", crystalHandler.HandleEvaluate)
		})

		// Profile routes
		r.Post("/profiles", profileHandler.HandleCreate)
		r.Route("/profiles/{"+handler.ProfileIDParam+"}", func(r chi.Router) {
			r.Use(profileScope)
			r.Get("/", profileHandler.HandleGet)
			r.Delete("/", profileHandler.HandleDelete)
			r.Get("/snapshot", profileHandler.HandleSnapshot)
			r.Get("/activity", activityHandler.HandleHistory)

			r.Route("/crystal", func(r chi.Router) {
				r.Get("/", crystalHandler.HandleGet)
				r.Put("/rank", crystalHandler.HandleSetRank)
				r.Put("/refine", crystalHandler.HandleSetRefinement)
				r.Put("/tier", crystalHandler.HandleSetTier)
				r.Post("/reset", crystalHandler.HandleReset)
				r.Get("/export", crystalHandler.HandleExport)
			})

			r.Route("/glyph", func(r chi.Router) {
				r.Get("/skills", glyphHandler.HandleGetSkills)
				r.Post("/skills", glyphHandler.HandleAddSkill)
				r.Delete("/skills", glyphHandler.HandleRemoveSkill)
				r.Get("/browse", glyphHandler.HandleBrowse)
				r.Get("/selection", glyphHandler.HandleGetSelection)
				r.Delete("/selection", glyphHandler.HandleResetSelection)
				r.Post("/selection/toggle", glyphHandler.HandleToggle)
			})

			r.Route("/potion", func(r chi.Router) {
				r.Get("/books", potionHandler.HandleGetBooks)
				r.Post("/books", potionHandler.HandleAddBook)
				r.Delete("/books", potionHandler.HandleRemoveBook)

				r.Get("/selection", potionHandler.HandleGetSelection)
				r.Delete("/selection", potionHandler.HandleClearSelection)
				r.Post("/selection/variant", potionHandler.HandleApplyVariant)
				r.Post("/selection/{"+handler.SelectionTypeParam+"}", potionHandler.HandleSelect)
				r.Delete("/selection/{"+handler.SelectionTypeParam+"}", potionHandler.HandleClearSelection)

				r.Get("/filters", potionHandler.HandleGetFilters)
				r.Put("/filters", potionHandler.HandleSetFilters)
				r.Get("/origins", potionHandler.HandleOrigins)
				r.Post("/origins/check", potionHandler.HandleCheckOrigin)
				r.Post("/origins/uncheck", potionHandler.HandleUncheckOrigin)

				r.Get("/ingredients", potionHandler.HandleIngredients)
				r.Get("/recipes", potionHandler.HandleRecipes)
			})
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Get("/catalogs", handler.HandleCatalogSummary(catalogs))
			r.Post("/catalogs/reload", handler.HandleReloadCatalogs(catalogs))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		router: r,
	}
}

// Handler returns the routed handler, for serving outside ListenAndServe
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
