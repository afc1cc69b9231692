package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// jsonBuffers recycles response encoding buffers
var jsonBuffers = sync.Pool{
	New: func() interface{} { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

// respondJSON encodes payload before touching the response, so an encoding
// failure still answers 500 instead of a truncated body
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := jsonBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		jsonBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and answers with the mapped
// status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}

	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Profile messages
	ErrMsgProfileNotFoundError = "Profile not found"

	// Crystal messages
	ErrMsgUnknownQualityError    = "Unknown quality"
	ErrMsgUnknownRankError       = "Unknown rank"
	ErrMsgUnknownRefinementError = "Unknown refinement"

	// Glyph messages
	ErrMsgUnknownGlyphError = "Unknown glyph"
	ErrMsgGlyphLockedError  = "That glyph is locked. Add a skill that grants it first."

	// Potion messages
	ErrMsgUnknownCategoryError      = "Unknown ingredient category"
	ErrMsgUnknownSelectionTypeError = "Selection type must be binder, catalyst or reactant"
	ErrMsgIngredientNotFoundError   = "Ingredient not found"
	ErrMsgRecipeNotFoundError       = "Recipe not found"
	ErrMsgInvalidComboError         = "Invalid ingredient combination"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrUnknownQuality):
		return http.StatusBadRequest, ErrMsgUnknownQualityError
	case errors.Is(err, domain.ErrUnknownRank):
		return http.StatusBadRequest, ErrMsgUnknownRankError
	case errors.Is(err, domain.ErrUnknownRefinement):
		return http.StatusBadRequest, ErrMsgUnknownRefinementError
	case errors.Is(err, domain.ErrUnknownGlyph):
		return http.StatusBadRequest, ErrMsgUnknownGlyphError
	case errors.Is(err, domain.ErrGlyphLocked):
		return http.StatusForbidden, ErrMsgGlyphLockedError
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest, ErrMsgUnknownCategoryError
	case errors.Is(err, domain.ErrUnknownSelectionType):
		return http.StatusBadRequest, ErrMsgUnknownSelectionTypeError
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusBadRequest, ErrMsgIngredientNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrInvalidCombo):
		return http.StatusBadRequest, ErrMsgInvalidComboError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrStateStore):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// Default to generic message so storage and driver details stay internal
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
