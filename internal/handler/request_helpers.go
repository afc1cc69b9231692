package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// ProfileIDParam is the chi URL parameter holding the profile ID
const ProfileIDParam = "profileID"

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// Parameters:
//   - r: The HTTP request containing the JSON body
//   - w: The HTTP response writer to send error responses
//   - req: Pointer to the request struct to decode into (must implement validation tags)
//   - actionName: Human-readable name for the action (e.g., "Set rank", "Add book")
//
// Returns:
//   - error: nil if successful, error if decoding or validation failed
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req SetRankRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Set rank"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	// Decode JSON body
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	// Log the decoded request at debug level
	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	// Validate the request struct
	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves and validates a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
//
// Example usage:
//
//	text, ok := GetQueryParam(r, w, "text")
//	if !ok {
//	    return
//	}
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// Unlike GetQueryParam, this does not write an error response if the parameter is missing.
//
// Example usage:
//
//	category := GetOptionalQueryParam(r, "category", domain.GlyphCategoryAll)
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetProfileID reads the profile ID path parameter. If it is missing, it
// writes an error response and returns false.
func GetProfileID(r *http.Request, w http.ResponseWriter) (string, bool) {
	profileID := chi.URLParam(r, ProfileIDParam)
	if profileID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingProfileID)
		return "", false
	}
	return profileID, true
}

// LogRequestFields is a helper to log common request fields in a structured way.
// This provides consistency across handlers when logging request details.
//
// Example usage:
//
//	LogRequestFields(log, "profile_id", profileID, "quality", req.Quality, "tier", req.Tier)
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}

// handleProfileAction is a generic helper for handlers that mutate one profile's state.
// It handles the profile ID, request decoding/validation, service call, error handling, and JSON response.
func handleProfileAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	errMsg string,
	action func(ctx context.Context, profileID string, req REQ) (RES, error),
) {
	profileID, ok := GetProfileID(r, w)
	if !ok {
		return
	}

	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), profileID, req)
	if err != nil {
		respondServiceError(w, r, errMsg, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// handleProfileQuery is handleProfileAction for requests without a body
func handleProfileQuery[RES any](
	w http.ResponseWriter,
	r *http.Request,
	errMsg string,
	query func(ctx context.Context, profileID string) (RES, error),
) {
	profileID, ok := GetProfileID(r, w)
	if !ok {
		return
	}

	res, err := query(r.Context(), profileID)
	if err != nil {
		respondServiceError(w, r, errMsg, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}
