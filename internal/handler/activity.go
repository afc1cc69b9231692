package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/CharacterForge_Go/internal/eventlog"
)

// Query parameters of the activity route
const (
	ActivityTypeQuery  = "type"
	ActivityLimitQuery = "limit"
)

// ActivityHandler serves the profile activity log
type ActivityHandler struct {
	service eventlog.Service
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service eventlog.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ActivityResponse lists a profile's recorded events, newest first
type ActivityResponse struct {
	Events []eventlog.Entry `json:"events"`
}

// HandleHistory returns the recent events of a profile
// @Summary Profile activity
// @Description Recorded builder events for a profile, newest first. Entries outlive a deleted profile until retention removes them.
// @Tags profiles
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param type query string false "Event type, e.g. crystal.changed"
// @Param limit query int false "Maximum entries (1-500, default 50)"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/activity [get]
func (h *ActivityHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	profileID, ok := GetProfileID(r, w)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get(ActivityLimitQuery); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = n
	}

	events, err := h.service.History(r.Context(), profileID, GetOptionalQueryParam(r, ActivityTypeQuery, ""), limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgActivityFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, ActivityResponse{Events: events})
}
