package handler

import (
	"net/http"

	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/profile"
)

// ProfileHandler serves profile lifecycle routes
type ProfileHandler struct {
	service profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleCreate issues a new profile
// @Summary Create profile
// @Description Issues a new profile ID. All builder state is stored under it.
// @Tags profiles
// @Produce json
// @Success 201 {object} domain.Profile
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profiles [post]
func (h *ProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Create(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateProfileFailed, err)
		return
	}

	logger.ForProfile(r.Context(), p.ID).Info("Profile issued")
	respondJSON(w, http.StatusCreated, p)
}

// HandleGet returns a profile
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID} [get]
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgGetProfileFailed, h.service.Get)
}

// HandleDelete removes a profile and all of its state
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID} [delete]
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := GetProfileID(r, w)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), profileID); err != nil {
		respondServiceError(w, r, ErrMsgDeleteProfileFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeleted})
}

// HandleSnapshot returns every stored state document of a profile
// @Summary Export profile state
// @Tags profiles
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} profile.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/snapshot [get]
func (h *ProfileHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgSnapshotFailed, h.service.Snapshot)
}
