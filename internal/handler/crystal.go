package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CharacterForge_Go/internal/crystal"
)

// CrystalHandler serves crystal allocator routes
type CrystalHandler struct {
	service crystal.Service
}

// NewCrystalHandler creates a new crystal handler
func NewCrystalHandler(service crystal.Service) *CrystalHandler {
	return &CrystalHandler{service: service}
}

// SetRankRequest selects the crystal rank
type SetRankRequest struct {
	Rank string `json:"rank" validate:"required,max=32"`
}

// SetRefinementRequest selects the crystal refinement
type SetRefinementRequest struct {
	Refine string `json:"refine" validate:"required,max=32"`
}

// SetTierRequest sets one quality to a tier
type SetTierRequest struct {
	Quality string `json:"quality" validate:"required,max=32"`
	Tier    *int   `json:"tier" validate:"required,min=0,max=5"`
}

// EvaluateCrystalRequest describes a build to evaluate without storing it
type EvaluateCrystalRequest struct {
	Rank   string         `json:"rank" validate:"max=32"`
	Refine string         `json:"refine" validate:"max=32"`
	Tiers  map[string]int `json:"tiers" validate:"max=16,dive,min=0,max=5"`
}

// ExportResponse carries the one-line export of a build
type ExportResponse struct {
	Export string `json:"export"`
}

// HandleConfig returns the rank, refinement and quality tables
// @Summary Crystal tables
// @Tags crystal
// @Produce json
// @Success 200 {object} crystal.Config
// @Router /api/v1/crystal/config [get]
func (h *CrystalHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Config())
}

// HandleEvaluate evaluates a build from scratch
// @Summary Evaluate crystal
// @Description Applies rank, refinement then each tier in quality order. Tiers the budget cannot cover are listed in rejected.
// @Tags crystal
// @Accept json
// @Produce json
// @Param request body EvaluateCrystalRequest true "Build"
// @Success 200 {object} crystal.Report
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crystal/evaluate [post]
func (h *CrystalHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateCrystalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Evaluate crystal"); err != nil {
		return
	}

	report, err := h.service.Evaluate(r.Context(), req.Rank, req.Refine, req.Tiers)
	if err != nil {
		respondServiceError(w, r, ErrMsgEvaluateFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// HandleGet returns the profile's crystal report
// @Summary Get crystal
// @Tags crystal
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} crystal.Report
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/crystal [get]
func (h *CrystalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgGetCrystalFailed, h.service.Get)
}

// HandleSetRank changes the rank, resetting every quality to the new base tier
// @Summary Set rank
// @Tags crystal
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body SetRankRequest true "Rank"
// @Success 200 {object} crystal.Report
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/crystal/rank [put]
func (h *CrystalHandler) HandleSetRank(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Set rank", ErrMsgSetRankFailed,
		func(ctx context.Context, profileID string, req SetRankRequest) (*crystal.Report, error) {
			return h.service.SetRank(ctx, profileID, req.Rank)
		})
}

// HandleSetRefinement changes the refinement and with it the point budget
// @Summary Set refinement
// @Tags crystal
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body SetRefinementRequest true "Refinement"
// @Success 200 {object} crystal.Report
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/crystal/refine [put]
func (h *CrystalHandler) HandleSetRefinement(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Set refinement", ErrMsgSetRefinementFailed,
		func(ctx context.Context, profileID string, req SetRefinementRequest) (*crystal.Report, error) {
			return h.service.SetRefinement(ctx, profileID, req.Refine)
		})
}

// HandleSetTier tries to set a quality's tier. A rejected increase is not an
// error: the response reports accepted=false and the unchanged build.
// @Summary Set tier
// @Tags crystal
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body SetTierRequest true "Quality and tier"
// @Success 200 {object} crystal.TierResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/crystal/tier [put]
func (h *CrystalHandler) HandleSetTier(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Set tier", ErrMsgSetTierFailed,
		func(ctx context.Context, profileID string, req SetTierRequest) (*crystal.TierResult, error) {
			return h.service.SetTier(ctx, profileID, req.Quality, *req.Tier)
		})
}

// HandleReset returns every quality to the rank's base tier
// @Summary Reset crystal
// @Tags crystal
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} crystal.Report
// @Router /api/v1/profiles/{profileID}/crystal/reset [post]
func (h *CrystalHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgResetCrystalFailed, h.service.Reset)
}

// HandleExport returns the one-line export text of the build
// @Summary Export crystal
// @Tags crystal
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} ExportResponse
// @Router /api/v1/profiles/{profileID}/crystal/export [get]
func (h *CrystalHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgExportCrystalFailed,
		func(ctx context.Context, profileID string) (ExportResponse, error) {
			line, err := h.service.Export(ctx, profileID)
			return ExportResponse{Export: line}, err
		})
}
