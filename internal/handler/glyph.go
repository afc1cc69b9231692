package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/glyph"
	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// GlyphHandler serves glyph analyzer and builder routes
type GlyphHandler struct {
	service glyph.Service
}

// NewGlyphHandler creates a new glyph handler
func NewGlyphHandler(service glyph.Service) *GlyphHandler {
	return &GlyphHandler{service: service}
}

// AnalyzeRequest is free text to scan for glyphs
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// SkillRequest names a skill (a series glyph)
type SkillRequest struct {
	Skill string `json:"skill" validate:"required,max=100"`
}

// ToggleGlyphRequest names a glyph to add to or remove from the selection
type ToggleGlyphRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// SkillsResponse wraps the profile's skill list
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

// HandleAnalyze detects glyph names and emojis in free text
// @Summary Analyze text
// @Description Detected glyphs come from explicit names or emojis; candidates are unlabeled phrases matching a glyph. Unknown fragments carry close-name suggestions.
// @Tags glyphs
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Text"
// @Success 200 {object} domain.GlyphDetection
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/glyphs/analyze [post]
func (h *GlyphHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Analyze glyphs"); err != nil {
		return
	}

	detection := h.service.Analyze(r.Context(), req.Text)
	logger.FromContext(r.Context()).Debug("Glyph analysis complete",
		"detected", len(detection.Detected),
		"unknown", len(detection.Unknown))

	respondJSON(w, http.StatusOK, detection)
}

// HandleList returns the glyph catalog
// @Summary List glyphs
// @Tags glyphs
// @Produce json
// @Success 200 {array} domain.Glyph
// @Router /api/v1/glyphs [get]
func (h *GlyphHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	glyphs := h.service.Catalog(r.Context()).Glyphs()
	if glyphs == nil {
		glyphs = []domain.Glyph{}
	}
	respondJSON(w, http.StatusOK, glyphs)
}

// HandleSeries returns the series definitions used to unlock glyphs
// @Summary List series
// @Tags glyphs
// @Produce json
// @Success 200 {array} domain.GlyphSeries
// @Router /api/v1/glyphs/series [get]
func (h *GlyphHandler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	series := h.service.Catalog(r.Context()).Series()
	if series == nil {
		series = []domain.GlyphSeries{}
	}
	respondJSON(w, http.StatusOK, series)
}

// HandleGetSkills returns the profile's skills
// @Summary Get skills
// @Tags glyphs
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} SkillsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/glyph/skills [get]
func (h *GlyphHandler) HandleGetSkills(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgGetSkillsFailed, skillsQuery(h.service.GetSkills))
}

// HandleAddSkill adds a skill; unknown names are ignored
// @Summary Add skill
// @Tags glyphs
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body SkillRequest true "Skill"
// @Success 200 {object} SkillsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/glyph/skills [post]
func (h *GlyphHandler) HandleAddSkill(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Add skill", ErrMsgAddSkillFailed,
		func(ctx context.Context, profileID string, req SkillRequest) (SkillsResponse, error) {
			return skillsQuery(func(ctx context.Context, profileID string) ([]string, error) {
				return h.service.AddSkill(ctx, profileID, req.Skill)
			})(ctx, profileID)
		})
}

// HandleRemoveSkill removes the skill named by ?skill=, or every skill when absent
// @Summary Remove skills
// @Tags glyphs
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param skill query string false "Skill to remove"
// @Success 200 {object} SkillsResponse
// @Router /api/v1/profiles/{profileID}/glyph/skills [delete]
func (h *GlyphHandler) HandleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	skill := GetOptionalQueryParam(r, "skill", "")
	if skill == "" {
		handleProfileQuery(w, r, ErrMsgRemoveSkillFailed, skillsQuery(h.service.ClearSkills))
		return
	}
	handleProfileQuery(w, r, ErrMsgRemoveSkillFailed, skillsQuery(
		func(ctx context.Context, profileID string) ([]string, error) {
			return h.service.RemoveSkill(ctx, profileID, skill)
		}))
}

// HandleBrowse lists glyphs with their lock and selection state
// @Summary Browse glyphs
// @Tags glyphs
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param category query string false "Category filter (Toutes for all)"
// @Success 200 {array} glyph.BrowseEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/glyph/browse [get]
func (h *GlyphHandler) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	category := GetOptionalQueryParam(r, "category", domain.GlyphCategoryAll)
	handleProfileQuery(w, r, ErrMsgBrowseGlyphsFailed,
		func(ctx context.Context, profileID string) ([]glyph.BrowseEntry, error) {
			return h.service.Browse(ctx, profileID, category)
		})
}

// HandleGetSelection returns the selected glyphs with their totals
// @Summary Get glyph selection
// @Tags glyphs
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} glyph.Selection
// @Router /api/v1/profiles/{profileID}/glyph/selection [get]
func (h *GlyphHandler) HandleGetSelection(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgGlyphSelectionFailed, h.service.GetSelection)
}

// HandleToggle adds or removes an unlocked glyph from the selection
// @Summary Toggle glyph
// @Tags glyphs
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body ToggleGlyphRequest true "Glyph"
// @Success 200 {object} glyph.Selection
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/glyph/selection/toggle [post]
func (h *GlyphHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Toggle glyph", ErrMsgGlyphSelectionFailed,
		func(ctx context.Context, profileID string, req ToggleGlyphRequest) (*glyph.Selection, error) {
			return h.service.ToggleSelection(ctx, profileID, req.Name)
		})
}

// HandleResetSelection empties the selection
// @Summary Reset glyph selection
// @Tags glyphs
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} glyph.Selection
// @Router /api/v1/profiles/{profileID}/glyph/selection [delete]
func (h *GlyphHandler) HandleResetSelection(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgGlyphSelectionFailed, h.service.ResetSelection)
}

func skillsQuery(fn func(ctx context.Context, profileID string) ([]string, error)) func(context.Context, string) (SkillsResponse, error) {
	return func(ctx context.Context, profileID string) (SkillsResponse, error) {
		skills, err := fn(ctx, profileID)
		if skills == nil {
			skills = []string{}
		}
		return SkillsResponse{Skills: skills}, err
	}
}
