package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/potion"
)

// SelectionTypeParam is the chi URL parameter naming a selection slot
const SelectionTypeParam = "selectionType"

// PotionHandler serves potion calculator and builder routes
type PotionHandler struct {
	service potion.Service
}

// NewPotionHandler creates a new potion handler
func NewPotionHandler(service potion.Service) *PotionHandler {
	return &PotionHandler{service: service}
}

// ComputeRequest is a selection to compute without storing it
type ComputeRequest struct {
	Binder    string   `json:"binder" validate:"max=100"`
	Catalyst  string   `json:"catalyst" validate:"max=100"`
	Reactants []string `json:"reactants" validate:"max=16,dive,required,max=100"`
}

// SuggestRequest is a partial combo to complete
type SuggestRequest struct {
	Binder          string   `json:"binder" validate:"max=100"`
	Catalyst        string   `json:"catalyst" validate:"max=100"`
	Reactant        string   `json:"reactant" validate:"max=100"`
	PreferHighest   bool     `json:"prefer_highest"`
	RestrictBooks   []string `json:"restrict_books" validate:"max=32,dive,max=100"`
	RestrictOrigins []string `json:"restrict_origins" validate:"max=32,dive,max=100"`
}

// BookRequest names a recipe book
type BookRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

// SelectIngredientRequest names the ingredient to toggle in a slot
type SelectIngredientRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ApplyVariantRequest replaces the selection with one variant of a recipe
type ApplyVariantRequest struct {
	Recipe  string `json:"recipe" validate:"required,max=100"`
	Variant int    `json:"variant" validate:"min=0,max=64"`
}

// FiltersRequest replaces the browse filters
type FiltersRequest struct {
	Cat     string   `json:"cat" validate:"filtercategory"`
	Origins []string `json:"origins" validate:"max=32,dive,required,max=100"`
}

// OriginRequest names an origin label to check or uncheck
type OriginRequest struct {
	Label string `json:"label" validate:"required,max=100"`
}

// BooksResponse wraps the profile's book list
type BooksResponse struct {
	Books []string `json:"books"`
}

// HandleCatalogRecipes returns every recipe of the catalog
// @Summary List recipes
// @Tags potion
// @Produce json
// @Success 200 {array} domain.Recipe
// @Router /api/v1/potion/recipes [get]
func (h *PotionHandler) HandleCatalogRecipes(w http.ResponseWriter, r *http.Request) {
	recipes := h.service.Catalog(r.Context()).Recipes()
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	respondJSON(w, http.StatusOK, recipes)
}

// HandleInspect cross-checks the potion catalog
// @Summary Inspect catalog
// @Tags potion
// @Produce json
// @Success 200 {object} potion.InspectionReport
// @Router /api/v1/potion/inspect [get]
func (h *PotionHandler) HandleInspect(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Inspect(r.Context()))
}

// HandleCompute computes difficulty, recipe and breakdown for a selection
// @Summary Compute potion
// @Tags potion
// @Accept json
// @Produce json
// @Param request body ComputeRequest true "Selection"
// @Success 200 {object} domain.PotionResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/potion/compute [post]
func (h *PotionHandler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Compute potion"); err != nil {
		return
	}

	sel := domain.PotionSelection{Binder: req.Binder, Catalyst: req.Catalyst, Reactants: req.Reactants}
	if sel.Reactants == nil {
		sel.Reactants = []string{}
	}
	respondJSON(w, http.StatusOK, h.service.Compute(r.Context(), sel))
}

// HandleSuggest completes a partial combo
// @Summary Suggest completion
// @Tags potion
// @Accept json
// @Produce json
// @Param request body SuggestRequest true "Partial combo"
// @Success 200 {object} potion.Completion
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/potion/suggest [post]
func (h *PotionHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Suggest completion"); err != nil {
		return
	}

	respondJSON(w, http.StatusOK, h.service.Suggest(r.Context(), potion.CompletionRequest{
		Binder:          req.Binder,
		Catalyst:        req.Catalyst,
		Reactant:        req.Reactant,
		PreferHighest:   req.PreferHighest,
		RestrictBooks:   req.RestrictBooks,
		RestrictOrigins: req.RestrictOrigins,
	}))
}

// HandleGetBooks returns the profile's owned books
// @Summary Get books
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} BooksResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/potion/books [get]
func (h *PotionHandler) HandleGetBooks(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgGetBooksFailed, booksQuery(h.service.GetBooks))
}

// HandleAddBook adds an owned book; unknown titles are ignored
// @Summary Add book
// @Tags potion
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body BookRequest true "Book"
// @Success 200 {object} BooksResponse
// @Router /api/v1/profiles/{profileID}/potion/books [post]
func (h *PotionHandler) HandleAddBook(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Add book", ErrMsgAddBookFailed,
		func(ctx context.Context, profileID string, req BookRequest) (BooksResponse, error) {
			return booksQuery(func(ctx context.Context, profileID string) ([]string, error) {
				return h.service.AddBook(ctx, profileID, req.Title)
			})(ctx, profileID)
		})
}

// HandleRemoveBook removes the book named by ?title=, or every book when absent
// @Summary Remove books
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param title query string false "Book to remove"
// @Success 200 {object} BooksResponse
// @Router /api/v1/profiles/{profileID}/potion/books [delete]
func (h *PotionHandler) HandleRemoveBook(w http.ResponseWriter, r *http.Request) {
	title := GetOptionalQueryParam(r, "title", "")
	if title == "" {
		handleProfileQuery(w, r, ErrMsgRemoveBookFailed, booksQuery(h.service.ClearBooks))
		return
	}
	handleProfileQuery(w, r, ErrMsgRemoveBookFailed, booksQuery(
		func(ctx context.Context, profileID string) ([]string, error) {
			return h.service.RemoveBook(ctx, profileID, title)
		}))
}

// HandleGetSelection returns the stored selection and its computed result
// @Summary Get potion selection
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} potion.SelectionState
// @Router /api/v1/profiles/{profileID}/potion/selection [get]
func (h *PotionHandler) HandleGetSelection(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgPotionSelectionFailed, h.service.GetSelection)
}

// HandleSelect toggles an ingredient in the slot named by the path
// @Summary Select ingredient
// @Description Picking the current binder or catalyst again clears it. Reactants toggle membership.
// @Tags potion
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param selectionType path string true "binder, catalyst or reactant"
// @Param request body SelectIngredientRequest true "Ingredient"
// @Success 200 {object} potion.SelectionState
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/potion/selection/{selectionType} [post]
func (h *PotionHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	selectionType := chi.URLParam(r, SelectionTypeParam)
	handleProfileAction(w, r, "Select ingredient", ErrMsgPotionSelectionFailed,
		func(ctx context.Context, profileID string, req SelectIngredientRequest) (*potion.SelectionState, error) {
			return h.service.Select(ctx, profileID, selectionType, req.Name)
		})
}

// HandleClearSelection clears one slot, or the whole selection on the bare route
// @Summary Clear potion selection
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param selectionType path string false "binder, catalyst or reactant"
// @Success 200 {object} potion.SelectionState
// @Router /api/v1/profiles/{profileID}/potion/selection/{selectionType} [delete]
func (h *PotionHandler) HandleClearSelection(w http.ResponseWriter, r *http.Request) {
	selectionType := chi.URLParam(r, SelectionTypeParam)
	handleProfileQuery(w, r, ErrMsgPotionSelectionFailed,
		func(ctx context.Context, profileID string) (*potion.SelectionState, error) {
			return h.service.ClearSelection(ctx, profileID, selectionType)
		})
}

// HandleApplyVariant replaces the selection with a recipe variant
// @Summary Apply recipe variant
// @Tags potion
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body ApplyVariantRequest true "Recipe and variant index"
// @Success 200 {object} potion.SelectionState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/potion/selection/variant [post]
func (h *PotionHandler) HandleApplyVariant(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Apply variant", ErrMsgApplyVariantFailed,
		func(ctx context.Context, profileID string, req ApplyVariantRequest) (*potion.SelectionState, error) {
			return h.service.ApplyVariant(ctx, profileID, req.Recipe, req.Variant)
		})
}

// HandleGetFilters returns the browse filters
// @Summary Get filters
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} domain.PotionFilters
// @Router /api/v1/profiles/{profileID}/potion/filters [get]
func (h *PotionHandler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgFiltersFailed, h.service.GetFilters)
}

// HandleSetFilters replaces the browse filters
// @Summary Set filters
// @Tags potion
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body FiltersRequest true "Filters"
// @Success 200 {object} domain.PotionFilters
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/potion/filters [put]
func (h *PotionHandler) HandleSetFilters(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Set filters", ErrMsgFiltersFailed,
		func(ctx context.Context, profileID string, req FiltersRequest) (domain.PotionFilters, error) {
			return h.service.SetFilters(ctx, profileID, domain.PotionFilters{Cat: req.Cat, Origins: req.Origins})
		})
}

// HandleCheckOrigin adds an origin label to the filters
// @Summary Check origin
// @Tags potion
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body OriginRequest true "Origin"
// @Success 200 {object} domain.PotionFilters
// @Router /api/v1/profiles/{profileID}/potion/origins/check [post]
func (h *PotionHandler) HandleCheckOrigin(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Check origin", ErrMsgFiltersFailed,
		func(ctx context.Context, profileID string, req OriginRequest) (domain.PotionFilters, error) {
			return h.service.CheckOrigin(ctx, profileID, req.Label)
		})
}

// HandleUncheckOrigin removes an origin label and its descendants from the filters
// @Summary Uncheck origin
// @Tags potion
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param request body OriginRequest true "Origin"
// @Success 200 {object} domain.PotionFilters
// @Router /api/v1/profiles/{profileID}/potion/origins/uncheck [post]
func (h *PotionHandler) HandleUncheckOrigin(w http.ResponseWriter, r *http.Request) {
	handleProfileAction(w, r, "Uncheck origin", ErrMsgFiltersFailed,
		func(ctx context.Context, profileID string, req OriginRequest) (domain.PotionFilters, error) {
			return h.service.UncheckOrigin(ctx, profileID, req.Label)
		})
}

// HandleIngredients lists the ingredients visible under the profile's filters and books
// @Summary Visible ingredients
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {array} potion.IngredientView
// @Router /api/v1/profiles/{profileID}/potion/ingredients [get]
func (h *PotionHandler) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgIngredientsFailed, h.service.Ingredients)
}

// HandleRecipes lists the recipes found in the profile's books
// @Summary Visible recipes
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {array} domain.Recipe
// @Router /api/v1/profiles/{profileID}/potion/recipes [get]
func (h *PotionHandler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgRecipesFailed, h.service.Recipes)
}

// HandleOrigins returns the origin tree with the checked labels
// @Summary Origins
// @Tags potion
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} potion.OriginsView
// @Router /api/v1/profiles/{profileID}/potion/origins [get]
func (h *PotionHandler) HandleOrigins(w http.ResponseWriter, r *http.Request) {
	handleProfileQuery(w, r, ErrMsgOriginsFailed, h.service.Origins)
}

func booksQuery(fn func(ctx context.Context, profileID string) ([]string, error)) func(context.Context, string) (BooksResponse, error) {
	return func(ctx context.Context, profileID string) (BooksResponse, error) {
		books, err := fn(ctx, profileID)
		if books == nil {
			books = []string{}
		}
		return BooksResponse{Books: books}, err
	}
}
