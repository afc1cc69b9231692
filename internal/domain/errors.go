package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Crystal errors
	ErrMsgUnknownQuality    = "unknown quality"
	ErrMsgUnknownRank       = "unknown rank"
	ErrMsgUnknownRefinement = "unknown refinement"

	// Glyph errors
	ErrMsgUnknownGlyph = "unknown glyph"
	ErrMsgGlyphLocked  = "glyph is not unlocked"

	// Potion errors
	ErrMsgUnknownCategory      = "unknown ingredient category"
	ErrMsgUnknownSelectionType = "unknown selection type"
	ErrMsgIngredientNotFound   = "ingredient not found"
	ErrMsgRecipeNotFound       = "recipe not found"
	ErrMsgInvalidCombo         = "invalid ingredient combination"

	// Catalog/config errors
	ErrMsgInvalidConfig      = "invalid configuration"
	ErrMsgCatalogUnavailable = "catalog unavailable"
	ErrMsgSchemaValidation   = "schema validation failed"

	// Storage errors
	ErrMsgStateStore        = "state store error"
	ErrMsgConnectionTimeout = "connection timeout"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Profile errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	// Crystal errors
	ErrUnknownQuality    = errors.New(ErrMsgUnknownQuality)
	ErrUnknownRank       = errors.New(ErrMsgUnknownRank)
	ErrUnknownRefinement = errors.New(ErrMsgUnknownRefinement)

	// Glyph errors
	ErrUnknownGlyph = errors.New(ErrMsgUnknownGlyph)
	ErrGlyphLocked  = errors.New(ErrMsgGlyphLocked)

	// Potion errors
	ErrUnknownCategory      = errors.New(ErrMsgUnknownCategory)
	ErrUnknownSelectionType = errors.New(ErrMsgUnknownSelectionType)
	ErrIngredientNotFound   = errors.New(ErrMsgIngredientNotFound)
	ErrRecipeNotFound       = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidCombo         = errors.New(ErrMsgInvalidCombo)

	// Catalog/config errors
	ErrInvalidConfig      = errors.New(ErrMsgInvalidConfig)
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)
	ErrSchemaValidation   = errors.New(ErrMsgSchemaValidation)

	// Storage errors
	ErrStateStore        = errors.New(ErrMsgStateStore)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
