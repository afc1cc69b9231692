package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingProfileID  = "Missing profile ID"

	// Profile error messages
	ErrMsgCreateProfileFailed = "Failed to create profile"
	ErrMsgGetProfileFailed    = "Failed to get profile"
	ErrMsgDeleteProfileFailed = "Failed to delete profile"
	ErrMsgSnapshotFailed      = "Failed to export profile"
	ErrMsgActivityFailed      = "Failed to get activity"
	ErrMsgInvalidLimit        = "limit must be an integer"

	// Crystal error messages
	ErrMsgGetCrystalFailed    = "Failed to get crystal"
	ErrMsgSetRankFailed       = "Failed to set rank"
	ErrMsgSetRefinementFailed = "Failed to set refinement"
	ErrMsgSetTierFailed       = "Failed to set tier"
	ErrMsgResetCrystalFailed  = "Failed to reset crystal"
	ErrMsgExportCrystalFailed = "Failed to export crystal"
	ErrMsgEvaluateFailed      = "Failed to evaluate crystal"

	// Glyph error messages
	ErrMsgGetSkillsFailed      = "Failed to get skills"
	ErrMsgAddSkillFailed       = "Failed to add skill"
	ErrMsgRemoveSkillFailed    = "Failed to remove skill"
	ErrMsgBrowseGlyphsFailed   = "Failed to browse glyphs"
	ErrMsgGlyphSelectionFailed = "Failed to update glyph selection"

	// Potion error messages
	ErrMsgGetBooksFailed        = "Failed to get books"
	ErrMsgAddBookFailed         = "Failed to add book"
	ErrMsgRemoveBookFailed      = "Failed to remove book"
	ErrMsgPotionSelectionFailed = "Failed to update potion selection"
	ErrMsgApplyVariantFailed    = "Failed to apply variant"
	ErrMsgFiltersFailed         = "Failed to update filters"
	ErrMsgIngredientsFailed     = "Failed to list ingredients"
	ErrMsgRecipesFailed         = "Failed to list recipes"
	ErrMsgOriginsFailed         = "Failed to list origins"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgProfileDeleted   = "Profile deleted"
	MsgCatalogsReloaded = "Catalogs reloaded"
)
