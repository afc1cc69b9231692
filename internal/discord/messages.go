package discord

// Friendly message constants for Discord responses
const (
	// Lookups
	MsgUnknownGlyph      = "❓ **Unknown Glyph**\nMaybe check the spelling?"
	MsgIngredientMissing = "🧪 **Ingredient Not Found**\nCheck the ingredient name against /potion suggestions."
	MsgUnknownRank       = "💎 **Unknown Rank**\nPick one of the offered ranks."
	MsgUnknownRefinement = "💎 **Unknown Refinement**\nPick one of the offered refinements."

	// Inputs
	MsgInvalidInput = "✏️ **Invalid Input**\nThat request could not be understood."
	MsgGlyphLocked  = "🔒 **Glyph Locked**"

	// Server
	MsgCatalogUnavailable = "📚 **Catalogs Unavailable**\nThe data files could not be loaded, try again later."

	MsgGenericError = "❌ Something went wrong."
)
