package domain

import "time"

// Persisted state keys, one value per key per profile
const (
	StateKeyGlyphSkills     = "glyph.skills"
	StateKeyGlyphSelection  = "glyph.selection"
	StateKeyPotionBooks     = "potion.books"
	StateKeyPotionSelection = "potion.selection"
	StateKeyPotionFilters   = "potion.filters"
	StateKeyCrystalState    = "crystal.state"
)

// Profile identifies a character whose builder state is persisted
type Profile struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
