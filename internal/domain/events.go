package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent profile state changes that can be
// published and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "crystal.changed")
const (
	// EventTypeGlyphSkillsChanged is published when a profile's owned skills change
	EventTypeGlyphSkillsChanged = "glyph.skills.changed"

	// EventTypeGlyphSelectionChanged is published when the glyph selection is toggled or reset
	EventTypeGlyphSelectionChanged = "glyph.selection.changed"

	// EventTypePotionBooksChanged is published when books are added or removed
	EventTypePotionBooksChanged = "potion.books.changed"

	// EventTypePotionSelectionChanged is published after any selection transition
	EventTypePotionSelectionChanged = "potion.selection.changed"

	// EventTypePotionFiltersChanged is published when browse filters change
	EventTypePotionFiltersChanged = "potion.filters.changed"

	// EventTypeCrystalChanged is published when rank, refinement or a tier changes
	EventTypeCrystalChanged = "crystal.changed"

	// EventTypeCrystalTierRejected is published when a tier increase exceeds the budget
	EventTypeCrystalTierRejected = "crystal.tier.rejected"

	// EventTypeProfileCreated is published when a new profile is issued
	EventTypeProfileCreated = "profile.created"

	// EventTypeProfileDeleted is published after a profile and its state are removed
	EventTypeProfileDeleted = "profile.deleted"
)

// GlyphSkillsChangedPayload is the event payload for glyph.skills.changed events
type GlyphSkillsChangedPayload struct {
	ProfileID string   `json:"profile_id"`
	Skills    []string `json:"skills"`
	Timestamp int64    `json:"timestamp"`
}

// GlyphSelectionChangedPayload is the event payload for glyph.selection.changed events
type GlyphSelectionChangedPayload struct {
	ProfileID string   `json:"profile_id"`
	Selection []string `json:"selection"`
	Mana      int      `json:"mana"`
	Diff      int      `json:"diff"`
	Timestamp int64    `json:"timestamp"`
}

// PotionBooksChangedPayload is the event payload for potion.books.changed events
type PotionBooksChangedPayload struct {
	ProfileID string   `json:"profile_id"`
	Books     []string `json:"books"`
	Timestamp int64    `json:"timestamp"`
}

// PotionSelectionChangedPayload is the event payload for potion.selection.changed events
type PotionSelectionChangedPayload struct {
	ProfileID       string          `json:"profile_id"`
	Selection       PotionSelection `json:"selection"`
	TotalDifficulty int             `json:"total_difficulty"`
	Recipe          string          `json:"recipe,omitempty"`
	Timestamp       int64           `json:"timestamp"`
}

// PotionFiltersChangedPayload is the event payload for potion.filters.changed events
type PotionFiltersChangedPayload struct {
	ProfileID string        `json:"profile_id"`
	Filters   PotionFilters `json:"filters"`
	Timestamp int64         `json:"timestamp"`
}

// CrystalChangedPayload is the event payload for crystal.changed events
type CrystalChangedPayload struct {
	ProfileID  string       `json:"profile_id"`
	State      CrystalState `json:"state"`
	Difficulty int          `json:"difficulty"`
	Fragility  string       `json:"fragility"`
	Timestamp  int64        `json:"timestamp"`
}

// CrystalTierRejectedPayload is the event payload for crystal.tier.rejected events
type CrystalTierRejectedPayload struct {
	ProfileID string `json:"profile_id"`
	Quality   string `json:"quality"`
	Desired   int    `json:"desired"`
	Remaining int    `json:"remaining"`
	Timestamp int64  `json:"timestamp"`
}

// ProfileLifecyclePayload is the event payload for profile.created and profile.deleted events
type ProfileLifecyclePayload struct {
	ProfileID string `json:"profile_id"`
	Timestamp int64  `json:"timestamp"`
}
