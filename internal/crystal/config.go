package crystal

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// Rank grants a base tier to every quality and a flat difficulty
type Rank struct {
	Key      string `json:"key" validate:"required"`
	Label    string `json:"label" validate:"required"`
	Diff     int    `json:"diff" validate:"gte=0"`
	BaseTier int    `json:"baseTier" validate:"gte=0,lte=5"`
}

// Refinement grants a point budget and a flat difficulty
type Refinement struct {
	Key    string `json:"key" validate:"required"`
	Label  string `json:"label" validate:"required"`
	Diff   int    `json:"diff" validate:"gte=0"`
	Points int    `json:"points" validate:"gte=0"`
}

// Quality is an upgradable axis of the crystal
type Quality struct {
	Key   string `json:"key" validate:"required"`
	Label string `json:"label" validate:"required"`
	Abbr  string `json:"abbr" validate:"required"`
	Hint  string `json:"hint"`
}

// FragilityRules parameterizes the fragility score
type FragilityRules struct {
	DiversificationBonus int                    `json:"diversificationBonusPerQuality" validate:"gte=0"`
	StabilityBonus       int                    `json:"stabilityBonusPerTier" validate:"gte=0"`
	Bands                []domain.FragilityBand `json:"bands" validate:"required,min=1,dive"`
}

// Config holds the static tables of the allocator
type Config struct {
	Ranks          []Rank         `json:"ranks" validate:"required,min=1,dive"`
	Refinements    []Refinement   `json:"refinements" validate:"required,min=1,dive"`
	Qualities      []Quality      `json:"qualities" validate:"required,min=1,dive"`
	PointsStepCost []int          `json:"pointsStepCost" validate:"required,dive,gte=0"`
	DiffStepCost   []int          `json:"diffStepCost" validate:"required,dive,gte=0"`
	Fragility      FragilityRules `json:"fragility"`
	StabilityKey   string         `json:"stabilityKey" validate:"required"`
	DefaultRank    string         `json:"defaultRank" validate:"required"`
	DefaultRefine  string         `json:"defaultRefine" validate:"required"`
}

var configValidator = validator.New()

// ParseConfig decodes and validates a crystal.json document
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and cross-table consistency
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	if err := uniqueKeys("rank", len(c.Ranks), func(i int) string { return c.Ranks[i].Key }); err != nil {
		return err
	}
	if err := uniqueKeys("refinement", len(c.Refinements), func(i int) string { return c.Refinements[i].Key }); err != nil {
		return err
	}
	if err := uniqueKeys("quality", len(c.Qualities), func(i int) string { return c.Qualities[i].Key }); err != nil {
		return err
	}

	if _, ok := c.Rank(c.DefaultRank); !ok {
		return fmt.Errorf("%w: default rank %q", domain.ErrInvalidConfig, c.DefaultRank)
	}
	if _, ok := c.Refinement(c.DefaultRefine); !ok {
		return fmt.Errorf("%w: default refinement %q", domain.ErrInvalidConfig, c.DefaultRefine)
	}
	if _, ok := c.Quality(c.StabilityKey); !ok {
		return fmt.Errorf("%w: stability quality %q", domain.ErrInvalidConfig, c.StabilityKey)
	}

	for i := 1; i < len(c.Fragility.Bands); i++ {
		if c.Fragility.Bands[i].Max < c.Fragility.Bands[i-1].Max {
			return fmt.Errorf("%w: fragility bands must be ascending", domain.ErrInvalidConfig)
		}
	}
	return nil
}

func uniqueKeys(kind string, n int, key func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate %s key %q", domain.ErrInvalidConfig, kind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Rank looks up a rank by key
func (c *Config) Rank(key string) (Rank, bool) {
	for _, r := range c.Ranks {
		if r.Key == key {
			return r, true
		}
	}
	return Rank{}, false
}

// Refinement looks up a refinement by key
func (c *Config) Refinement(key string) (Refinement, bool) {
	for _, r := range c.Refinements {
		if r.Key == key {
			return r, true
		}
	}
	return Refinement{}, false
}

// Quality looks up a quality by key
func (c *Config) Quality(key string) (Quality, bool) {
	for _, q := range c.Qualities {
		if q.Key == key {
			return q, true
		}
	}
	return Quality{}, false
}

// DefaultConfig returns the built-in tables
func DefaultConfig() *Config {
	return &Config{
		Ranks: []Rank{
			{Key: domain.RankEclat, Label: "Éclat", Diff: 10, BaseTier: 0},
			{Key: domain.RankPierre, Label: "Pierre", Diff: 20, BaseTier: 1},
			{Key: domain.RankCoeur, Label: "Cœur", Diff: 40, BaseTier: 2},
		},
		Refinements: []Refinement{
			{Key: domain.RefineBrute, Label: "Brute", Diff: 10, Points: 0},
			{Key: domain.RefineEpuree, Label: "Épurée", Diff: 20, Points: 26},
			{Key: domain.RefineSublimee, Label: "Sublimée", Diff: 40, Points: 48},
		},
		Qualities: []Quality{
			{Key: domain.QualityPuissance, Label: "Puissance", Abbr: "Pu", Hint: "Force de l’attaque / quantité de mana"},
			{Key: domain.QualityPortee, Label: "Portée", Abbr: "Po", Hint: "Distance d’utilisation/transfert"},
			{Key: domain.QualityDuree, Label: "Durée", Abbr: "Du", Hint: "Temps d’effet (si applicable)"},
			{Key: domain.QualityControle, Label: "Contrôle", Abbr: "Co", Hint: "Modelage / précision des effets (Cible / Zone / Nuage / Etc)"},
			{Key: domain.QualityStabilite, Label: "Stabilité", Abbr: "St", Hint: "Renforce la pierre, réduit la fragilité"},
		},
		PointsStepCost: []int{1, 2, 3, 5, 8},
		DiffStepCost:   []int{2, 3, 4, 6, 9},
		Fragility: FragilityRules{
			DiversificationBonus: 2,
			StabilityBonus:       8,
			Bands: []domain.FragilityBand{
				{Max: 14, Label: "Faible (5)", Uses: 5},
				{Max: 22, Label: "Moyenne (3)", Uses: 3},
				{Max: 30, Label: "Haute (2)", Uses: 2},
				{Max: 1_000_000_000, Label: "Critique (1)", Uses: 1},
			},
		},
		StabilityKey:  domain.QualityStabilite,
		DefaultRank:   domain.RankEclat,
		DefaultRefine: domain.RefineBrute,
	}
}
