package domain

// Quality keys in display order
const (
	QualityPuissance = "puissance"
	QualityPortee    = "portee"
	QualityDuree     = "duree"
	QualityControle  = "controle"
	QualityStabilite = "stabilite"
)

// Rank keys
const (
	RankEclat  = "ECLAT"
	RankPierre = "PIERRE"
	RankCoeur  = "COEUR"
)

// Refinement keys
const (
	RefineBrute    = "BRUTE"
	RefineEpuree   = "EPUREE"
	RefineSublimee = "SUBLIMEE"
)

// Tier bounds shared by every quality
const (
	MinTier = 0
	MaxTier = 5
)

// CrystalState is the persisted shape of a crystal build
type CrystalState struct {
	Rank   string         `json:"rank"`
	Refine string         `json:"refine"`
	Tiers  map[string]int `json:"tiers"`
}

// FragilityBand maps a fragility score ceiling to a label and a use count
type FragilityBand struct {
	Max   int    `json:"max" validate:"gte=0"`
	Label string `json:"label" validate:"required"`
	Uses  int    `json:"uses" validate:"gte=1"`
}
