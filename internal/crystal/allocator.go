package crystal

import (
	"fmt"
	"strings"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// Fragility is the evaluated fragility of a build
type Fragility struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Uses  int    `json:"uses"`
}

// Allocator tracks one crystal build: a rank, a refinement and a tier per quality.
// It is not safe for concurrent use.
type Allocator struct {
	cfg    *Config
	rank   Rank
	refine Refinement
	tiers  map[string]int
}

// NewAllocator returns an allocator at the default rank and refinement with
// every quality at the rank's base tier
func NewAllocator(cfg *Config) *Allocator {
	rank, _ := cfg.Rank(cfg.DefaultRank)
	refine, _ := cfg.Refinement(cfg.DefaultRefine)
	a := &Allocator{
		cfg:    cfg,
		rank:   rank,
		refine: refine,
		tiers:  make(map[string]int, len(cfg.Qualities)),
	}
	a.Reset()
	return a
}

// Restore loads a persisted state. Unknown ranks, refinements and qualities
// fall back to defaults and tiers are clamped. A state left over budget by a
// refinement downgrade is kept as is.
func (a *Allocator) Restore(state domain.CrystalState) {
	if r, ok := a.cfg.Rank(state.Rank); ok {
		a.rank = r
	}
	if r, ok := a.cfg.Refinement(state.Refine); ok {
		a.refine = r
	}
	a.Reset()
	for _, q := range a.cfg.Qualities {
		if t, ok := state.Tiers[q.Key]; ok {
			a.tiers[q.Key] = a.clamp(t)
		}
	}
}

// State returns a snapshot suitable for persistence
func (a *Allocator) State() domain.CrystalState {
	tiers := make(map[string]int, len(a.tiers))
	for k, v := range a.tiers {
		tiers[k] = v
	}
	return domain.CrystalState{Rank: a.rank.Key, Refine: a.refine.Key, Tiers: tiers}
}

// Rank returns the current rank
func (a *Allocator) Rank() Rank { return a.rank }

// Refinement returns the current refinement
func (a *Allocator) Refinement() Refinement { return a.refine }

// SetRank changes the rank and resets every quality to the new base tier
func (a *Allocator) SetRank(key string) error {
	r, ok := a.cfg.Rank(key)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownRank, key)
	}
	a.rank = r
	a.Reset()
	return nil
}

// SetRefinement changes the point budget. Tiers are kept as they are.
func (a *Allocator) SetRefinement(key string) error {
	r, ok := a.cfg.Refinement(key)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownRefinement, key)
	}
	a.refine = r
	return nil
}

// Reset puts every quality back to the rank's base tier
func (a *Allocator) Reset() {
	for _, q := range a.cfg.Qualities {
		a.tiers[q.Key] = a.rank.BaseTier
	}
}

// Tier returns the tier of a quality, or -1 for an unknown key
func (a *Allocator) Tier(key string) int {
	t, ok := a.tiers[key]
	if !ok {
		return -1
	}
	return t
}

func (a *Allocator) clamp(t int) int {
	if t < domain.MinTier {
		t = domain.MinTier
	}
	if t > domain.MaxTier {
		t = domain.MaxTier
	}
	if t < a.rank.BaseTier {
		t = a.rank.BaseTier
	}
	return t
}

// TrySetTier moves a quality to desired (clamped to the tier bounds and the base tier).
// Decreases always succeed. An increase succeeds only if the budget still holds;
// otherwise the state is left unchanged and false is returned.
func (a *Allocator) TrySetTier(key string, desired int) bool {
	prev, ok := a.tiers[key]
	if !ok {
		return false
	}
	next := a.clamp(desired)

	var delta int
	if next > prev {
		delta = a.cfg.PointsCost(prev, next)
	} else {
		delta = -a.cfg.PointsCost(next, prev)
	}

	if delta <= 0 || a.PointsSpent()+delta <= a.Budget() {
		a.tiers[key] = next
		return true
	}
	return false
}

// Budget is the refinement's point budget
func (a *Allocator) Budget() int { return a.refine.Points }

// PointsSpent sums the point cost of every tier above base
func (a *Allocator) PointsSpent() int {
	base := a.rank.BaseTier
	sum := 0
	for _, t := range a.tiers {
		if t > base {
			sum += a.cfg.PointsCost(base, t)
		}
	}
	return sum
}

// PointsRemaining never goes below zero
func (a *Allocator) PointsRemaining() int {
	return max(0, a.Budget()-a.PointsSpent())
}

// TierDifficulty sums the difficulty cost of every tier above base
func (a *Allocator) TierDifficulty() int {
	base := a.rank.BaseTier
	sum := 0
	for _, t := range a.tiers {
		if t > base {
			sum += a.cfg.DiffCost(base, t)
		}
	}
	return sum
}

// Difficulty is rank + refinement + tier difficulty
func (a *Allocator) Difficulty() int {
	return a.rank.Diff + a.refine.Diff + a.TierDifficulty()
}

// FragilityScore computes max(0, sum of squared non-stability tiers
// - diversification bonus per non-zero quality - stability bonus per stability tier)
func (a *Allocator) FragilityScore() int {
	rules := a.cfg.Fragility
	sumSquares, nonZero := 0, 0
	for k, t := range a.tiers {
		if t > 0 {
			nonZero++
		}
		if k != a.cfg.StabilityKey {
			sumSquares += t * t
		}
	}
	score := sumSquares - nonZero*rules.DiversificationBonus - a.tiers[a.cfg.StabilityKey]*rules.StabilityBonus
	return max(0, score)
}

// Fragility returns the score with its band
func (a *Allocator) Fragility() Fragility {
	score := a.FragilityScore()
	band := a.cfg.FragilityBand(score)
	return Fragility{Score: score, Label: band.Label, Uses: band.Uses}
}

// Export renders "<rank> <refine> (Pu3 Po1 ...) : <uses>"
func (a *Allocator) Export() string {
	parts := make([]string, 0, len(a.cfg.Qualities))
	for _, q := range a.cfg.Qualities {
		parts = append(parts, fmt.Sprintf("%s%d", q.Abbr, a.tiers[q.Key]))
	}
	return fmt.Sprintf("%s %s (%s) : %d", a.rank.Label, a.refine.Label, strings.Join(parts, " "), a.Fragility().Uses)
}

// Summary renders the long human-readable line
func (a *Allocator) Summary() string {
	base := a.rank.BaseTier
	parts := make([]string, 0, len(a.cfg.Qualities))
	for _, q := range a.cfg.Qualities {
		t := a.tiers[q.Key]
		if t > base {
			parts = append(parts, fmt.Sprintf("%s %d (+%d)", q.Label, t, t-base))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d", q.Label, t))
		}
	}
	return fmt.Sprintf("Rang %s (base %d) • %s (%d pts) • %s. Difficulté %d.",
		a.rank.Label, base, a.refine.Label, a.Budget(), strings.Join(parts, ", "), a.Difficulty())
}
