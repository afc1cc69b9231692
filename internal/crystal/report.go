package crystal

import (
	"fmt"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// QualityView is a quality with its current tier
type QualityView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Abbr  string `json:"abbr"`
	Hint  string `json:"hint"`
	Tier  int    `json:"tier"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Report is the full evaluation of a build
type Report struct {
	State           domain.CrystalState `json:"state"`
	RankLabel       string              `json:"rank_label"`
	RefineLabel     string              `json:"refine_label"`
	BaseTier        int                 `json:"base_tier"`
	Qualities       []QualityView       `json:"qualities"`
	Budget          int                 `json:"budget"`
	PointsSpent     int                 `json:"points_spent"`
	PointsRemaining int                 `json:"points_remaining"`
	RankDifficulty  int                 `json:"rank_difficulty"`
	RefineDiff      int                 `json:"refine_difficulty"`
	TierDifficulty  int                 `json:"tier_difficulty"`
	Difficulty      int                 `json:"difficulty"`
	Fragility       Fragility           `json:"fragility"`
	Export          string              `json:"export"`
	Summary         string              `json:"summary"`
	Rejected        []string            `json:"rejected,omitempty"`
}

// Report evaluates the allocator's current state
func (a *Allocator) Report() Report {
	views := make([]QualityView, 0, len(a.cfg.Qualities))
	for _, q := range a.cfg.Qualities {
		views = append(views, QualityView{
			Key:   q.Key,
			Label: q.Label,
			Abbr:  q.Abbr,
			Hint:  q.Hint,
			Tier:  a.tiers[q.Key],
			Min:   a.rank.BaseTier,
			Max:   domain.MaxTier,
		})
	}
	return Report{
		State:           a.State(),
		RankLabel:       a.rank.Label,
		RefineLabel:     a.refine.Label,
		BaseTier:        a.rank.BaseTier,
		Qualities:       views,
		Budget:          a.Budget(),
		PointsSpent:     a.PointsSpent(),
		PointsRemaining: a.PointsRemaining(),
		RankDifficulty:  a.rank.Diff,
		RefineDiff:      a.refine.Diff,
		TierDifficulty:  a.TierDifficulty(),
		Difficulty:      a.Difficulty(),
		Fragility:       a.Fragility(),
		Export:          a.Export(),
		Summary:         a.Summary(),
	}
}

// Evaluate builds a crystal from scratch: rank, refinement, then each requested
// tier in quality order. Requests the budget cannot cover are listed in Rejected.
func Evaluate(cfg *Config, rank, refine string, tiers map[string]int) (Report, error) {
	a := NewAllocator(cfg)
	if rank != "" {
		if err := a.SetRank(rank); err != nil {
			return Report{}, err
		}
	}
	if refine != "" {
		if err := a.SetRefinement(refine); err != nil {
			return Report{}, err
		}
	}

	for k := range tiers {
		if _, ok := cfg.Quality(k); !ok {
			return Report{}, fmt.Errorf("%w: %s", domain.ErrUnknownQuality, k)
		}
	}

	var rejected []string
	for _, q := range cfg.Qualities {
		want, ok := tiers[q.Key]
		if !ok {
			continue
		}
		if !a.TrySetTier(q.Key, want) {
			rejected = append(rejected, q.Key)
		}
	}

	r := a.Report()
	r.Rejected = rejected
	return r, nil
}
