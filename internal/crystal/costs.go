package crystal

import "github.com/osse101/CharacterForge_Go/internal/domain"

// ImpassableStepCost is charged for a points step outside the cost table
const ImpassableStepCost = 9999

// PointsCost sums point steps for the transition from -> to (to > from)
func (c *Config) PointsCost(from, to int) int {
	cost := 0
	for t := from; t < to; t++ {
		if t < 0 || t >= len(c.PointsStepCost) {
			cost += ImpassableStepCost
			continue
		}
		cost += c.PointsStepCost[t]
	}
	return cost
}

// DiffCost sums difficulty steps for the transition from -> to; missing steps cost nothing
func (c *Config) DiffCost(from, to int) int {
	cost := 0
	for t := from; t < to; t++ {
		if t >= 0 && t < len(c.DiffStepCost) {
			cost += c.DiffStepCost[t]
		}
	}
	return cost
}

// FragilityBand returns the first band whose ceiling holds score, or the last band
func (c *Config) FragilityBand(score int) domain.FragilityBand {
	bands := c.Fragility.Bands
	for _, b := range bands {
		if score <= b.Max {
			return b
		}
	}
	return bands[len(bands)-1]
}
