package leveling

import "github.com/lidra0530/petskills/internal/catalog"

// Curve holds the experience-requirement tuning.
type Curve struct {
	// BaseLevelExperience is the requirement for level 1 of a common skill.
	BaseLevelExperience int
	// GrowthFactor is the per-level exponential growth rate.
	GrowthFactor float64
	// RarityMultipliers is the requirement-side rarity table, distinct
	// from the gain-side table in the experience package.
	RarityMultipliers map[catalog.Rarity]float64
}

// DefaultCurve returns the standard leveling curve.
func DefaultCurve() Curve {
	return Curve{
		BaseLevelExperience: 100,
		GrowthFactor:        1.5,
		RarityMultipliers: map[catalog.Rarity]float64{
			catalog.RarityCommon:    1.0,
			catalog.RarityUncommon:  1.3,
			catalog.RarityRare:      1.8,
			catalog.RarityEpic:      2.5,
			catalog.RarityLegendary: 4.0,
		},
	}
}

func (c Curve) rarityMultiplier(r catalog.Rarity) float64 {
	if m, ok := c.RarityMultipliers[r]; ok {
		return m
	}
	return 1.0
}
