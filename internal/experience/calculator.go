// Package experience computes the experience granted by one interaction.
// The calculation is deterministic and side-effect-free so it can be unit
// tested in isolation.
package experience

import (
	"math"
	"strings"

	"github.com/lidra0530/petskills/internal/catalog"
)

// ContextFactors is the optional context bag for a single interaction.
type ContextFactors struct {
	// ConsecutiveUses is the current streak for this skill.
	ConsecutiveUses int
	// PerfectPerformance flags a flawless interaction.
	PerfectPerformance bool
	// FirstTime flags the first use of the skill.
	FirstTime bool
	// GroupActivity flags an interaction involving other pets.
	GroupActivity bool
}

// Calculator computes experience gain from interaction parameters.
type Calculator struct {
	cat *catalog.Catalog
	cfg Config
}

// NewCalculator creates a Calculator over the given catalog and tuning.
func NewCalculator(cat *catalog.Catalog, cfg Config) *Calculator {
	return &Calculator{cat: cat, cfg: cfg}
}

// Gain computes the experience one interaction grants to a skill. Factors
// combine multiplicatively: base rate, type relevance, intensity, duration,
// rarity, the skill's own multiplier, and the context bonus. The result is
// rounded and never less than 1.
//
// Intensity is clamped to [1, 10] and duration to [0, 1440] minutes.
func (c *Calculator) Gain(skillID, interactionType string, intensity, durationMins int, factors *ContextFactors) (int, error) {
	skill, err := c.cat.Get(skillID)
	if err != nil {
		return 0, err
	}

	if intensity < MinIntensity {
		intensity = MinIntensity
	}
	if intensity > MaxIntensity {
		intensity = MaxIntensity
	}
	if durationMins < 0 {
		durationMins = 0
	}
	if durationMins > MaxDurationMins {
		durationMins = MaxDurationMins
	}

	base := c.cfg.DefaultBaseRate
	if rate, ok := c.cfg.BaseRates[interactionType]; ok {
		base = rate
	}

	typeMult := 1.0
	if c.relevant(skill.Type, interactionType) {
		typeMult = c.cfg.TypeRelevanceBonus
	}

	// Linear map from [1, 10] to [0.5, 2.0].
	intensityMult := 0.5 + float64(intensity-1)*(1.5/9)

	// Diminishing returns: saturates at 2x after 120 minutes.
	durationMult := math.Min(1+(float64(durationMins)/60)*0.5, 2.0)

	rarityMult, ok := c.cfg.RarityMultipliers[skill.Rarity]
	if !ok {
		rarityMult = 1.0
	}

	contextMult := c.contextMultiplier(factors)

	raw := base * typeMult * intensityMult * durationMult * rarityMult * skill.ExperienceMultiplier * contextMult
	gained := int(math.Round(raw))
	if gained < 1 {
		gained = 1
	}
	return gained, nil
}

// relevant reports whether the interaction type matches the skill category's
// keyword table (case-insensitive substring match).
func (c *Calculator) relevant(skillType catalog.SkillType, interactionType string) bool {
	lowered := strings.ToLower(interactionType)
	for _, kw := range c.cfg.CategoryKeywords[skillType] {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// contextMultiplier accumulates streak and situational bonuses, capped at
// MaxContextMultiplier.
func (c *Calculator) contextMultiplier(factors *ContextFactors) float64 {
	mult := 1.0
	if factors == nil {
		return mult
	}
	if factors.ConsecutiveUses > 0 {
		mult += math.Min(float64(factors.ConsecutiveUses)*0.1, 0.5)
	}
	if factors.PerfectPerformance {
		mult += 0.3
	}
	if factors.FirstTime {
		mult += 0.2
	}
	if factors.GroupActivity {
		mult += 0.15
	}
	return math.Min(mult, c.cfg.MaxContextMultiplier)
}
