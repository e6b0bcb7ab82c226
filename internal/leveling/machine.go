// Package leveling owns the mutable side of skill progression: applying
// experience to a progress record, rolling levels over, and the terminal
// mastery transition with its bonus effects.
//
// ApplyExperience is a non-atomic read-modify-write over the record it is
// given; the caller serializes concurrent calls for the same (pet, skill)
// pair and persists the mutated record.
package leveling

import (
	"math"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/pet"
)

// Result reports what one experience grant did to a progress record.
type Result struct {
	SkillID          string
	ExperienceGained int
	Level            int
	LeveledUp        bool
	MasteryAchieved  bool
	BonusEffects     []catalog.SkillEffect
}

// Machine applies experience to skill progress records.
type Machine struct {
	cat   *catalog.Catalog
	curve Curve
	now   func() time.Time
}

// NewMachine creates a Machine over the given catalog and curve.
func NewMachine(cat *catalog.Catalog, curve Curve) *Machine {
	return &Machine{cat: cat, curve: curve, now: time.Now}
}

// WithClock overrides the machine's time source, for tests.
func (m *Machine) WithClock(now func() time.Time) *Machine {
	m.now = now
	return m
}

// RequiredForLevel returns the experience required to complete the given
// level: round(base * growth^(level-1) * rarityMultiplier).
func (m *Machine) RequiredForLevel(skillID string, level int) (int, error) {
	skill, err := m.cat.Get(skillID)
	if err != nil {
		return 0, err
	}
	return m.requiredFor(skill, level), nil
}

func (m *Machine) requiredFor(skill catalog.SkillDefinition, level int) int {
	if level < 1 {
		level = 1
	}
	base := float64(m.curve.BaseLevelExperience)
	growth := math.Pow(m.curve.GrowthFactor, float64(level-1))
	return int(math.Round(base * growth * m.curve.rarityMultiplier(skill.Rarity)))
}

// ApplyExperience adds experience to a progress record, rolling over levels
// until the remaining experience is below the requirement or the level cap
// is hit. At the cap, excess experience is retained as-is. Mastery is the
// transition to the skill's max level; it stamps the terminal status and
// emits bonus effects. MasteryProgress is recomputed unconditionally, even
// when no level-up occurred.
//
// The record is mutated in place and the caller persists it. Negative
// amounts are treated as 0 so progress never regresses.
func (m *Machine) ApplyExperience(progress *pet.SkillProgress, amount int) (Result, error) {
	skill, err := m.cat.Get(progress.SkillID)
	if err != nil {
		return Result{}, err
	}
	if amount < 0 {
		amount = 0
	}

	progress.Experience += amount
	progress.UsageCount++
	progress.LastUsed = m.now()

	result := Result{
		SkillID:          progress.SkillID,
		ExperienceGained: amount,
		Level:            progress.Level,
	}

	for progress.Experience >= progress.ExperienceRequired {
		if progress.Level >= skill.MaxLevel {
			// Capped: excess experience is retained, no further rollover.
			break
		}

		progress.Experience -= progress.ExperienceRequired
		progress.Level++
		progress.ExperienceRequired = m.requiredFor(skill, progress.Level)

		result.LeveledUp = true
		result.Level = progress.Level

		if progress.Level >= skill.MaxLevel {
			progress.Status = pet.StatusMastered
			result.MasteryAchieved = true
			result.BonusEffects = masteryBonus(skill)
		}
	}

	progress.MasteryProgress = math.Min(float64(progress.Level)/float64(skill.MaxLevel), 1.0)
	return result, nil
}

// masteryBonus builds the effect list emitted at mastery: a fixed permanent
// +5 all-stats boost plus every base effect with its modifier scaled 1.5x.
func masteryBonus(skill catalog.SkillDefinition) []catalog.SkillEffect {
	effects := []catalog.SkillEffect{
		{
			Type:     catalog.EffectStatBoost,
			Target:   catalog.EffectTargetAllStats,
			Modifier: 5,
			Duration: catalog.PermanentDuration,
		},
	}
	for _, base := range skill.Effects {
		boosted := base
		boosted.Modifier = base.Modifier * 1.5
		effects = append(effects, boosted)
	}
	return effects
}
