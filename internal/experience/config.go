package experience

import "github.com/lidra0530/petskills/internal/catalog"

// Input bounds for a single interaction.
const (
	MinIntensity    = 1
	MaxIntensity    = 10
	MaxDurationMins = 1440
)

// Config holds experience-gain tuning.
type Config struct {
	// BaseRates maps interaction type to its base experience rate.
	BaseRates map[string]float64
	// DefaultBaseRate applies to interaction types absent from BaseRates.
	DefaultBaseRate float64
	// TypeRelevanceBonus multiplies gain when the interaction type matches
	// the skill's category keywords.
	TypeRelevanceBonus float64
	// RarityMultipliers is the gain-side rarity table, distinct from the
	// requirement-side table in the leveling package.
	RarityMultipliers map[catalog.Rarity]float64
	// CategoryKeywords drives type-relevance matching per skill category.
	CategoryKeywords map[catalog.SkillType][]string
	// MaxContextMultiplier caps the combined context bonus.
	MaxContextMultiplier float64
}

// DefaultConfig returns the standard experience tuning.
func DefaultConfig() Config {
	return Config{
		BaseRates: map[string]float64{
			"chat":       10,
			"play":       12,
			"teach":      15,
			"explore":    12,
			"comfort":    8,
			"group_play": 14,
			"training":   16,
			"story":      11,
		},
		DefaultBaseRate:    10,
		TypeRelevanceBonus: 1.5,
		RarityMultipliers: map[catalog.Rarity]float64{
			catalog.RarityCommon:    1.0,
			catalog.RarityUncommon:  1.2,
			catalog.RarityRare:      1.5,
			catalog.RarityEpic:      2.0,
			catalog.RarityLegendary: 3.0,
		},
		CategoryKeywords: map[catalog.SkillType][]string{
			catalog.TypeCommunication: {"chat", "talk", "story", "conversation"},
			catalog.TypeLearning:      {"teach", "learn", "training", "study"},
			catalog.TypeCreativity:    {"story", "create", "draw", "imagine"},
			catalog.TypeExploration:   {"explore", "adventure", "discover"},
			catalog.TypeEmotional:     {"comfort", "soothe", "cuddle"},
			catalog.TypeSocial:        {"group", "social", "party", "friend"},
			catalog.TypePhysical:      {"play", "exercise", "walk", "fetch"},
			catalog.TypeCognitive:     {"puzzle", "quiz", "think", "problem"},
		},
		MaxContextMultiplier: 3.0,
	}
}
