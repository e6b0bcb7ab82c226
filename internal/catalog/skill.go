package catalog

// SkillType classifies a skill by the kind of pet behavior it develops.
type SkillType string

const (
	TypeCommunication SkillType = "communication"
	TypeLearning      SkillType = "learning"
	TypeCreativity    SkillType = "creativity"
	TypeExploration   SkillType = "exploration"
	TypeEmotional     SkillType = "emotional"
	TypeSocial        SkillType = "social"
	TypePhysical      SkillType = "physical"
	TypeCognitive     SkillType = "cognitive"
)

// AllSkillTypes returns all skill types in display order.
func AllSkillTypes() []SkillType {
	return []SkillType{
		TypeCommunication,
		TypeLearning,
		TypeCreativity,
		TypeExploration,
		TypeEmotional,
		TypeSocial,
		TypePhysical,
		TypeCognitive,
	}
}

// TypeDisplayName returns a human-readable name for a skill type.
func TypeDisplayName(t SkillType) string {
	switch t {
	case TypeCommunication:
		return "Communication"
	case TypeLearning:
		return "Learning"
	case TypeCreativity:
		return "Creativity"
	case TypeExploration:
		return "Exploration"
	case TypeEmotional:
		return "Emotional"
	case TypeSocial:
		return "Social"
	case TypePhysical:
		return "Physical"
	case TypeCognitive:
		return "Cognitive"
	default:
		return string(t)
	}
}

// Rarity is the ordinal classification of a skill, from common to legendary.
// Rarity scales both experience gain and per-level experience requirements.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// Rank returns the ordinal position of the rarity (common = 0).
// Unrecognized rarities rank below common.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	default:
		return -1
	}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// PermanentDuration is the sentinel value marking an effect that never expires.
const PermanentDuration = -1

// Common effect categories. Effect types are free-form strings so catalogs
// can introduce new categories without a code change.
const (
	EffectStatBoost            = "stat_boost"
	EffectConversationModifier = "conversation_modifier"
	EffectPassiveBonus         = "passive_bonus"
	EffectSpecialAction        = "special_action"
)

// EffectTargetAllStats applies a stat_boost effect to every pet stat.
const EffectTargetAllStats = "all_stats"

// SkillEffect describes a bonus a skill grants once unlocked or mastered.
type SkillEffect struct {
	Type     string
	Target   string
	Modifier float64
	// Duration in minutes. PermanentDuration means the effect never expires.
	Duration int
}

// Permanent reports whether the effect never expires.
func (e SkillEffect) Permanent() bool {
	return e.Duration < 0
}

// MaxLevelCap bounds maxLevel for every skill; the leveling rollover loop is
// bounded by it.
const MaxLevelCap = 30

// SkillDefinition is the immutable definition of a single skill. Definitions
// are loaded once at startup and shared by all pets.
type SkillDefinition struct {
	ID                   string
	Name                 string
	Description          string
	Icon                 string
	Type                 SkillType
	Rarity               Rarity
	MaxLevel             int
	ExperienceMultiplier float64
	UnlockConditions     []Condition
	Effects              []SkillEffect
}
