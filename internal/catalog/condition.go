package catalog

// Condition is the closed set of unlock-condition variants. Conditions form
// trees via Combined; the catalog validator rejects prerequisite cycles so
// the evaluator never needs cycle detection.
type Condition interface {
	isCondition()
}

// CombineMode selects how a Combined condition aggregates its children.
type CombineMode string

const (
	CombineAll CombineMode = "all"
	CombineAny CombineMode = "any"
)

// LevelCondition requires the pet to have reached a given level.
type LevelCondition struct {
	Level int
}

// SkillPrerequisiteCondition requires another skill to be unlocked (or
// mastered) at a minimum level.
type SkillPrerequisiteCondition struct {
	SkillID string
	Level   int
}

// InteractionCountCondition requires a minimum number of interactions,
// optionally filtered by interaction type. An empty type matches all.
type InteractionCountCondition struct {
	Count           int
	InteractionType string
}

// StatThresholdCondition requires a pet stat to meet a minimum value.
// A missing stat reads as 0.
type StatThresholdCondition struct {
	Stat  string
	Value float64
}

// PersonalityTraitCondition requires a personality trait to meet a minimum
// value. A missing trait reads as 0.
type PersonalityTraitCondition struct {
	Trait string
	Value float64
}

// TimeBasedCondition requires a minimum number of whole days since the pet
// was created.
type TimeBasedCondition struct {
	Days int
}

// AchievementCondition requires the pet to have earned an achievement.
type AchievementCondition struct {
	AchievementID string
}

// CombinedCondition aggregates child conditions under an all/any mode.
//
// An empty child list behaves asymmetrically: all is vacuously met (0 == 0)
// while any is not (0 > 0 fails). Catalog authors may rely on this, so it is
// preserved rather than normalized.
type CombinedCondition struct {
	Mode     CombineMode
	Children []Condition
}

// UnknownCondition is produced only when loading a catalog from external data
// that carries an unrecognized condition tag. It always evaluates as unmet so
// partially-unrecognized configuration degrades instead of failing hard.
type UnknownCondition struct {
	Tag string
}

func (LevelCondition) isCondition()             {}
func (SkillPrerequisiteCondition) isCondition() {}
func (InteractionCountCondition) isCondition()  {}
func (StatThresholdCondition) isCondition()     {}
func (PersonalityTraitCondition) isCondition()  {}
func (TimeBasedCondition) isCondition()         {}
func (AchievementCondition) isCondition()       {}
func (CombinedCondition) isCondition()          {}
func (UnknownCondition) isCondition()           {}

// PrerequisiteIDs walks a condition tree and collects every skill id
// referenced by a SkillPrerequisiteCondition.
func PrerequisiteIDs(cond Condition) []string {
	var ids []string
	walkCondition(cond, func(c Condition) {
		if p, ok := c.(SkillPrerequisiteCondition); ok {
			ids = append(ids, p.SkillID)
		}
	})
	return ids
}

func walkCondition(cond Condition, fn func(Condition)) {
	fn(cond)
	if combined, ok := cond.(CombinedCondition); ok {
		for _, child := range combined.Children {
			walkCondition(child, fn)
		}
	}
}
