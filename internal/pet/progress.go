package pet

import "time"

// SkillStatus is a skill's position in the unlock lifecycle. Locked and
// Available are evaluator-derived labels; only Unlocked and Mastered are
// persisted, and Mastered is terminal.
type SkillStatus string

const (
	StatusLocked    SkillStatus = "locked"
	StatusAvailable SkillStatus = "available"
	StatusUnlocked  SkillStatus = "unlocked"
	StatusMastered  SkillStatus = "mastered"
)

// Icon returns the display icon for a skill status.
func (s SkillStatus) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusAvailable:
		return "🔓"
	case StatusUnlocked:
		return "📈"
	case StatusMastered:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a skill status.
func (s SkillStatus) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusAvailable:
		return "Available"
	case StatusUnlocked:
		return "Unlocked"
	case StatusMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// SkillProgress is the mutable progress record for one (pet, skill) pair.
// It is created when the skill is first unlocked and mutated only by the
// leveling state machine; it is never deleted.
type SkillProgress struct {
	SkillID            string
	Level              int
	Experience         int
	ExperienceRequired int
	Status             SkillStatus
	UnlockedAt         time.Time
	LastUsed           time.Time
	UsageCount         int
	MasteryProgress    float64
}

// Active reports whether the skill is unlocked or mastered, i.e. it can
// satisfy prerequisite conditions and receive experience.
func (p *SkillProgress) Active() bool {
	return p.Status == StatusUnlocked || p.Status == StatusMastered
}
