// Package conditions evaluates skill unlock-condition trees against a pet
// snapshot. Evaluation is pure: it never mutates the snapshot or the catalog,
// and every branch of a tree is evaluated so a full description list is
// available even when an early child already failed.
package conditions

import (
	"fmt"
	"strings"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/pet"
)

// Result is the outcome of evaluating a single condition.
type Result struct {
	Met         bool
	Progress    float64 // fraction in [0, 1]
	Description string
}

// Report is the outcome of evaluating all of a skill's top-level conditions.
// Each top-level condition is evaluated independently, not wrapped in an
// implicit all-of.
type Report struct {
	CanUnlock       bool
	Failed          []string
	OverallProgress float64
}

// Evaluator decides condition satisfaction against read-only pet snapshots.
type Evaluator struct {
	cat *catalog.Catalog
	now func() time.Time
}

// NewEvaluator creates an Evaluator over the given catalog.
func NewEvaluator(cat *catalog.Catalog) *Evaluator {
	return &Evaluator{cat: cat, now: time.Now}
}

// WithClock overrides the evaluator's time source, for tests.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// EvaluateAll evaluates every top-level unlock condition of a skill and
// aggregates the outcome. The skill can unlock iff no condition failed.
// Overall progress averages each top-level condition's fractional progress,
// with met conditions counting as 1; a skill with no conditions is fully met.
func (e *Evaluator) EvaluateAll(skillID string, snap *pet.Snapshot) (Report, error) {
	skill, err := e.cat.Get(skillID)
	if err != nil {
		return Report{}, err
	}

	if len(skill.UnlockConditions) == 0 {
		return Report{CanUnlock: true, OverallProgress: 1}, nil
	}

	report := Report{}
	total := 0.0
	for _, cond := range skill.UnlockConditions {
		res := e.Evaluate(cond, snap)
		if res.Met {
			total += 1
		} else {
			total += clamp01(res.Progress)
			report.Failed = append(report.Failed, res.Description)
		}
	}
	report.CanUnlock = len(report.Failed) == 0
	report.OverallProgress = total / float64(len(skill.UnlockConditions))
	return report, nil
}

// Evaluate recursively decides whether a condition is satisfied and how far
// along the pet is. Unknown variants fail closed with a diagnostic
// description; they never abort evaluation of sibling conditions.
func (e *Evaluator) Evaluate(cond catalog.Condition, snap *pet.Snapshot) Result {
	switch c := cond.(type) {
	case catalog.LevelCondition:
		return e.evalLevel(c, snap)
	case catalog.SkillPrerequisiteCondition:
		return e.evalPrerequisite(c, snap)
	case catalog.InteractionCountCondition:
		return e.evalInteractionCount(c, snap)
	case catalog.StatThresholdCondition:
		return threshold(snap.Stat(c.Stat), c.Value,
			fmt.Sprintf("Raise %s to %g", c.Stat, c.Value))
	case catalog.PersonalityTraitCondition:
		return threshold(snap.Trait(c.Trait), c.Value,
			fmt.Sprintf("Develop %s to %g", c.Trait, c.Value))
	case catalog.TimeBasedCondition:
		return e.evalTimeBased(c, snap)
	case catalog.AchievementCondition:
		return e.evalAchievement(c, snap)
	case catalog.CombinedCondition:
		return e.evalCombined(c, snap)
	case catalog.UnknownCondition:
		return Result{
			Met:         false,
			Progress:    0,
			Description: fmt.Sprintf("Unrecognized condition %q", c.Tag),
		}
	default:
		// Unreachable with the closed union; kept so a future variant that
		// misses an evaluator arm fails closed instead of silently passing.
		return Result{
			Met:         false,
			Progress:    0,
			Description: fmt.Sprintf("Unrecognized condition %T", cond),
		}
	}
}

func (e *Evaluator) evalLevel(c catalog.LevelCondition, snap *pet.Snapshot) Result {
	if c.Level <= 0 {
		return Result{Met: true, Progress: 1, Description: "Reach pet level 0"}
	}
	return Result{
		Met:         snap.Level >= c.Level,
		Progress:    clamp01(float64(snap.Level) / float64(c.Level)),
		Description: fmt.Sprintf("Reach pet level %d", c.Level),
	}
}

func (e *Evaluator) evalPrerequisite(c catalog.SkillPrerequisiteCondition, snap *pet.Snapshot) Result {
	name := c.SkillID
	if skill, err := e.cat.Get(c.SkillID); err == nil {
		name = skill.Name
	}
	desc := fmt.Sprintf("Level %s to %d", name, c.Level)

	progress, ok := snap.Skills[c.SkillID]
	if !ok || !progress.Active() {
		return Result{Met: false, Progress: 0, Description: desc}
	}
	if c.Level <= 0 {
		return Result{Met: true, Progress: 1, Description: desc}
	}
	return Result{
		Met:         progress.Level >= c.Level,
		Progress:    clamp01(float64(progress.Level) / float64(c.Level)),
		Description: desc,
	}
}

func (e *Evaluator) evalInteractionCount(c catalog.InteractionCountCondition, snap *pet.Snapshot) Result {
	label := "interactions"
	if c.InteractionType != "" {
		label = c.InteractionType + " interactions"
	}
	count := snap.InteractionCount(c.InteractionType)
	if c.Count <= 0 {
		return Result{Met: true, Progress: 1, Description: fmt.Sprintf("Complete %d %s", c.Count, label)}
	}
	return Result{
		Met:         count >= c.Count,
		Progress:    clamp01(float64(count) / float64(c.Count)),
		Description: fmt.Sprintf("Complete %d %s", c.Count, label),
	}
}

func (e *Evaluator) evalTimeBased(c catalog.TimeBasedCondition, snap *pet.Snapshot) Result {
	elapsed := snap.AgeDays(e.now())
	if c.Days <= 0 {
		return Result{Met: true, Progress: 1, Description: fmt.Sprintf("Spend %d days together", c.Days)}
	}
	return Result{
		Met:         elapsed >= c.Days,
		Progress:    clamp01(float64(elapsed) / float64(c.Days)),
		Description: fmt.Sprintf("Spend %d days together", c.Days),
	}
}

func (e *Evaluator) evalAchievement(c catalog.AchievementCondition, snap *pet.Snapshot) Result {
	earned := snap.HasAchievement(c.AchievementID)
	progress := 0.0
	if earned {
		progress = 1.0
	}
	return Result{
		Met:         earned,
		Progress:    progress,
		Description: fmt.Sprintf("Earn the %q achievement", c.AchievementID),
	}
}

// evalCombined evaluates every child (no short-circuit) and aggregates.
// The empty-children asymmetry (all: vacuously met, any: not met) is
// observed catalog behavior and kept as-is.
func (e *Evaluator) evalCombined(c catalog.CombinedCondition, snap *pet.Snapshot) Result {
	metCount := 0
	var unmet []string
	for _, child := range c.Children {
		res := e.Evaluate(child, snap)
		if res.Met {
			metCount++
		} else {
			unmet = append(unmet, res.Description)
		}
	}

	var met bool
	switch c.Mode {
	case catalog.CombineAny:
		met = metCount > 0
	default: // CombineAll
		met = metCount == len(c.Children)
	}

	progress := 0.0
	if len(c.Children) > 0 {
		progress = float64(metCount) / float64(len(c.Children))
	}

	var desc string
	switch {
	case met:
		desc = "Combined conditions met"
	case c.Mode == catalog.CombineAny:
		desc = "One of: " + strings.Join(unmet, "; ")
	default:
		desc = "All of: " + strings.Join(unmet, "; ")
	}

	return Result{Met: met, Progress: progress, Description: desc}
}

// threshold evaluates a numeric floor check shared by stat and trait
// conditions.
func threshold(current, required float64, desc string) Result {
	if required <= 0 {
		return Result{Met: true, Progress: 1, Description: desc}
	}
	return Result{
		Met:         current >= required,
		Progress:    clamp01(current / required),
		Description: desc,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
