// Package unlock composes the catalog, condition evaluator, and leveling
// machine: it decides eligibility, materializes new progress records, and
// reports which other skills just became reachable.
package unlock

import (
	"sort"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/conditions"
	"github.com/lidra0530/petskills/internal/leveling"
	"github.com/lidra0530/petskills/internal/pet"
)

// Result is the outcome of one unlock attempt. An unmet condition set is an
// expected outcome, not an error: Unlocked is false and FailedConditions
// carries the human-readable descriptions for "locked, X% there" rendering.
type Result struct {
	SkillID          string
	Unlocked         bool
	Progress         *pet.SkillProgress // nil unless Unlocked
	FailedConditions []string
	OverallProgress  float64
	// NewlyAvailable lists skills whose conditions became satisfiable once
	// this skill unlocked. Discovery only; they are not auto-unlocked.
	NewlyAvailable []string
}

// Availability partitions the catalog's not-yet-unlocked skills.
type Availability struct {
	// Unlockable lists skill ids whose every condition is currently met.
	Unlockable []string
	// ProgressByID maps each evaluated skill to its overall progress.
	ProgressByID map[string]float64
}

// Orchestrator drives skill unlocking for one pet snapshot at a time.
type Orchestrator struct {
	cat     *catalog.Catalog
	eval    *conditions.Evaluator
	machine *leveling.Machine
	now     func() time.Time
}

// New creates an Orchestrator from its collaborators.
func New(cat *catalog.Catalog, eval *conditions.Evaluator, machine *leveling.Machine) *Orchestrator {
	return &Orchestrator{cat: cat, eval: eval, machine: machine, now: time.Now}
}

// WithClock overrides the orchestrator's time source, for tests.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Unlock attempts to unlock a skill against the given snapshot. A skill id
// absent from the catalog is a data-integrity error (catalog.ErrSkillNotFound),
// distinct from an ordinary "conditions unmet" result. On success the
// returned Result carries the fresh progress record; the caller persists it.
// The snapshot itself is never mutated.
func (o *Orchestrator) Unlock(skillID string, snap *pet.Snapshot) (Result, error) {
	report, err := o.eval.EvaluateAll(skillID, snap)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		SkillID:          skillID,
		FailedConditions: report.Failed,
		OverallProgress:  report.OverallProgress,
	}
	if !report.CanUnlock {
		return result, nil
	}

	required, err := o.machine.RequiredForLevel(skillID, 1)
	if err != nil {
		return Result{}, err
	}

	now := o.now()
	progress := &pet.SkillProgress{
		SkillID:            skillID,
		Level:              1,
		Experience:         0,
		ExperienceRequired: required,
		Status:             pet.StatusUnlocked,
		UnlockedAt:         now,
		MasteryProgress:    0,
	}

	result.Unlocked = true
	result.Progress = progress
	result.NewlyAvailable = o.newlyAvailable(skillID, snap, progress)
	return result, nil
}

// newlyAvailable recomputes the unlockable set with the fresh progress record
// in place and reports skills that were not unlockable before. This is a
// cascading-discovery pass, not a second unlock.
func (o *Orchestrator) newlyAvailable(skillID string, snap *pet.Snapshot, progress *pet.SkillProgress) []string {
	before := make(map[string]bool)
	for _, id := range o.AvailableSkills(snap).Unlockable {
		before[id] = true
	}

	after := snap.Clone()
	after.Skills[skillID] = progress

	var newly []string
	for _, id := range o.AvailableSkills(after).Unlockable {
		if id != skillID && !before[id] {
			newly = append(newly, id)
		}
	}
	sort.Strings(newly)
	return newly
}

// AvailableSkills evaluates every catalog skill the pet has not yet unlocked
// and partitions the outcome. Skills already unlocked or mastered are
// skipped. A skill whose evaluation fails (which only a malformed catalog
// could cause) is simply absent from the result; one skill's trouble never
// aborts its siblings.
func (o *Orchestrator) AvailableSkills(snap *pet.Snapshot) Availability {
	avail := Availability{ProgressByID: make(map[string]float64)}

	for _, skill := range o.cat.All() {
		if progress, ok := snap.Skills[skill.ID]; ok && progress.Active() {
			continue
		}
		report, err := o.eval.EvaluateAll(skill.ID, snap)
		if err != nil {
			continue
		}
		avail.ProgressByID[skill.ID] = report.OverallProgress
		if report.CanUnlock {
			avail.Unlockable = append(avail.Unlockable, skill.ID)
		}
	}

	sort.Strings(avail.Unlockable)
	return avail
}
