package conditions

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/pet"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.SkillDefinition{
		{
			ID: "chatter", Name: "Chatter", Type: catalog.TypeCommunication,
			Rarity: catalog.RarityCommon, MaxLevel: 10, ExperienceMultiplier: 1.0,
		},
		{
			ID: "listener", Name: "Listener", Type: catalog.TypeCommunication,
			Rarity: catalog.RarityUncommon, MaxLevel: 10, ExperienceMultiplier: 1.0,
			UnlockConditions: []catalog.Condition{
				catalog.LevelCondition{Level: 3},
				catalog.SkillPrerequisiteCondition{SkillID: "chatter", Level: 2},
			},
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func testSnapshot() *pet.Snapshot {
	return pet.NewSnapshot(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestEvaluateAllNoConditions(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))

	report, err := eval.EvaluateAll("chatter", testSnapshot())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !report.CanUnlock {
		t.Error("skill without conditions should be unlockable")
	}
	if report.OverallProgress != 1 {
		t.Errorf("overall progress = %v, want 1", report.OverallProgress)
	}
}

func TestEvaluateAllUnknownSkill(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))

	_, err := eval.EvaluateAll("nonexistent", testSnapshot())
	if !errors.Is(err, catalog.ErrSkillNotFound) {
		t.Errorf("err = %v, want ErrSkillNotFound", err)
	}
}

func TestEvaluateAllPartialProgress(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()
	snap.Level = 5 // level condition met, prerequisite not
	snap.Skills["chatter"] = &pet.SkillProgress{
		SkillID: "chatter", Level: 1, Status: pet.StatusUnlocked,
	}

	report, err := eval.EvaluateAll("listener", snap)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if report.CanUnlock {
		t.Error("expected prerequisite to block unlock")
	}
	if len(report.Failed) != 1 {
		t.Fatalf("failed = %v, want one entry", report.Failed)
	}
	// Level condition met (1.0) plus chatter at level 1 of the required 2
	// (0.5), averaged over the two conditions.
	if report.OverallProgress != 0.75 {
		t.Errorf("overall progress = %v, want 0.75", report.OverallProgress)
	}
}

func TestEvaluateAllFractionalProgressOfFailingCondition(t *testing.T) {
	cat, err := catalog.New([]catalog.SkillDefinition{
		{
			ID: "sage", Name: "Sage", Type: catalog.TypeCognitive,
			Rarity: catalog.RarityRare, MaxLevel: 10, ExperienceMultiplier: 1.0,
			UnlockConditions: []catalog.Condition{
				catalog.LevelCondition{Level: 25},
			},
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	eval := NewEvaluator(cat)
	snap := testSnapshot()
	snap.Level = 10

	report, err := eval.EvaluateAll("sage", snap)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if report.CanUnlock {
		t.Error("level 10 of 25 should not unlock")
	}
	// A single unmet condition still reports how far along it is: 10/25.
	if report.OverallProgress != 0.4 {
		t.Errorf("overall progress = %v, want 0.4", report.OverallProgress)
	}
}

func TestEvaluateLevel(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()
	snap.Level = 10

	tests := []struct {
		name     string
		required int
		wantMet  bool
		wantProg float64
	}{
		{"well below", 25, false, 0.4},
		{"exactly at", 10, true, 1},
		{"above", 5, true, 1},
		{"zero is vacuous", 0, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := eval.Evaluate(catalog.LevelCondition{Level: tt.required}, snap)
			if res.Met != tt.wantMet {
				t.Errorf("met = %v, want %v", res.Met, tt.wantMet)
			}
			if res.Progress != tt.wantProg {
				t.Errorf("progress = %v, want %v", res.Progress, tt.wantProg)
			}
		})
	}
}

func TestEvaluatePrerequisite(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	cond := catalog.SkillPrerequisiteCondition{SkillID: "chatter", Level: 4}

	snap := testSnapshot()
	res := eval.Evaluate(cond, snap)
	if res.Met || res.Progress != 0 {
		t.Errorf("missing skill: met=%v progress=%v, want false/0", res.Met, res.Progress)
	}
	if !strings.Contains(res.Description, "Chatter") {
		t.Errorf("description %q should use the display name", res.Description)
	}

	snap.Skills["chatter"] = &pet.SkillProgress{
		SkillID: "chatter", Level: 2, Status: pet.StatusUnlocked,
	}
	res = eval.Evaluate(cond, snap)
	if res.Met {
		t.Error("level 2 of 4 should not be met")
	}
	if res.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", res.Progress)
	}

	snap.Skills["chatter"].Level = 4
	res = eval.Evaluate(cond, snap)
	if !res.Met {
		t.Error("level 4 of 4 should be met")
	}

	// A mastered prerequisite still counts.
	snap.Skills["chatter"].Status = pet.StatusMastered
	if res := eval.Evaluate(cond, snap); !res.Met {
		t.Error("mastered prerequisite should satisfy the condition")
	}
}

func TestEvaluateInteractionCount(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()
	for i := 0; i < 3; i++ {
		snap.History = append(snap.History, pet.InteractionEvent{Type: "play"})
	}
	snap.History = append(snap.History, pet.InteractionEvent{Type: "chat"})

	res := eval.Evaluate(catalog.InteractionCountCondition{Count: 6, InteractionType: "play"}, snap)
	if res.Met {
		t.Error("3 of 6 play interactions should not be met")
	}
	if res.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", res.Progress)
	}

	// Empty type counts every interaction.
	res = eval.Evaluate(catalog.InteractionCountCondition{Count: 4}, snap)
	if !res.Met {
		t.Error("4 total interactions should satisfy count 4")
	}
}

func TestEvaluateStatAndTrait(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()
	snap.Stats["happiness"] = 40
	snap.Personality["openness"] = 0.6

	res := eval.Evaluate(catalog.StatThresholdCondition{Stat: "happiness", Value: 80}, snap)
	if res.Met || res.Progress != 0.5 {
		t.Errorf("happiness 40/80: met=%v progress=%v, want false/0.5", res.Met, res.Progress)
	}

	res = eval.Evaluate(catalog.PersonalityTraitCondition{Trait: "openness", Value: 0.6}, snap)
	if !res.Met {
		t.Error("openness 0.6 should satisfy threshold 0.6")
	}

	// A stat the pet does not have reads as zero.
	res = eval.Evaluate(catalog.StatThresholdCondition{Stat: "bravery", Value: 10}, snap)
	if res.Met || res.Progress != 0 {
		t.Errorf("missing stat: met=%v progress=%v, want false/0", res.Met, res.Progress)
	}
}

func TestEvaluateTimeBased(t *testing.T) {
	snap := testSnapshot() // created 2026-01-01
	now := time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC)
	eval := NewEvaluator(testCatalog(t)).WithClock(func() time.Time { return now })

	res := eval.Evaluate(catalog.TimeBasedCondition{Days: 7}, snap)
	if !res.Met {
		t.Error("7.5 elapsed days should satisfy 7")
	}

	res = eval.Evaluate(catalog.TimeBasedCondition{Days: 14}, snap)
	if res.Met {
		t.Error("7.5 elapsed days should not satisfy 14")
	}
	if res.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", res.Progress)
	}
}

func TestEvaluateAchievement(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()
	snap.Achievements["first_friend"] = true

	if res := eval.Evaluate(catalog.AchievementCondition{AchievementID: "first_friend"}, snap); !res.Met {
		t.Error("earned achievement should be met")
	}
	res := eval.Evaluate(catalog.AchievementCondition{AchievementID: "explorer"}, snap)
	if res.Met || res.Progress != 0 {
		t.Errorf("unearned achievement: met=%v progress=%v, want false/0", res.Met, res.Progress)
	}
}

func TestEvaluateCombined(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()
	snap.Level = 5

	passing := catalog.LevelCondition{Level: 3}
	failing := catalog.LevelCondition{Level: 9}

	res := eval.Evaluate(catalog.CombinedCondition{
		Mode:     catalog.CombineAll,
		Children: []catalog.Condition{passing, failing},
	}, snap)
	if res.Met {
		t.Error("all-of with a failing child should not be met")
	}
	if res.Progress != 0.5 {
		t.Errorf("all-of progress = %v, want 0.5", res.Progress)
	}
	if !strings.HasPrefix(res.Description, "All of: ") {
		t.Errorf("description = %q, want 'All of: ' prefix", res.Description)
	}

	res = eval.Evaluate(catalog.CombinedCondition{
		Mode:     catalog.CombineAny,
		Children: []catalog.Condition{passing, failing},
	}, snap)
	if !res.Met {
		t.Error("any-of with a passing child should be met")
	}
}

func TestEvaluateCombinedEmptyChildren(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()

	// The empty all-of is vacuously met; the empty any-of is not.
	// Both report zero progress.
	all := eval.Evaluate(catalog.CombinedCondition{Mode: catalog.CombineAll}, snap)
	if !all.Met {
		t.Error("empty all-of should be met")
	}
	if all.Progress != 0 {
		t.Errorf("empty all-of progress = %v, want 0", all.Progress)
	}

	any := eval.Evaluate(catalog.CombinedCondition{Mode: catalog.CombineAny}, snap)
	if any.Met {
		t.Error("empty any-of should not be met")
	}
	if any.Progress != 0 {
		t.Errorf("empty any-of progress = %v, want 0", any.Progress)
	}
}

func TestEvaluateUnknownFailsClosed(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()

	res := eval.Evaluate(catalog.UnknownCondition{Tag: "lunar_phase"}, snap)
	if res.Met {
		t.Error("unknown condition should fail closed")
	}
	if !strings.Contains(res.Description, "lunar_phase") {
		t.Errorf("description %q should carry the unknown tag", res.Description)
	}

	// A sibling inside a combined tree still evaluates normally.
	snap.Level = 5
	combined := eval.Evaluate(catalog.CombinedCondition{
		Mode: catalog.CombineAny,
		Children: []catalog.Condition{
			catalog.UnknownCondition{Tag: "lunar_phase"},
			catalog.LevelCondition{Level: 3},
		},
	}, snap)
	if !combined.Met {
		t.Error("any-of should pass on the recognized sibling")
	}
}

func TestEvaluateIsRepeatable(t *testing.T) {
	eval := NewEvaluator(testCatalog(t))
	snap := testSnapshot()
	snap.Level = 2

	first, err := eval.EvaluateAll("listener", snap)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	second, err := eval.EvaluateAll("listener", snap)
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if first.CanUnlock != second.CanUnlock || first.OverallProgress != second.OverallProgress {
		t.Errorf("repeated evaluation diverged: %+v vs %+v", first, second)
	}
	if snap.Level != 2 || len(snap.Skills) != 0 {
		t.Error("evaluation must not mutate the snapshot")
	}
}
