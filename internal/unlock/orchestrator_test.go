package unlock

import (
	"errors"
	"testing"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/conditions"
	"github.com/lidra0530/petskills/internal/leveling"
	"github.com/lidra0530/petskills/internal/pet"
)

func unlockCatalog(t *testing.T) *catalog.Catalog {
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
				catalog.SkillPrerequisiteCondition{SkillID: "chatter", Level: 1},
			},
		},
		{
			ID: "storyteller", Name: "Storyteller", Type: catalog.TypeCreativity,
			Rarity: catalog.RarityRare, MaxLevel: 15, ExperienceMultiplier: 1.2,
			UnlockConditions: []catalog.Condition{
				catalog.LevelCondition{Level: 5},
				catalog.SkillPrerequisiteCondition{SkillID: "chatter", Level: 3},
			},
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func newOrchestrator(t *testing.T) (*Orchestrator, time.Time) {
	t.Helper()
	cat := unlockCatalog(t)
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	o := New(cat,
		conditions.NewEvaluator(cat).WithClock(clock),
		leveling.NewMachine(cat, leveling.DefaultCurve()).WithClock(clock),
	).WithClock(clock)
	return o, now
}

func TestUnlockSuccess(t *testing.T) {
	o, now := newOrchestrator(t)
	snap := pet.NewSnapshot(now.AddDate(0, -1, 0))

	result, err := o.Unlock("chatter", snap)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !result.Unlocked {
		t.Fatalf("expected unlock to succeed, failed: %v", result.FailedConditions)
	}

	p := result.Progress
	if p == nil {
		t.Fatal("expected a progress record")
	}
	if p.Level != 1 || p.Experience != 0 {
		t.Errorf("fresh record = level %d exp %d, want level 1 exp 0", p.Level, p.Experience)
	}
	if p.ExperienceRequired != 100 {
		t.Errorf("required = %d, want 100", p.ExperienceRequired)
	}
	if p.Status != pet.StatusUnlocked {
		t.Errorf("status = %s, want unlocked", p.Status)
	}
	if !p.UnlockedAt.Equal(now) {
		t.Errorf("unlocked at = %v, want %v", p.UnlockedAt, now)
	}

	// The snapshot is the caller's; Unlock must not write into it.
	if _, ok := snap.Skills["chatter"]; ok {
		t.Error("unlock must not mutate the snapshot")
	}
}

func TestUnlockConditionsUnmet(t *testing.T) {
	o, now := newOrchestrator(t)
	snap := pet.NewSnapshot(now.AddDate(0, -1, 0))
	snap.Level = 5 // level condition met, prerequisite chain not

	result, err := o.Unlock("storyteller", snap)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if result.Unlocked {
		t.Fatal("expected unlock to be refused")
	}
	if result.Progress != nil {
		t.Error("refused unlock must not carry a progress record")
	}
	if len(result.FailedConditions) != 1 {
		t.Errorf("failed conditions = %v, want one entry", result.FailedConditions)
	}
	if result.OverallProgress != 0.5 {
		t.Errorf("overall progress = %v, want 0.5", result.OverallProgress)
	}
}

func TestUnlockReportsFractionalProgress(t *testing.T) {
	cat, err := catalog.New([]catalog.SkillDefinition{
		{
			ID: "elder", Name: "Elder", Type: catalog.TypeEmotional,
			Rarity: catalog.RarityEpic, MaxLevel: 20, ExperienceMultiplier: 1.0,
			UnlockConditions: []catalog.Condition{
				catalog.LevelCondition{Level: 25},
			},
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	o := New(cat, conditions.NewEvaluator(cat), leveling.NewMachine(cat, leveling.DefaultCurve()))

	snap := pet.NewSnapshot(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	snap.Level = 10

	result, err := o.Unlock("elder", snap)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if result.Unlocked {
		t.Fatal("level 10 of 25 should not unlock")
	}
	// "Locked, 40% there": the single unmet condition is 10/25 along.
	if result.OverallProgress != 0.4 {
		t.Errorf("overall progress = %v, want 0.4", result.OverallProgress)
	}
}

func TestUnlockUnknownSkill(t *testing.T) {
	o, now := newOrchestrator(t)
	snap := pet.NewSnapshot(now)

	_, err := o.Unlock("nonexistent", snap)
	if !errors.Is(err, catalog.ErrSkillNotFound) {
		t.Errorf("err = %v, want ErrSkillNotFound", err)
	}
}

func TestUnlockCascadeDiscovery(t *testing.T) {
	o, now := newOrchestrator(t)
	snap := pet.NewSnapshot(now.AddDate(0, -1, 0))

	result, err := o.Unlock("chatter", snap)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !result.Unlocked {
		t.Fatalf("expected unlock to succeed, failed: %v", result.FailedConditions)
	}

	// listener needs chatter level 1, so it just became reachable.
	// storyteller also needs pet level 5 and chatter level 3, so it did not.
	if len(result.NewlyAvailable) != 1 || result.NewlyAvailable[0] != "listener" {
		t.Errorf("newly available = %v, want [listener]", result.NewlyAvailable)
	}

	// Discovery only: listener is reported, not unlocked.
	if _, ok := snap.Skills["listener"]; ok {
		t.Error("cascade must not auto-unlock dependent skills")
	}
}

func TestAvailableSkills(t *testing.T) {
	o, now := newOrchestrator(t)
	snap := pet.NewSnapshot(now.AddDate(0, -1, 0))
	snap.Level = 5
	snap.Skills["chatter"] = &pet.SkillProgress{
		SkillID: "chatter", Level: 3, Status: pet.StatusUnlocked,
	}

	avail := o.AvailableSkills(snap)

	// chatter is active and skipped entirely.
	if _, ok := avail.ProgressByID["chatter"]; ok {
		t.Error("active skills should not be evaluated")
	}

	want := map[string]float64{"listener": 1, "storyteller": 1}
	for id, wantProg := range want {
		got, ok := avail.ProgressByID[id]
		if !ok {
			t.Errorf("missing progress for %s", id)
			continue
		}
		if got != wantProg {
			t.Errorf("progress[%s] = %v, want %v", id, got, wantProg)
		}
	}

	unlockable := make(map[string]bool)
	for _, id := range avail.Unlockable {
		unlockable[id] = true
	}
	if !unlockable["listener"] || !unlockable["storyteller"] {
		t.Errorf("unlockable = %v, want listener and storyteller", avail.Unlockable)
	}
}

func TestAvailableSkillsPartialProgress(t *testing.T) {
	o, now := newOrchestrator(t)
	snap := pet.NewSnapshot(now.AddDate(0, -1, 0))
	snap.Level = 5 // storyteller: level met, prerequisite not

	avail := o.AvailableSkills(snap)

	if got := avail.ProgressByID["storyteller"]; got != 0.5 {
		t.Errorf("storyteller progress = %v, want 0.5", got)
	}
	for _, id := range avail.Unlockable {
		if id == "storyteller" {
			t.Error("storyteller should not be unlockable yet")
		}
	}
}
