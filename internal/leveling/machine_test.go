package leveling

import (
	"errors"
	"testing"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/pet"
)

func levelCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.SkillDefinition{
		{
			ID: "chatter", Name: "Chatter", Type: catalog.TypeCommunication,
			Rarity: catalog.RarityCommon, MaxLevel: 10, ExperienceMultiplier: 1.0,
		},
		{
			ID: "dreamer", Name: "Dreamer", Type: catalog.TypeCreativity,
			Rarity: catalog.RarityLegendary, MaxLevel: 20, ExperienceMultiplier: 1.0,
		},
		{
			ID: "sprint", Name: "Sprint", Type: catalog.TypePhysical,
			Rarity: catalog.RarityCommon, MaxLevel: 2, ExperienceMultiplier: 1.0,
			Effects: []catalog.SkillEffect{
				{
					Type:     catalog.EffectStatBoost,
					Target:   "energy",
					Modifier: 2,
					Duration: catalog.PermanentDuration,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func newMachine(t *testing.T) *Machine {
	t.Helper()
	return NewMachine(levelCatalog(t), DefaultCurve()).
		WithClock(func() time.Time {
			return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		})
}

func unlockedProgress(skillID string, required int) *pet.SkillProgress {
	return &pet.SkillProgress{
		SkillID:            skillID,
		Level:              1,
		ExperienceRequired: required,
		Status:             pet.StatusUnlocked,
	}
}

func TestRequiredForLevel(t *testing.T) {
	m := newMachine(t)

	tests := []struct {
		skillID string
		level   int
		want    int
	}{
		{"chatter", 1, 100},
		{"chatter", 2, 150},
		{"chatter", 3, 225},
		{"chatter", 4, 338}, // 100 * 1.5^3 = 337.5, rounds up
		{"dreamer", 1, 400},
		{"dreamer", 2, 600},
	}

	for _, tt := range tests {
		got, err := m.RequiredForLevel(tt.skillID, tt.level)
		if err != nil {
			t.Fatalf("required %s level %d: %v", tt.skillID, tt.level, err)
		}
		if got != tt.want {
			t.Errorf("required %s level %d = %d, want %d", tt.skillID, tt.level, got, tt.want)
		}
	}
}

func TestRequiredForLevelStrictlyIncreasing(t *testing.T) {
	m := newMachine(t)

	prev := 0
	for level := 1; level <= 10; level++ {
		got, err := m.RequiredForLevel("chatter", level)
		if err != nil {
			t.Fatalf("required level %d: %v", level, err)
		}
		if got <= prev {
			t.Errorf("required(%d) = %d not greater than required(%d) = %d", level, got, level-1, prev)
		}
		prev = got
	}
}

func TestRequiredForLevelUnknownSkill(t *testing.T) {
	m := newMachine(t)
	_, err := m.RequiredForLevel("nonexistent", 1)
	if !errors.Is(err, catalog.ErrSkillNotFound) {
		t.Errorf("err = %v, want ErrSkillNotFound", err)
	}
}

func TestApplyExperienceSingleLevelUp(t *testing.T) {
	m := newMachine(t)
	progress := unlockedProgress("chatter", 100)

	result, err := m.ApplyExperience(progress, 120)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if !result.LeveledUp {
		t.Error("expected a level up")
	}
	if progress.Level != 2 {
		t.Errorf("level = %d, want 2", progress.Level)
	}
	if progress.Experience != 20 {
		t.Errorf("leftover experience = %d, want 20", progress.Experience)
	}
	if progress.ExperienceRequired != 150 {
		t.Errorf("next requirement = %d, want 150", progress.ExperienceRequired)
	}
	if result.MasteryAchieved {
		t.Error("level 2 of 10 is not mastery")
	}
	if progress.MasteryProgress != 0.2 {
		t.Errorf("mastery progress = %v, want 0.2", progress.MasteryProgress)
	}
}

func TestApplyExperienceNoLevelUp(t *testing.T) {
	m := newMachine(t)
	progress := unlockedProgress("chatter", 100)

	result, err := m.ApplyExperience(progress, 40)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if result.LeveledUp {
		t.Error("40 of 100 should not level up")
	}
	if progress.Experience != 40 {
		t.Errorf("experience = %d, want 40", progress.Experience)
	}
	if progress.UsageCount != 1 {
		t.Errorf("usage count = %d, want 1", progress.UsageCount)
	}
	if progress.LastUsed.IsZero() {
		t.Error("expected LastUsed to be stamped")
	}
	// Recomputed even without a level change.
	if progress.MasteryProgress != 0.1 {
		t.Errorf("mastery progress = %v, want 0.1", progress.MasteryProgress)
	}
}

func TestApplyExperienceMultiLevelRollover(t *testing.T) {
	m := newMachine(t)
	progress := unlockedProgress("chatter", 100)

	// 100 + 150 + 225 = 475 carries through three levels exactly.
	result, err := m.ApplyExperience(progress, 475)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if progress.Level != 4 {
		t.Errorf("level = %d, want 4", progress.Level)
	}
	if progress.Experience != 0 {
		t.Errorf("leftover experience = %d, want 0", progress.Experience)
	}
	if progress.ExperienceRequired != 338 {
		t.Errorf("next requirement = %d, want 338", progress.ExperienceRequired)
	}
	if result.Level != 4 {
		t.Errorf("result level = %d, want 4", result.Level)
	}
}

func TestApplyExperienceNegativeAmount(t *testing.T) {
	m := newMachine(t)
	progress := unlockedProgress("chatter", 100)
	progress.Experience = 30

	result, err := m.ApplyExperience(progress, -50)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if progress.Experience != 30 {
		t.Errorf("experience = %d, want unchanged 30", progress.Experience)
	}
	if result.ExperienceGained != 0 {
		t.Errorf("gained = %d, want 0", result.ExperienceGained)
	}
	// The interaction still happened.
	if progress.UsageCount != 1 {
		t.Errorf("usage count = %d, want 1", progress.UsageCount)
	}
}

func TestApplyExperienceMastery(t *testing.T) {
	m := newMachine(t)
	progress := unlockedProgress("sprint", 100)

	result, err := m.ApplyExperience(progress, 100)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if !result.MasteryAchieved {
		t.Fatal("reaching max level should achieve mastery")
	}
	if progress.Status != pet.StatusMastered {
		t.Errorf("status = %s, want mastered", progress.Status)
	}
	if progress.Level != 2 {
		t.Errorf("level = %d, want max level 2", progress.Level)
	}
	if progress.MasteryProgress != 1.0 {
		t.Errorf("mastery progress = %v, want 1", progress.MasteryProgress)
	}

	if len(result.BonusEffects) != 2 {
		t.Fatalf("bonus effects = %d, want 2", len(result.BonusEffects))
	}
	boost := result.BonusEffects[0]
	if boost.Target != catalog.EffectTargetAllStats || boost.Modifier != 5 {
		t.Errorf("first bonus = %+v, want +5 all stats", boost)
	}
	if boost.Duration != catalog.PermanentDuration {
		t.Errorf("all-stats boost duration = %d, want permanent", boost.Duration)
	}
	scaled := result.BonusEffects[1]
	if scaled.Target != "energy" || scaled.Modifier != 3 {
		t.Errorf("scaled effect = %+v, want energy modifier 3 (2 x 1.5)", scaled)
	}
}

func TestApplyExperienceExcessRetainedAtCap(t *testing.T) {
	m := newMachine(t)
	progress := unlockedProgress("sprint", 100)

	// Way past the level 2 cap: 100 levels up, 900 is retained.
	_, err := m.ApplyExperience(progress, 1000)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if progress.Level != 2 {
		t.Errorf("level = %d, want capped at 2", progress.Level)
	}
	if progress.Experience != 900 {
		t.Errorf("retained experience = %d, want 900", progress.Experience)
	}

	// Further grants accumulate without another mastery transition.
	result, err := m.ApplyExperience(progress, 50)
	if err != nil {
		t.Fatalf("apply at cap: %v", err)
	}
	if result.MasteryAchieved || result.LeveledUp {
		t.Errorf("grant at cap reported %+v, want no transitions", result)
	}
	if progress.Experience != 950 {
		t.Errorf("experience = %d, want 950", progress.Experience)
	}
}

func TestApplyExperienceUnknownSkill(t *testing.T) {
	m := newMachine(t)
	progress := unlockedProgress("nonexistent", 100)
	_, err := m.ApplyExperience(progress, 10)
	if !errors.Is(err, catalog.ErrSkillNotFound) {
		t.Errorf("err = %v, want ErrSkillNotFound", err)
	}
}
