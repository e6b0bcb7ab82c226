package pet

import (
	"testing"
	"time"

	"github.com/lidra0530/petskills/internal/store"
)

func TestFromDataNilYieldsDefaults(t *testing.T) {
	snap, err := FromData(nil, nil)
	if err != nil {
		t.Fatalf("from nil data: %v", err)
	}
	if snap.Level != 1 {
		t.Errorf("level = %d, want 1", snap.Level)
	}
	if snap.Stat("happiness") != 50 {
		t.Errorf("happiness = %v, want 50", snap.Stat("happiness"))
	}
	if snap.Trait("openness") != 0.5 {
		t.Errorf("openness = %v, want 0.5", snap.Trait("openness"))
	}
}

func TestToDataFromDataRoundtrip(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	unlocked := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)

	snap := NewSnapshot(created)
	snap.Level = 7
	snap.Stats["happiness"] = 82
	snap.Achievements["first_friend"] = true
	snap.Skills["empathy"] = &SkillProgress{
		SkillID:            "empathy",
		Level:              3,
		Experience:         120,
		ExperienceRequired: 405,
		Status:             StatusUnlocked,
		UnlockedAt:         unlocked,
		UsageCount:         9,
		MasteryProgress:    0.2,
	}
	// A skill unlocked before timestamps were recorded.
	snap.Skills["basic_communication"] = &SkillProgress{
		SkillID: "basic_communication",
		Level:   1,
		Status:  StatusUnlocked,
	}

	history := []store.InteractionRecord{
		{Sequence: 3, InteractionType: "conversation", Intensity: 5, DurationMins: 10},
		{Sequence: 7, InteractionType: "play", Intensity: 8, DurationMins: 25},
	}

	got, err := FromData(snap.ToData(), history)
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}

	if got.Level != 7 {
		t.Errorf("level = %d, want 7", got.Level)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, created)
	}
	if !got.HasAchievement("first_friend") {
		t.Error("expected first_friend achievement to survive")
	}

	p := got.Skills["empathy"]
	if p == nil {
		t.Fatal("empathy progress missing after roundtrip")
	}
	if p.Level != 3 || p.Experience != 120 || p.ExperienceRequired != 405 {
		t.Errorf("empathy progress = %d/%d/%d, want 3/120/405", p.Level, p.Experience, p.ExperienceRequired)
	}
	if !p.UnlockedAt.Equal(unlocked) {
		t.Errorf("unlocked at = %v, want %v", p.UnlockedAt, unlocked)
	}

	// Zero timestamps stay zero instead of becoming the epoch.
	if !got.Skills["basic_communication"].UnlockedAt.IsZero() {
		t.Error("expected zero UnlockedAt to survive roundtrip")
	}

	if got.InteractionCount("play") != 1 {
		t.Errorf("play count = %d, want 1", got.InteractionCount("play"))
	}
	if got.InteractionCount("") != 2 {
		t.Errorf("total interactions = %d, want 2", got.InteractionCount(""))
	}
}
