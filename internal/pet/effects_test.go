package pet

import (
	"testing"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
)

func TestApplyEffects(t *testing.T) {
	snap := NewSnapshot(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	base := snap.Stats["energy"]

	snap.ApplyEffects([]catalog.SkillEffect{
		{Type: catalog.EffectStatBoost, Target: catalog.EffectTargetAllStats, Modifier: 5, Duration: catalog.PermanentDuration},
		{Type: catalog.EffectStatBoost, Target: "energy", Modifier: 3, Duration: catalog.PermanentDuration},
	})

	if got := snap.Stats["energy"]; got != base+8 {
		t.Errorf("energy = %v, want %v", got, base+8)
	}
	if got := snap.Stats["happiness"]; got != 55 {
		t.Errorf("happiness = %v, want 55", got)
	}
}

func TestApplyEffectsSkipsTimedAndNonStat(t *testing.T) {
	snap := NewSnapshot(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	base := snap.Stats["energy"]

	snap.ApplyEffects([]catalog.SkillEffect{
		// Timed boosts are interpreted at interaction time, not persisted.
		{Type: catalog.EffectStatBoost, Target: "energy", Modifier: 10, Duration: 30},
		{Type: catalog.EffectConversationModifier, Target: "wit", Modifier: 2, Duration: catalog.PermanentDuration},
	})

	if got := snap.Stats["energy"]; got != base {
		t.Errorf("energy = %v, want %v unchanged", got, base)
	}
	if _, ok := snap.Stats["wit"]; ok {
		t.Error("non-stat effect types must not create stats")
	}
}

func TestApplyEffectsAnyNegativeDurationIsPermanent(t *testing.T) {
	snap := NewSnapshot(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	base := snap.Stats["curiosity"]

	snap.ApplyEffects([]catalog.SkillEffect{
		{Type: catalog.EffectStatBoost, Target: "curiosity", Modifier: 4, Duration: -7},
	})

	if got := snap.Stats["curiosity"]; got != base+4 {
		t.Errorf("curiosity = %v, want %v", got, base+4)
	}
}
