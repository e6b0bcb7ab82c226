package experience

import (
	"errors"
	"testing"

	"github.com/lidra0530/petskills/internal/catalog"
)

func calcCatalog(t *testing.T) *catalog.Catalog {
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
			ID: "faint", Name: "Faint", Type: catalog.TypeEmotional,
			Rarity: catalog.RarityCommon, MaxLevel: 5, ExperienceMultiplier: 0.05,
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func TestGainDeterministic(t *testing.T) {
	calc := NewCalculator(calcCatalog(t), DefaultConfig())

	// chat base 10, relevant to communication (1.5), intensity 5
	// (0.5 + 4*(1.5/9)), 30 minutes (1.25), common (1.0):
	// 10 * 1.5 * 1.1666.. * 1.25 = 21.875, rounds to 22.
	got, err := calc.Gain("chatter", "chat", 5, 30, nil)
	if err != nil {
		t.Fatalf("gain: %v", err)
	}
	if got != 22 {
		t.Errorf("gain = %d, want 22", got)
	}

	again, _ := calc.Gain("chatter", "chat", 5, 30, nil)
	if again != got {
		t.Errorf("repeated gain = %d, want %d", again, got)
	}
}

func TestGainUnknownSkill(t *testing.T) {
	calc := NewCalculator(calcCatalog(t), DefaultConfig())
	_, err := calc.Gain("nonexistent", "chat", 5, 10, nil)
	if !errors.Is(err, catalog.ErrSkillNotFound) {
		t.Errorf("err = %v, want ErrSkillNotFound", err)
	}
}

func TestGainFloorsAtOne(t *testing.T) {
	calc := NewCalculator(calcCatalog(t), DefaultConfig())

	// 10 * 1.0 * 0.5 * 1.0 * 1.0 * 0.05 = 0.25, would round to 0.
	got, err := calc.Gain("faint", "play", 1, 0, nil)
	if err != nil {
		t.Fatalf("gain: %v", err)
	}
	if got != 1 {
		t.Errorf("gain = %d, want floor of 1", got)
	}
}

func TestGainClampsIntensity(t *testing.T) {
	calc := NewCalculator(calcCatalog(t), DefaultConfig())

	low, _ := calc.Gain("chatter", "chat", -3, 10, nil)
	min, _ := calc.Gain("chatter", "chat", 1, 10, nil)
	if low != min {
		t.Errorf("intensity -3 gain %d != intensity 1 gain %d", low, min)
	}

	high, _ := calc.Gain("chatter", "chat", 99, 10, nil)
	max, _ := calc.Gain("chatter", "chat", 10, 10, nil)
	if high != max {
		t.Errorf("intensity 99 gain %d != intensity 10 gain %d", high, max)
	}
	if max <= min {
		t.Errorf("intensity 10 gain %d should exceed intensity 1 gain %d", max, min)
	}
}

func TestGainDurationSaturates(t *testing.T) {
	calc := NewCalculator(calcCatalog(t), DefaultConfig())

	twoHours, _ := calc.Gain("chatter", "chat", 5, 120, nil)
	allDay, _ := calc.Gain("chatter", "chat", 5, 1440, nil)
	if twoHours != allDay {
		t.Errorf("120 min gain %d != 1440 min gain %d; bonus should saturate", twoHours, allDay)
	}

	short, _ := calc.Gain("chatter", "chat", 5, 10, nil)
	if twoHours <= short {
		t.Errorf("120 min gain %d should exceed 10 min gain %d", twoHours, short)
	}
}

func TestGainTypeRelevance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseRates["nap"] = 10 // same base rate as chat, no keyword match
	calc := NewCalculator(calcCatalog(t), cfg)

	relevant, _ := calc.Gain("chatter", "chat", 10, 0, nil)
	unrelated, _ := calc.Gain("chatter", "nap", 10, 0, nil)

	if relevant != unrelated*3/2 {
		t.Errorf("relevant gain %d, want 1.5x unrelated gain %d", relevant, unrelated)
	}
}

func TestGainKeywordMatchIsSubstring(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseRates["Morning-Chat"] = 10
	calc := NewCalculator(calcCatalog(t), cfg)

	exact, _ := calc.Gain("chatter", "chat", 10, 0, nil)
	embedded, _ := calc.Gain("chatter", "Morning-Chat", 10, 0, nil)
	if embedded != exact {
		t.Errorf("embedded keyword gain %d != exact keyword gain %d", embedded, exact)
	}
}

func TestGainRarityMultiplier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseRates["nap"] = 10
	calc := NewCalculator(calcCatalog(t), cfg)

	// Identical parameters, no keyword match for either skill.
	common, _ := calc.Gain("chatter", "nap", 10, 0, nil)
	legendary, _ := calc.Gain("dreamer", "nap", 10, 0, nil)

	if legendary != common*3 {
		t.Errorf("legendary gain %d, want 3x common gain %d", legendary, common)
	}
}

func TestContextMultiplier(t *testing.T) {
	calc := NewCalculator(calcCatalog(t), DefaultConfig())

	base, _ := calc.Gain("chatter", "chat", 5, 30, nil)
	boosted, _ := calc.Gain("chatter", "chat", 5, 30, &ContextFactors{
		ConsecutiveUses:    3,
		PerfectPerformance: true,
	})

	// 1 + 0.3 (streak) + 0.3 (perfect) = 1.6x.
	want := int(float64(base)*1.6 + 0.5)
	if boosted < base {
		t.Fatalf("boosted gain %d below base %d", boosted, base)
	}
	if diff := boosted - want; diff < -1 || diff > 1 {
		t.Errorf("boosted gain = %d, want about %d", boosted, want)
	}
}

func TestContextMultiplierCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxContextMultiplier = 1.5
	calc := NewCalculator(calcCatalog(t), cfg)

	base, _ := calc.Gain("chatter", "chat", 5, 30, nil)
	// Every bonus active: 1 + 0.5 + 0.3 + 0.2 + 0.15 = 2.15, capped at 1.5.
	capped, _ := calc.Gain("chatter", "chat", 5, 30, &ContextFactors{
		ConsecutiveUses:    20,
		PerfectPerformance: true,
		FirstTime:          true,
		GroupActivity:      true,
	})

	want := int(float64(base)*1.5 + 0.5)
	if diff := capped - want; diff < -1 || diff > 1 {
		t.Errorf("capped gain = %d, want about %d", capped, want)
	}
}

func TestStreakBonusSaturates(t *testing.T) {
	calc := NewCalculator(calcCatalog(t), DefaultConfig())

	five, _ := calc.Gain("chatter", "chat", 5, 30, &ContextFactors{ConsecutiveUses: 5})
	fifty, _ := calc.Gain("chatter", "chat", 5, 30, &ContextFactors{ConsecutiveUses: 50})
	if five != fifty {
		t.Errorf("streak 5 gain %d != streak 50 gain %d; streak bonus caps at 0.5", five, fifty)
	}
}
