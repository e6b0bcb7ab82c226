package catalog

import (
	"errors"
	"strings"
	"testing"
)

func validSkill(id string) SkillDefinition {
	return SkillDefinition{
		ID:                   id,
		Name:                 id,
		Type:                 TypeCommunication,
		Rarity:               RarityCommon,
		MaxLevel:             10,
		ExperienceMultiplier: 1.0,
	}
}

func TestNewAndLookup(t *testing.T) {
	a := validSkill("a")
	b := validSkill("b")
	b.Rarity = RarityRare
	b.Type = TypeCreativity

	c, err := New([]SkillDefinition{a, b})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("get a: %v", err)
	}
	if got.ID != "a" {
		t.Errorf("got %q, want a", got.ID)
	}
	if !c.Has("b") || c.Has("z") {
		t.Error("Has gave wrong answers")
	}

	_, err = c.Get("z")
	if !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("get z err = %v, want ErrSkillNotFound", err)
	}

	if got := c.ByType(TypeCreativity); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("by type = %v, want [b]", got)
	}
	if got := c.ByRarity(RarityCommon); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("by rarity = %v, want [a]", got)
	}
}

func TestByTypeOrderedByRarityThenID(t *testing.T) {
	x := validSkill("x")
	x.Rarity = RarityLegendary
	a := validSkill("a")
	a.Rarity = RarityCommon
	m := validSkill("m")
	m.Rarity = RarityCommon

	c, err := New([]SkillDefinition{x, m, a})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got := c.ByType(TypeCommunication)
	wantOrder := []string{"a", "m", "x"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Fatalf("order = %v, want %v", got, wantOrder)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func() []SkillDefinition
		wantMsg string
	}{
		{
			"duplicate id",
			func() []SkillDefinition {
				return []SkillDefinition{validSkill("a"), validSkill("a")}
			},
			"duplicate skill ID",
		},
		{
			"empty id",
			func() []SkillDefinition {
				s := validSkill("")
				return []SkillDefinition{s}
			},
			"empty ID",
		},
		{
			"max level too high",
			func() []SkillDefinition {
				s := validSkill("a")
				s.MaxLevel = 99
				return []SkillDefinition{s}
			},
			"MaxLevel",
		},
		{
			"zero experience multiplier",
			func() []SkillDefinition {
				s := validSkill("a")
				s.ExperienceMultiplier = 0
				return []SkillDefinition{s}
			},
			"ExperienceMultiplier",
		},
		{
			"unknown rarity",
			func() []SkillDefinition {
				s := validSkill("a")
				s.Rarity = Rarity("mythic")
				return []SkillDefinition{s}
			},
			"unknown rarity",
		},
		{
			"dangling prerequisite",
			func() []SkillDefinition {
				s := validSkill("a")
				s.UnlockConditions = []Condition{
					SkillPrerequisiteCondition{SkillID: "ghost", Level: 1},
				}
				return []SkillDefinition{s}
			},
			"nonexistent prerequisite",
		},
		{
			"degenerate level condition",
			func() []SkillDefinition {
				s := validSkill("a")
				s.UnlockConditions = []Condition{LevelCondition{Level: 0}}
				return []SkillDefinition{s}
			},
			"level condition",
		},
		{
			"bad combine mode",
			func() []SkillDefinition {
				s := validSkill("a")
				s.UnlockConditions = []Condition{
					CombinedCondition{Mode: CombineMode("most")},
				}
				return []SkillDefinition{s}
			},
			"combine mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate())
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidationDetectsCycle(t *testing.T) {
	a := validSkill("a")
	a.UnlockConditions = []Condition{SkillPrerequisiteCondition{SkillID: "b", Level: 1}}
	b := validSkill("b")
	b.UnlockConditions = []Condition{SkillPrerequisiteCondition{SkillID: "c", Level: 1}}
	c := validSkill("c")
	c.UnlockConditions = []Condition{SkillPrerequisiteCondition{SkillID: "a", Level: 1}}

	_, err := New([]SkillDefinition{a, b, c})
	if err == nil {
		t.Fatal("expected cycle error")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("err = %v, want cycle mention", err)
	}
}

func TestValidationFindsNestedPrerequisites(t *testing.T) {
	a := validSkill("a")
	a.UnlockConditions = []Condition{
		CombinedCondition{
			Mode: CombineAny,
			Children: []Condition{
				LevelCondition{Level: 5},
				SkillPrerequisiteCondition{SkillID: "ghost", Level: 1},
			},
		},
	}

	_, err := New([]SkillDefinition{a})
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("err = %v, want dangling nested prerequisite", err)
	}
}

func TestValidationReportsAllProblems(t *testing.T) {
	bad := validSkill("a")
	bad.MaxLevel = 0
	bad.ExperienceMultiplier = -1

	_, err := New([]SkillDefinition{bad})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "MaxLevel") || !strings.Contains(msg, "ExperienceMultiplier") {
		t.Errorf("err = %v, want both problems reported", err)
	}
}

func TestUnknownConditionTags(t *testing.T) {
	a := validSkill("a")
	a.UnlockConditions = []Condition{
		UnknownCondition{Tag: "weather"},
		CombinedCondition{
			Mode:     CombineAll,
			Children: []Condition{UnknownCondition{Tag: "lunar_phase"}},
		},
	}
	b := validSkill("b")
	b.UnlockConditions = []Condition{UnknownCondition{Tag: "weather"}}

	c, err := New([]SkillDefinition{a, b})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got := c.UnknownConditionTags()
	want := []string{"lunar_phase", "weather"}
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tags = %v, want %v", got, want)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("built-in catalog is empty")
	}

	// Every skill type and rarity tier is represented.
	for _, st := range []SkillType{
		TypeCommunication, TypeLearning, TypeCreativity, TypeExploration,
		TypeEmotional, TypeSocial, TypePhysical, TypeCognitive,
	} {
		if len(c.ByType(st)) == 0 {
			t.Errorf("no built-in skills of type %s", st)
		}
	}
	for _, r := range []Rarity{
		RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary,
	} {
		if len(c.ByRarity(r)) == 0 {
			t.Errorf("no built-in skills of rarity %s", r)
		}
	}

	if tags := c.UnknownConditionTags(); len(tags) != 0 {
		t.Errorf("built-in catalog has unknown condition tags: %v", tags)
	}
}
