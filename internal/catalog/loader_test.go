package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCatalogJSON = `{
  "skills": [
    {
      "id": "whistle",
      "name": "Whistle",
      "type": "communication",
      "rarity": "common",
      "max_level": 5,
      "experience_multiplier": 1.0
    },
    {
      "id": "harmony",
      "name": "Harmony",
      "type": "social",
      "rarity": "rare",
      "max_level": 12,
      "experience_multiplier": 1.4,
      "unlock_conditions": [
        {"type": "skill_prerequisite", "skill_id": "whistle", "level": 3},
        {
          "type": "combined",
          "mode": "any",
          "conditions": [
            {"type": "stat_threshold", "stat": "happiness", "value": 70},
            {"type": "achievement", "achievement_id": "choir"}
          ]
        }
      ],
      "effects": [
        {"type": "stat_boost", "target": "happiness", "modifier": 3, "duration": 120},
        {"type": "passive_bonus", "target": "charm", "modifier": 1}
      ]
    }
  ]
}`

func TestParseValidCatalog(t *testing.T) {
	c, err := Parse([]byte(sampleCatalogJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}

	harmony, err := c.Get("harmony")
	if err != nil {
		t.Fatalf("get harmony: %v", err)
	}
	if harmony.Rarity != RarityRare || harmony.MaxLevel != 12 {
		t.Errorf("harmony = %+v, want rare max level 12", harmony)
	}
	if len(harmony.UnlockConditions) != 2 {
		t.Fatalf("conditions = %d, want 2", len(harmony.UnlockConditions))
	}

	prereq, ok := harmony.UnlockConditions[0].(SkillPrerequisiteCondition)
	if !ok {
		t.Fatalf("first condition is %T, want SkillPrerequisiteCondition", harmony.UnlockConditions[0])
	}
	if prereq.SkillID != "whistle" || prereq.Level != 3 {
		t.Errorf("prereq = %+v, want whistle level 3", prereq)
	}

	combined, ok := harmony.UnlockConditions[1].(CombinedCondition)
	if !ok {
		t.Fatalf("second condition is %T, want CombinedCondition", harmony.UnlockConditions[1])
	}
	if combined.Mode != CombineAny || len(combined.Children) != 2 {
		t.Errorf("combined = %+v, want any-of with 2 children", combined)
	}

	if len(harmony.Effects) != 2 {
		t.Fatalf("effects = %d, want 2", len(harmony.Effects))
	}
	if harmony.Effects[0].Duration != 120 {
		t.Errorf("timed effect duration = %d, want 120", harmony.Effects[0].Duration)
	}
	// An omitted duration means permanent.
	if harmony.Effects[1].Duration != PermanentDuration {
		t.Errorf("untimed effect duration = %d, want permanent", harmony.Effects[1].Duration)
	}
}

func TestParsePrerequisiteLevelDefaultsToOne(t *testing.T) {
	raw := `{
	  "skills": [
	    {"id": "a", "name": "A", "type": "physical", "rarity": "common",
	     "max_level": 5, "experience_multiplier": 1.0},
	    {"id": "b", "name": "B", "type": "physical", "rarity": "common",
	     "max_level": 5, "experience_multiplier": 1.0,
	     "unlock_conditions": [{"type": "skill_prerequisite", "skill_id": "a"}]}
	  ]
	}`
	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, _ := c.Get("b")
	prereq := b.UnlockConditions[0].(SkillPrerequisiteCondition)
	if prereq.Level != 1 {
		t.Errorf("default prerequisite level = %d, want 1", prereq.Level)
	}
}

func TestParseUnknownConditionTag(t *testing.T) {
	raw := `{
	  "skills": [
	    {"id": "a", "name": "A", "type": "cognitive", "rarity": "epic",
	     "max_level": 10, "experience_multiplier": 2.0,
	     "unlock_conditions": [{"type": "lunar_phase", "phase": "full"}]}
	  ]
	}`
	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unknown condition tags must not fail the load: %v", err)
	}

	tags := c.UnknownConditionTags()
	if len(tags) != 1 || tags[0] != "lunar_phase" {
		t.Errorf("tags = %v, want [lunar_phase]", tags)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"skills": [`))
	if err == nil || !strings.Contains(err.Error(), "invalid catalog JSON") {
		t.Errorf("err = %v, want JSON parse failure", err)
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"skills not an array", `{"skills": {}}`},
		{"missing id", `{"skills": [{"name": "A", "type": "physical",
			"rarity": "common", "max_level": 5, "experience_multiplier": 1.0}]}`},
		{"max_level not a number", `{"skills": [{"id": "a", "name": "A",
			"type": "physical", "rarity": "common", "max_level": "five",
			"experience_multiplier": 1.0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected schema validation failure")
			}
		})
	}
}

func TestParseRejectsInvalidSkillSet(t *testing.T) {
	// Schema-valid but semantically broken: dangling prerequisite.
	raw := `{
	  "skills": [
	    {"id": "a", "name": "A", "type": "physical", "rarity": "common",
	     "max_level": 5, "experience_multiplier": 1.0,
	     "unlock_conditions": [{"type": "skill_prerequisite", "skill_id": "ghost"}]}
	  ]
	}`
	_, err := Parse([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("err = %v, want dangling prerequisite failure", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(sampleCatalogJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Has("whistle") {
		t.Error("loaded catalog missing whistle")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
