package tui

import (
	"testing"
	"time"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/conditions"
	"github.com/lidra0530/petskills/internal/leveling"
	"github.com/lidra0530/petskills/internal/pet"
	"github.com/lidra0530/petskills/internal/unlock"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cat, err := catalog.New([]catalog.SkillDefinition{
		{
			ID: "chatter", Name: "Chatter", Type: catalog.TypeCommunication,
			Rarity: catalog.RarityCommon, MaxLevel: 10, ExperienceMultiplier: 1.0,
		},
		{
			ID: "listener", Name: "Listener", Type: catalog.TypeCommunication,
			Rarity: catalog.RarityUncommon, MaxLevel: 10, ExperienceMultiplier: 1.0,
			UnlockConditions: []catalog.Condition{
				catalog.SkillPrerequisiteCondition{SkillID: "chatter", Level: 5},
			},
		},
		{
			ID: "acrobat", Name: "Acrobat", Type: catalog.TypePhysical,
			Rarity: catalog.RarityCommon, MaxLevel: 10, ExperienceMultiplier: 1.0,
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	snap := pet.NewSnapshot(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	snap.Skills["chatter"] = &pet.SkillProgress{
		SkillID: "chatter", Level: 2, Experience: 50, ExperienceRequired: 150,
		Status: pet.StatusUnlocked,
	}

	eval := conditions.NewEvaluator(cat)
	orch := unlock.New(cat, eval, leveling.NewMachine(cat, leveling.DefaultCurve()))
	return NewModel(cat, snap, orch, eval)
}

func TestRowsGroupedByType(t *testing.T) {
	m := newTestModel(t)

	var headers []catalog.SkillType
	skillCount := 0
	for _, r := range m.rows {
		switch r.kind {
		case rowTypeHeader:
			headers = append(headers, r.skillType)
		case rowSkill:
			skillCount++
		}
	}

	if skillCount != 3 {
		t.Errorf("skill rows = %d, want 3", skillCount)
	}
	if len(headers) != 2 {
		t.Fatalf("type headers = %v, want communication and physical", headers)
	}
	if headers[0] != catalog.TypeCommunication || headers[1] != catalog.TypePhysical {
		t.Errorf("header order = %v", headers)
	}
}

func TestCursorStartsOnSkillRow(t *testing.T) {
	m := newTestModel(t)
	if m.rows[m.cursor].kind != rowSkill {
		t.Errorf("cursor on row kind %d, want skill row", m.rows[m.cursor].kind)
	}
}

func TestStatusResolution(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		skillID string
		want    pet.SkillStatus
	}{
		{"chatter", pet.StatusUnlocked},
		{"acrobat", pet.StatusAvailable}, // no conditions
		{"listener", pet.StatusLocked},   // needs chatter level 5
	}
	for _, tt := range tests {
		if got := m.status(tt.skillID); got != tt.want {
			t.Errorf("status(%s) = %s, want %s", tt.skillID, got, tt.want)
		}
	}
}

func TestProgressOf(t *testing.T) {
	m := newTestModel(t)

	if got := m.progressOf("chatter"); got != float64(50)/150 {
		t.Errorf("active skill progress = %v, want 1/3", got)
	}
	// Locked skill reports condition progress: chatter is level 2 of 5.
	if got := m.progressOf("listener"); got != 0.4 {
		t.Errorf("locked skill progress = %v, want 0.4", got)
	}
}

func TestFilterNarrowsRows(t *testing.T) {
	m := newTestModel(t)

	m.filter.SetValue("acro")
	m.applyFilter()

	skillCount := 0
	for _, r := range m.rows {
		if r.kind == rowSkill {
			skillCount++
			if r.skill.ID != "acrobat" {
				t.Errorf("unexpected skill %s in filtered rows", r.skill.ID)
			}
		}
	}
	if skillCount != 1 {
		t.Errorf("filtered skill rows = %d, want 1", skillCount)
	}

	m.filter.SetValue("")
	m.applyFilter()
	if len(m.rows) != len(m.allRows) {
		t.Error("clearing the filter should restore all rows")
	}
}
