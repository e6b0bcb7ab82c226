package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledCatalogSchema caches the compiled catalog schema.
var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads a catalog file, validates it against the catalog JSON Schema,
// and builds a Catalog. Conditions with unrecognized type tags load as
// UnknownCondition rather than failing the whole catalog.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw catalog JSON into a Catalog.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	schema, err := getCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	skills := make([]SkillDefinition, 0, len(file.Skills))
	for _, sj := range file.Skills {
		skills = append(skills, sj.toDefinition())
	}
	return New(skills)
}

// getCatalogSchema returns the compiled catalog schema, compiling it once.
func getCatalogSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://skill-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// catalogFile mirrors the on-disk catalog layout.
type catalogFile struct {
	Skills []skillJSON `json:"skills"`
}

type skillJSON struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Icon                 string          `json:"icon"`
	Type                 string          `json:"type"`
	Rarity               string          `json:"rarity"`
	MaxLevel             int             `json:"max_level"`
	ExperienceMultiplier float64         `json:"experience_multiplier"`
	UnlockConditions     []conditionJSON `json:"unlock_conditions"`
	Effects              []effectJSON    `json:"effects"`
}

type effectJSON struct {
	Type     string  `json:"type"`
	Target   string  `json:"target"`
	Modifier float64 `json:"modifier"`
	Duration *int    `json:"duration"`
}

type conditionJSON struct {
	Type string `json:"type"`

	Level           int     `json:"level"`
	SkillID         string  `json:"skill_id"`
	Count           int     `json:"count"`
	InteractionType string  `json:"interaction_type"`
	Stat            string  `json:"stat"`
	Trait           string  `json:"trait"`
	Value           float64 `json:"value"`
	Days            int     `json:"days"`
	AchievementID   string  `json:"achievement_id"`

	Mode       string          `json:"mode"`
	Conditions []conditionJSON `json:"conditions"`
}

func (sj skillJSON) toDefinition() SkillDefinition {
	def := SkillDefinition{
		ID:                   sj.ID,
		Name:                 sj.Name,
		Description:          sj.Description,
		Icon:                 sj.Icon,
		Type:                 SkillType(sj.Type),
		Rarity:               Rarity(sj.Rarity),
		MaxLevel:             sj.MaxLevel,
		ExperienceMultiplier: sj.ExperienceMultiplier,
	}
	for _, cj := range sj.UnlockConditions {
		def.UnlockConditions = append(def.UnlockConditions, cj.toCondition())
	}
	for _, ej := range sj.Effects {
		duration := PermanentDuration
		if ej.Duration != nil {
			duration = *ej.Duration
		}
		def.Effects = append(def.Effects, SkillEffect{
			Type:     ej.Type,
			Target:   ej.Target,
			Modifier: ej.Modifier,
			Duration: duration,
		})
	}
	return def
}

func (cj conditionJSON) toCondition() Condition {
	switch cj.Type {
	case "level":
		return LevelCondition{Level: cj.Level}
	case "skill_prerequisite":
		level := cj.Level
		if level == 0 {
			level = 1
		}
		return SkillPrerequisiteCondition{SkillID: cj.SkillID, Level: level}
	case "interaction_count":
		return InteractionCountCondition{Count: cj.Count, InteractionType: cj.InteractionType}
	case "stat_threshold":
		return StatThresholdCondition{Stat: cj.Stat, Value: cj.Value}
	case "personality_trait":
		return PersonalityTraitCondition{Trait: cj.Trait, Value: cj.Value}
	case "time_based":
		return TimeBasedCondition{Days: cj.Days}
	case "achievement":
		return AchievementCondition{AchievementID: cj.AchievementID}
	case "combined":
		combined := CombinedCondition{Mode: CombineMode(cj.Mode)}
		for _, child := range cj.Conditions {
			combined.Children = append(combined.Children, child.toCondition())
		}
		return combined
	default:
		return UnknownCondition{Tag: cj.Type}
	}
}
