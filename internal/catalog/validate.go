package catalog

import (
	"fmt"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []SkillDefinition) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))

	// Check for duplicate IDs and per-skill bounds
	for _, s := range skills {
		if s.ID == "" {
			errs = append(errs, "skill with empty ID")
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if s.MaxLevel < 1 || s.MaxLevel > MaxLevelCap {
			errs = append(errs, fmt.Sprintf("skill %q: MaxLevel must be in [1, %d], got %d", s.ID, MaxLevelCap, s.MaxLevel))
		}
		if s.ExperienceMultiplier <= 0 {
			errs = append(errs, fmt.Sprintf("skill %q: ExperienceMultiplier must be > 0, got %g", s.ID, s.ExperienceMultiplier))
		}
		if s.Rarity.Rank() < 0 {
			errs = append(errs, fmt.Sprintf("skill %q: unknown rarity %q", s.ID, s.Rarity))
		}
	}

	// Check for dangling prerequisite references
	prereqs := make(map[string][]string, len(skills))
	for _, s := range skills {
		for _, cond := range s.UnlockConditions {
			for _, prereqID := range PrerequisiteIDs(cond) {
				prereqs[s.ID] = append(prereqs[s.ID], prereqID)
				if !idSet[prereqID] {
					errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
				}
			}
		}
	}

	// Check for prerequisite cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = len(prereqs[s.ID])
		for _, prereqID := range prereqs[s.ID] {
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check condition fields that would make evaluation degenerate
	for _, s := range skills {
		for _, cond := range s.UnlockConditions {
			walkCondition(cond, func(c Condition) {
				switch v := c.(type) {
				case LevelCondition:
					if v.Level < 1 {
						errs = append(errs, fmt.Sprintf("skill %q: level condition must require >= 1, got %d", s.ID, v.Level))
					}
				case SkillPrerequisiteCondition:
					if v.Level < 1 {
						errs = append(errs, fmt.Sprintf("skill %q: prerequisite %q level must be >= 1, got %d", s.ID, v.SkillID, v.Level))
					}
				case InteractionCountCondition:
					if v.Count < 1 {
						errs = append(errs, fmt.Sprintf("skill %q: interaction count must be >= 1, got %d", s.ID, v.Count))
					}
				case TimeBasedCondition:
					if v.Days < 1 {
						errs = append(errs, fmt.Sprintf("skill %q: time condition must require >= 1 day, got %d", s.ID, v.Days))
					}
				case CombinedCondition:
					if v.Mode != CombineAll && v.Mode != CombineAny {
						errs = append(errs, fmt.Sprintf("skill %q: unknown combine mode %q", s.ID, v.Mode))
					}
				}
			})
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
