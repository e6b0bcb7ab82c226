package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrSkillNotFound marks a lookup for a skill id absent from the catalog.
// This is a configuration/data bug, distinct from a skill whose unlock
// conditions are simply unmet.
var ErrSkillNotFound = errors.New("skill not found")

// Catalog is the immutable skill registry with precomputed indices.
// Construct one with New (or Default) and inject it into every component
// that needs it; there is no package-level singleton so tests can supply
// isolated catalogs.
type Catalog struct {
	skills   []SkillDefinition
	byID     map[string]*SkillDefinition
	byType   map[SkillType][]SkillDefinition
	byRarity map[Rarity][]SkillDefinition
}

// New builds a Catalog from a slice of skill definitions, validating the set
// and building indices. Malformed input (duplicate ids, dangling or cyclic
// prerequisites, out-of-range tuning values) is a configuration error.
func New(skills []SkillDefinition) (*Catalog, error) {
	if err := validateSkills(skills); err != nil {
		return nil, err
	}

	c := &Catalog{
		skills:   slices.Clone(skills),
		byID:     make(map[string]*SkillDefinition, len(skills)),
		byType:   make(map[SkillType][]SkillDefinition),
		byRarity: make(map[Rarity][]SkillDefinition),
	}

	for i := range c.skills {
		c.byID[c.skills[i].ID] = &c.skills[i]
	}

	// Group by type and rarity; within a group order by rarity rank then id
	// for deterministic listings.
	for i := range c.skills {
		s := c.skills[i]
		c.byType[s.Type] = append(c.byType[s.Type], s)
		c.byRarity[s.Rarity] = append(c.byRarity[s.Rarity], s)
	}
	for t, group := range c.byType {
		sorted := slices.Clone(group)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Rarity.Rank() != sorted[j].Rarity.Rank() {
				return sorted[i].Rarity.Rank() < sorted[j].Rarity.Rank()
			}
			return sorted[i].ID < sorted[j].ID
		})
		c.byType[t] = sorted
	}
	for r, group := range c.byRarity {
		sorted := slices.Clone(group)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
		c.byRarity[r] = sorted
	}

	return c, nil
}

// Get returns a skill definition by id.
func (c *Catalog) Get(id string) (SkillDefinition, error) {
	s, ok := c.byID[id]
	if !ok {
		return SkillDefinition{}, fmt.Errorf("%w: %q", ErrSkillNotFound, id)
	}
	return *s, nil
}

// Has reports whether the catalog contains the given skill id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every skill definition.
func (c *Catalog) All() []SkillDefinition {
	return slices.Clone(c.skills)
}

// ByType returns all skills of a given type, ordered by rarity then id.
func (c *Catalog) ByType(t SkillType) []SkillDefinition {
	return slices.Clone(c.byType[t])
}

// ByRarity returns all skills of a given rarity, ordered by id.
func (c *Catalog) ByRarity(r Rarity) []SkillDefinition {
	return slices.Clone(c.byRarity[r])
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.skills)
}

// UnknownConditionTags returns the distinct unrecognized condition tags found
// in the catalog, if any. Callers use this to surface load-time warnings;
// the conditions themselves simply evaluate as unmet.
func (c *Catalog) UnknownConditionTags() []string {
	seen := make(map[string]bool)
	for _, s := range c.skills {
		for _, cond := range s.UnlockConditions {
			walkCondition(cond, func(cc Condition) {
				if u, ok := cc.(UnknownCondition); ok {
					seen[u.Tag] = true
				}
			})
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
