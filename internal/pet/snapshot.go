package pet

import "time"

// InteractionEvent is one entry in the pet's interaction history.
type InteractionEvent struct {
	ID           string
	Type         string
	Intensity    int
	DurationMins int
	Timestamp    time.Time
}

// Snapshot is a read-only view of a pet's current attributes, assembled by
// the caller for condition evaluation. The engine never mutates a Snapshot.
type Snapshot struct {
	Level        int
	Skills       map[string]*SkillProgress
	Stats        map[string]float64
	Personality  map[string]float64
	History      []InteractionEvent
	Achievements map[string]bool
	CreatedAt    time.Time
}

// NewSnapshot returns a fresh pet snapshot with default attributes.
func NewSnapshot(createdAt time.Time) *Snapshot {
	return &Snapshot{
		Level: 1,
		Skills: make(map[string]*SkillProgress),
		Stats: map[string]float64{
			"happiness":    50,
			"energy":       50,
			"curiosity":    50,
			"affection":    30,
			"intelligence": 30,
		},
		Personality: map[string]float64{
			"openness":          0.5,
			"conscientiousness": 0.5,
			"extraversion":      0.5,
			"agreeableness":     0.5,
			"neuroticism":       0.5,
		},
		Achievements: make(map[string]bool),
		CreatedAt:    createdAt,
	}
}

// Stat returns the named stat value; a missing stat reads as 0.
func (s *Snapshot) Stat(name string) float64 {
	return s.Stats[name]
}

// Trait returns the named personality trait; a missing trait reads as 0.
func (s *Snapshot) Trait(name string) float64 {
	return s.Personality[name]
}

// HasAchievement reports whether the pet has earned the given achievement.
func (s *Snapshot) HasAchievement(id string) bool {
	return s.Achievements[id]
}

// InteractionCount returns the number of history entries matching the given
// interaction type; an empty type counts all interactions.
func (s *Snapshot) InteractionCount(interactionType string) int {
	if interactionType == "" {
		return len(s.History)
	}
	count := 0
	for _, ev := range s.History {
		if ev.Type == interactionType {
			count++
		}
	}
	return count
}

// AgeDays returns the number of whole days elapsed since the pet was created,
// computed as floor division of elapsed milliseconds by a day.
func (s *Snapshot) AgeDays(now time.Time) int {
	elapsedMs := now.Sub(s.CreatedAt).Milliseconds()
	if elapsedMs < 0 {
		return 0
	}
	const dayMs = 24 * 60 * 60 * 1000
	return int(elapsedMs / dayMs)
}

// Clone returns a copy of the snapshot with an independent skills map.
// Progress records are shared; callers that need to add or replace a record
// without touching the original snapshot clone first.
func (s *Snapshot) Clone() *Snapshot {
	dup := *s
	dup.Skills = make(map[string]*SkillProgress, len(s.Skills)+1)
	for id, p := range s.Skills {
		dup.Skills[id] = p
	}
	return &dup
}
