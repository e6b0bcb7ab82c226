package store

import (
	"context"
	"time"
)

// SkillProgressData is the persisted form of one skill's progress record.
type SkillProgressData struct {
	SkillID            string  `json:"skill_id"`
	Level              int     `json:"level"`
	Experience         int     `json:"experience"`
	ExperienceRequired int     `json:"experience_required"`
	Status             string  `json:"status"`
	UnlockedAt         *string `json:"unlocked_at,omitempty"`
	LastUsed           *string `json:"last_used,omitempty"`
	UsageCount         int     `json:"usage_count"`
	MasteryProgress    float64 `json:"mastery_progress"`
}

// PetStateData is the persisted form of the pet's attributes. The
// interaction history is not stored here; it is rebuilt from the
// interaction event log.
type PetStateData struct {
	Level        int                           `json:"level"`
	Stats        map[string]float64            `json:"stats"`
	Personality  map[string]float64            `json:"personality"`
	Achievements []string                      `json:"achievements"`
	CreatedAt    string                        `json:"created_at"`
	Skills       map[string]*SkillProgressData `json:"skills"`
}

// SnapshotData captures the full pet state at a point in time.
type SnapshotData struct {
	Version int           `json:"version"`
	Pet     *PetStateData `json:"pet,omitempty"`
}

// Snapshot represents a point-in-time capture of pet state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages pet state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot and returns it with its assigned
	// sequence number.
	Save(ctx context.Context, data SnapshotData) (*Snapshot, error)

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// InteractionEventData captures one interaction with the pet.
type InteractionEventData struct {
	InteractionType string
	Intensity       int
	DurationMins    int
	SessionID       string
}

// ExperienceEventData captures an experience grant applied to a skill.
type ExperienceEventData struct {
	SkillID         string
	Amount          int
	Level           int
	LeveledUp       bool
	InteractionType string
	SessionID       string
}

// UnlockEventData captures a successful skill unlock.
type UnlockEventData struct {
	SkillID         string
	OverallProgress float64
	SessionID       string
}

// MasteryEventData captures a skill reaching its mastered state.
type MasteryEventData struct {
	SkillID   string
	Level     int
	SessionID string
}

// InteractionRecord is one interaction read back from the event log.
type InteractionRecord struct {
	Sequence        int64
	InteractionType string
	Intensity       int
	DurationMins    int
	Timestamp       time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendInteraction records an interaction with the pet.
	AppendInteraction(ctx context.Context, data InteractionEventData) error

	// AppendExperience records an experience grant.
	AppendExperience(ctx context.Context, data ExperienceEventData) error

	// AppendUnlock records a skill unlock.
	AppendUnlock(ctx context.Context, data UnlockEventData) error

	// AppendMastery records a mastery transition.
	AppendMastery(ctx context.Context, data MasteryEventData) error

	// InteractionHistory returns all interactions in ascending sequence
	// order. A limit of 0 means unlimited.
	InteractionHistory(ctx context.Context, limit int) ([]InteractionRecord, error)

	// SkillUsageCount returns how many experience grants a skill has
	// received.
	SkillUsageCount(ctx context.Context, skillID string) (int, error)
}
