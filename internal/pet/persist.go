package pet

import (
	"fmt"
	"time"

	"github.com/lidra0530/petskills/internal/store"
)

// ToData converts a snapshot to its persisted form. The interaction
// history is intentionally not included; it lives in the event log and
// is reattached on load.
func (s *Snapshot) ToData() *store.PetStateData {
	data := &store.PetStateData{
		Level:       s.Level,
		Stats:       make(map[string]float64, len(s.Stats)),
		Personality: make(map[string]float64, len(s.Personality)),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		Skills:      make(map[string]*store.SkillProgressData, len(s.Skills)),
	}
	for k, v := range s.Stats {
		data.Stats[k] = v
	}
	for k, v := range s.Personality {
		data.Personality[k] = v
	}
	for id, earned := range s.Achievements {
		if earned {
			data.Achievements = append(data.Achievements, id)
		}
	}
	for id, p := range s.Skills {
		sp := &store.SkillProgressData{
			SkillID:            p.SkillID,
			Level:              p.Level,
			Experience:         p.Experience,
			ExperienceRequired: p.ExperienceRequired,
			Status:             string(p.Status),
			UsageCount:         p.UsageCount,
			MasteryProgress:    p.MasteryProgress,
		}
		if !p.UnlockedAt.IsZero() {
			v := p.UnlockedAt.UTC().Format(time.RFC3339)
			sp.UnlockedAt = &v
		}
		if !p.LastUsed.IsZero() {
			v := p.LastUsed.UTC().Format(time.RFC3339)
			sp.LastUsed = &v
		}
		data.Skills[id] = sp
	}
	return data
}

// FromData rebuilds a snapshot from its persisted form plus the
// interaction records read from the event log. A nil data yields a
// fresh default pet.
func FromData(data *store.PetStateData, history []store.InteractionRecord) (*Snapshot, error) {
	if data == nil {
		snap := NewSnapshot(time.Now())
		attachHistory(snap, history)
		return snap, nil
	}

	createdAt, err := time.Parse(time.RFC3339, data.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	snap := &Snapshot{
		Level:        data.Level,
		Skills:       make(map[string]*SkillProgress, len(data.Skills)),
		Stats:        make(map[string]float64, len(data.Stats)),
		Personality:  make(map[string]float64, len(data.Personality)),
		Achievements: make(map[string]bool, len(data.Achievements)),
		CreatedAt:    createdAt,
	}
	for k, v := range data.Stats {
		snap.Stats[k] = v
	}
	for k, v := range data.Personality {
		snap.Personality[k] = v
	}
	for _, id := range data.Achievements {
		snap.Achievements[id] = true
	}

	for id, sp := range data.Skills {
		p := &SkillProgress{
			SkillID:            sp.SkillID,
			Level:              sp.Level,
			Experience:         sp.Experience,
			ExperienceRequired: sp.ExperienceRequired,
			Status:             SkillStatus(sp.Status),
			UsageCount:         sp.UsageCount,
			MasteryProgress:    sp.MasteryProgress,
		}
		if sp.UnlockedAt != nil {
			t, err := time.Parse(time.RFC3339, *sp.UnlockedAt)
			if err != nil {
				return nil, fmt.Errorf("parse unlocked_at for %s: %w", id, err)
			}
			p.UnlockedAt = t
		}
		if sp.LastUsed != nil {
			t, err := time.Parse(time.RFC3339, *sp.LastUsed)
			if err != nil {
				return nil, fmt.Errorf("parse last_used for %s: %w", id, err)
			}
			p.LastUsed = t
		}
		snap.Skills[id] = p
	}

	attachHistory(snap, history)
	return snap, nil
}

func attachHistory(snap *Snapshot, history []store.InteractionRecord) {
	if len(history) == 0 {
		return
	}
	snap.History = make([]InteractionEvent, len(history))
	for i, rec := range history {
		snap.History[i] = InteractionEvent{
			ID:           fmt.Sprintf("evt-%d", rec.Sequence),
			Type:         rec.InteractionType,
			Intensity:    rec.Intensity,
			DurationMins: rec.DurationMins,
			Timestamp:    rec.Timestamp,
		}
	}
}
