package store

import (
	"context"
	"fmt"

	"github.com/lidra0530/petskills/ent"
	"github.com/lidra0530/petskills/ent/experienceevent"
	"github.com/lidra0530/petskills/ent/interactionevent"
)

// eventRepo implements EventRepo using the ent client. Every append
// draws from the shared sequence counter so events across all tables
// interleave in a single total order.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendInteraction(ctx context.Context, data InteractionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InteractionEvent.Create().
		SetSequence(seqNum).
		SetInteractionType(data.InteractionType).
		SetIntensity(data.Intensity).
		SetDurationMins(data.DurationMins).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interaction event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendExperience(ctx context.Context, data ExperienceEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExperienceEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetAmount(data.Amount).
		SetLevel(data.Level).
		SetLeveledUp(data.LeveledUp).
		SetInteractionType(data.InteractionType).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save experience event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendUnlock(ctx context.Context, data UnlockEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.UnlockEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetOverallProgress(data.OverallProgress).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save unlock event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetLevel(data.Level).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) InteractionHistory(ctx context.Context, limit int) ([]InteractionRecord, error) {
	query := r.client.InteractionEvent.Query().
		Order(ent.Asc(interactionevent.FieldSequence))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interaction history: %w", err)
	}

	records := make([]InteractionRecord, len(events))
	for i, e := range events {
		records[i] = InteractionRecord{
			Sequence:        e.Sequence,
			InteractionType: e.InteractionType,
			Intensity:       e.Intensity,
			DurationMins:    e.DurationMins,
			Timestamp:       e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) SkillUsageCount(ctx context.Context, skillID string) (int, error) {
	count, err := r.client.ExperienceEvent.Query().
		Where(experienceevent.SkillID(skillID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count experience events: %w", err)
	}
	return count, nil
}
