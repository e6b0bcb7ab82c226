package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lidra0530/petskills/ent"
	"github.com/lidra0530/petskills/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo. Snapshots share the global
// sequence with domain events, so a snapshot's sequence tells exactly
// which events it already reflects.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, data SnapshotData) (*Snapshot, error) {
	raw, err := encodeSnapshotData(data)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s, err := r.client.Snapshot.Create().
		SetSequence(seqNum).
		SetTimestamp(now).
		SetData(raw).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	return &Snapshot{ID: s.ID, Sequence: seqNum, Timestamp: now, Data: data}, nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return decodeSnapshot(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The Nth most recent snapshot marks the cutoff sequence.
	past, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query prune cutoff: %w", err)
	}
	if len(past) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(past[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func encodeSnapshotData(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("re-encode stored data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}
