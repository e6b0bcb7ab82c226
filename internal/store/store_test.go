package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	saved, err := repo.Save(ctx, SnapshotData{
		Version: 1,
		Pet: &PetStateData{
			Level:     3,
			Stats:     map[string]float64{"happiness": 70},
			CreatedAt: "2026-01-15T10:00:00Z",
			Skills: map[string]*SkillProgressData{
				"basic_communication": {
					SkillID:            "basic_communication",
					Level:              2,
					Experience:         40,
					ExperienceRequired: 150,
					Status:             "unlocked",
					UsageCount:         5,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Sequence <= 0 {
		t.Errorf("expected positive assigned sequence, got %d", saved.Sequence)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Sequence != saved.Sequence {
		t.Errorf("sequence = %d, want %d", snap.Sequence, saved.Sequence)
	}
	if snap.Data.Pet == nil {
		t.Fatal("expected pet state in snapshot")
	}
	if snap.Data.Pet.Level != 3 {
		t.Errorf("pet level = %d, want 3", snap.Data.Pet.Level)
	}
	sp := snap.Data.Pet.Skills["basic_communication"]
	if sp == nil {
		t.Fatal("expected basic_communication skill in snapshot")
	}
	if sp.Experience != 40 || sp.ExperienceRequired != 150 {
		t.Errorf("skill progress = %d/%d, want 40/150", sp.Experience, sp.ExperienceRequired)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for level := 1; level <= 3; level++ {
		_, err := repo.Save(ctx, SnapshotData{
			Version: 1,
			Pet:     &PetStateData{Level: level},
		})
		if err != nil {
			t.Fatalf("save level %d: %v", level, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Pet.Level != 3 {
		t.Errorf("latest pet level = %d, want 3", snap.Data.Pet.Level)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for level := 1; level <= 5; level++ {
		_, err := repo.Save(ctx, SnapshotData{
			Version: 1,
			Pet:     &PetStateData{Level: level},
		})
		if err != nil {
			t.Fatalf("save level %d: %v", level, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap.Data.Pet.Level != 5 {
		t.Errorf("latest pet level after prune = %d, want 5", snap.Data.Pet.Level)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	_, err := repo.Save(ctx, SnapshotData{Version: 1, Pet: &PetStateData{Level: 1}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Prune(ctx, 10); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshots = %d, want 1", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if n <= prev {
			t.Errorf("sequence %d not greater than previous %d", n, prev)
		}
		prev = n
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	if err := events.AppendInteraction(ctx, InteractionEventData{
		InteractionType: "play", Intensity: 5, DurationMins: 10,
	}); err != nil {
		t.Fatalf("append interaction: %v", err)
	}
	if err := events.AppendExperience(ctx, ExperienceEventData{
		SkillID: "acrobatics", Amount: 18, Level: 1, InteractionType: "play",
	}); err != nil {
		t.Fatalf("append experience: %v", err)
	}
	if err := events.AppendUnlock(ctx, UnlockEventData{
		SkillID: "acrobatics", OverallProgress: 1.0,
	}); err != nil {
		t.Fatalf("append unlock: %v", err)
	}
	if err := events.AppendMastery(ctx, MasteryEventData{
		SkillID: "acrobatics", Level: 10,
	}); err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	n, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if n != 5 {
		t.Errorf("sequence after four appends = %d, want 5", n)
	}
}

func TestInteractionHistory(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	inputs := []InteractionEventData{
		{InteractionType: "conversation", Intensity: 4, DurationMins: 5},
		{InteractionType: "play", Intensity: 8, DurationMins: 20},
		{InteractionType: "training", Intensity: 6, DurationMins: 30},
	}
	for _, in := range inputs {
		if err := events.AppendInteraction(ctx, in); err != nil {
			t.Fatalf("append %s: %v", in.InteractionType, err)
		}
	}

	records, err := events.InteractionHistory(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Ascending sequence order, matching append order.
	for i, rec := range records {
		if rec.InteractionType != inputs[i].InteractionType {
			t.Errorf("record %d type = %q, want %q", i, rec.InteractionType, inputs[i].InteractionType)
		}
		if i > 0 && rec.Sequence <= records[i-1].Sequence {
			t.Errorf("record %d sequence %d not ascending", i, rec.Sequence)
		}
	}

	limited, err := events.InteractionHistory(ctx, 2)
	if err != nil {
		t.Fatalf("limited history: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d limited records, want 2", len(limited))
	}
}

func TestSkillUsageCount(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := events.AppendExperience(ctx, ExperienceEventData{
			SkillID: "storytelling", Amount: 10, Level: 1,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := events.AppendExperience(ctx, ExperienceEventData{
		SkillID: "empathy", Amount: 12, Level: 1,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := events.SkillUsageCount(ctx, "storytelling")
	if err != nil {
		t.Fatalf("usage count: %v", err)
	}
	if count != 3 {
		t.Errorf("storytelling usage = %d, want 3", count)
	}

	count, err = events.SkillUsageCount(ctx, "empathy")
	if err != nil {
		t.Fatalf("usage count: %v", err)
	}
	if count != 1 {
		t.Errorf("empathy usage = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "interaction_events", "experience_events", "unlock_events", "mastery_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}
