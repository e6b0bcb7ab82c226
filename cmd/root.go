package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/pet"
	"github.com/lidra0530/petskills/internal/store"
)

// keepSnapshots bounds how many pet snapshots survive a save.
const keepSnapshots = 20

var rootCmd = &cobra.Command{
	Use:   "petskills",
	Short: "Skill progression engine for virtual pets",
	Long:  "Petskills tracks a virtual pet's skills: unlock conditions, experience gain, leveling, and mastery.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMap(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PETSKILLS_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a skill catalog JSON file (default: built-in catalog)")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(petCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PETSKILLS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCatalog builds the skill catalog from --catalog, the
// PETSKILLS_CATALOG env var, or the built-in skill set. Unknown condition
// tags load fine but are surfaced as warnings; they evaluate as unmet.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = os.Getenv("PETSKILLS_CATALOG")
	}

	var cat *catalog.Catalog
	if path == "" {
		cat = catalog.Default()
	} else {
		var err error
		cat, err = catalog.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
	}

	if tags := cat.UnknownConditionTags(); len(tags) > 0 {
		slog.Warn("catalog has unrecognized condition types; affected skills cannot unlock",
			"tags", strings.Join(tags, ", "))
	}
	return cat, nil
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadPet rebuilds the pet from the latest snapshot plus the interaction
// event log. A fresh database yields a brand new pet.
func loadPet(ctx context.Context, st *store.Store) (*pet.Snapshot, error) {
	latest, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	history, err := st.EventRepo().InteractionHistory(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("load interaction history: %w", err)
	}

	var data *store.PetStateData
	if latest != nil {
		data = latest.Data.Pet
	}
	snap, err := pet.FromData(data, history)
	if err != nil {
		return nil, fmt.Errorf("rebuild pet state: %w", err)
	}
	return snap, nil
}

// savePet snapshots the pet and prunes old snapshots.
func savePet(ctx context.Context, st *store.Store, snap *pet.Snapshot) error {
	repo := st.SnapshotRepo()
	if _, err := repo.Save(ctx, store.SnapshotData{Version: 1, Pet: snap.ToData()}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := repo.Prune(ctx, keepSnapshots); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
