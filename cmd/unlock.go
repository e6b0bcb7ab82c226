package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lidra0530/petskills/internal/conditions"
	"github.com/lidra0530/petskills/internal/leveling"
	"github.com/lidra0530/petskills/internal/store"
	"github.com/lidra0530/petskills/internal/unlock"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock <skill-id>",
	Short: "Attempt to unlock a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skillID := args[0]

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		snap, err := loadPet(ctx, st)
		if err != nil {
			return err
		}

		if p, ok := snap.Skills[skillID]; ok && p.Active() {
			fmt.Printf("%s is already %s.\n", skillID, p.Status.Label())
			return nil
		}

		eval := conditions.NewEvaluator(cat)
		orch := unlock.New(cat, eval, leveling.NewMachine(cat, leveling.DefaultCurve()))

		result, err := orch.Unlock(skillID, snap)
		if err != nil {
			return err
		}

		if !result.Unlocked {
			fmt.Printf("🔒 %s stays locked (%.0f%% there):\n", skillID, result.OverallProgress*100)
			for _, desc := range result.FailedConditions {
				fmt.Println("  •", desc)
			}
			return nil
		}

		snap.Skills[skillID] = result.Progress
		if err := st.EventRepo().AppendUnlock(ctx, store.UnlockEventData{
			SkillID:         skillID,
			OverallProgress: result.OverallProgress,
			SessionID:       uuid.NewString(),
		}); err != nil {
			return err
		}
		if err := savePet(ctx, st, snap); err != nil {
			return err
		}

		fmt.Printf("🔓 Unlocked %s! Level 1, %d XP to level 2.\n",
			skillID, result.Progress.ExperienceRequired)
		if len(result.NewlyAvailable) > 0 {
			fmt.Println("Now within reach:")
			for _, id := range result.NewlyAvailable {
				fmt.Println("  •", id)
			}
		}
		return nil
	},
}
