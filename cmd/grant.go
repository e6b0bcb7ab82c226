package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lidra0530/petskills/internal/experience"
	"github.com/lidra0530/petskills/internal/leveling"
	"github.com/lidra0530/petskills/internal/store"
)

var grantCmd = &cobra.Command{
	Use:   "grant <skill-id>",
	Short: "Record an interaction and grant the resulting experience to a skill",
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

		progress, ok := snap.Skills[skillID]
		if !ok || !progress.Active() {
			return fmt.Errorf("skill %q is not unlocked; run: petskills unlock %s", skillID, skillID)
		}

		interaction, _ := cmd.Flags().GetString("interaction")
		intensity, _ := cmd.Flags().GetInt("intensity")
		duration, _ := cmd.Flags().GetInt("duration")

		events := st.EventRepo()

		factors := &experience.ContextFactors{}
		factors.ConsecutiveUses, _ = cmd.Flags().GetInt("streak")
		factors.PerfectPerformance, _ = cmd.Flags().GetBool("perfect")
		factors.GroupActivity, _ = cmd.Flags().GetBool("group")

		// The event log, not the snapshot, decides whether this is the
		// skill's first grant; snapshots can lag behind appended events.
		priorGrants, err := events.SkillUsageCount(ctx, skillID)
		if err != nil {
			return err
		}
		factors.FirstTime = priorGrants == 0

		calc := experience.NewCalculator(cat, experience.DefaultConfig())
		gained, err := calc.Gain(skillID, interaction, intensity, duration, factors)
		if err != nil {
			return err
		}

		machine := leveling.NewMachine(cat, leveling.DefaultCurve())
		result, err := machine.ApplyExperience(progress, gained)
		if err != nil {
			return err
		}

		sessionID := uuid.NewString()
		if err := events.AppendInteraction(ctx, store.InteractionEventData{
			InteractionType: interaction,
			Intensity:       intensity,
			DurationMins:    duration,
			SessionID:       sessionID,
		}); err != nil {
			return err
		}
		if err := events.AppendExperience(ctx, store.ExperienceEventData{
			SkillID:         skillID,
			Amount:          gained,
			Level:           progress.Level,
			LeveledUp:       result.LeveledUp,
			InteractionType: interaction,
			SessionID:       sessionID,
		}); err != nil {
			return err
		}

		fmt.Printf("+%d XP to %s (level %d, %d/%d XP)\n",
			gained, skillID, progress.Level, progress.Experience, progress.ExperienceRequired)
		if result.LeveledUp && !result.MasteryAchieved {
			fmt.Printf("Level up! %s is now level %d.\n", skillID, progress.Level)
		}

		if result.MasteryAchieved {
			if err := events.AppendMastery(ctx, store.MasteryEventData{
				SkillID:   skillID,
				Level:     progress.Level,
				SessionID: sessionID,
			}); err != nil {
				return err
			}
			snap.ApplyEffects(result.BonusEffects)
			fmt.Printf("✅ %s mastered! Bonus effects applied:\n", skillID)
			for _, e := range result.BonusEffects {
				fmt.Printf("  %s %s %+g\n", e.Type, e.Target, e.Modifier)
			}
		}

		return savePet(ctx, st, snap)
	},
}

func init() {
	grantCmd.Flags().String("interaction", "chat", "Interaction type (chat, play, teach, explore, ...)")
	grantCmd.Flags().Int("intensity", 5, "Interaction intensity, 1-10")
	grantCmd.Flags().Int("duration", 10, "Interaction duration in minutes")
	grantCmd.Flags().Int("streak", 0, "Consecutive uses of this skill")
	grantCmd.Flags().Bool("perfect", false, "Flag a flawless interaction")
	grantCmd.Flags().Bool("group", false, "Flag a group activity")
}
