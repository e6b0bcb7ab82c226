package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lidra0530/petskills/internal/pet"
)

var petCmd = &cobra.Command{
	Use:   "pet",
	Short: "Adjust the pet's attributes",
}

var petSetStatCmd = &cobra.Command{
	Use:   "set-stat <name> <value>",
	Short: "Set a stat (happiness, energy, curiosity, affection, intelligence, ...)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parse value: %w", err)
		}
		return mutatePet(cmd, func(snap *pet.Snapshot) {
			snap.Stats[args[0]] = value
		})
	},
}

var petSetTraitCmd = &cobra.Command{
	Use:   "set-trait <name> <value>",
	Short: "Set a personality trait in [0, 1]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parse value: %w", err)
		}
		if value < 0 || value > 1 {
			return fmt.Errorf("trait value must be in [0, 1], got %g", value)
		}
		return mutatePet(cmd, func(snap *pet.Snapshot) {
			snap.Personality[args[0]] = value
		})
	},
}

var petAchieveCmd = &cobra.Command{
	Use:   "achieve <achievement-id>",
	Short: "Record an earned achievement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutatePet(cmd, func(snap *pet.Snapshot) {
			snap.Achievements[args[0]] = true
		})
	},
}

var petLevelCmd = &cobra.Command{
	Use:   "set-level <level>",
	Short: "Set the pet's overall level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil || level < 1 {
			return fmt.Errorf("level must be a positive integer")
		}
		return mutatePet(cmd, func(snap *pet.Snapshot) {
			snap.Level = level
		})
	},
}

// mutatePet loads the pet, applies one change, and saves a new snapshot.
func mutatePet(cmd *cobra.Command, apply func(*pet.Snapshot)) error {
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

	apply(snap)

	if err := savePet(ctx, st, snap); err != nil {
		return err
	}
	fmt.Println("Saved.")
	return nil
}

func init() {
	petCmd.AddCommand(petSetStatCmd)
	petCmd.AddCommand(petSetTraitCmd)
	petCmd.AddCommand(petAchieveCmd)
	petCmd.AddCommand(petLevelCmd)
}
