package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lidra0530/petskills/internal/conditions"
	"github.com/lidra0530/petskills/internal/leveling"
	"github.com/lidra0530/petskills/internal/tui"
	"github.com/lidra0530/petskills/internal/unlock"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Open the interactive skill map",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMap(cmd)
	},
}

func runMap(cmd *cobra.Command) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := loadPet(cmd.Context(), st)
	if err != nil {
		return err
	}

	eval := conditions.NewEvaluator(cat)
	orch := unlock.New(cat, eval, leveling.NewMachine(cat, leveling.DefaultCurve()))
	return tui.Run(cat, snap, orch, eval)
}
