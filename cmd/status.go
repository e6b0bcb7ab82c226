package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/conditions"
	"github.com/lidra0530/petskills/internal/leveling"
	"github.com/lidra0530/petskills/internal/pet"
	"github.com/lidra0530/petskills/internal/unlock"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pet's level, stats, and skill progress",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Printf("Pet level %d, %d interactions, together since %s\n\n",
			snap.Level, snap.InteractionCount(""), snap.CreatedAt.Format("2006-01-02"))

		fmt.Println("Stats:")
		for _, name := range sortedKeys(snap.Stats) {
			fmt.Printf("  %-14s %5.1f\n", name, snap.Stats[name])
		}
		fmt.Println("Personality:")
		for _, name := range sortedKeys(snap.Personality) {
			fmt.Printf("  %-18s %4.2f\n", name, snap.Personality[name])
		}

		if len(snap.Achievements) > 0 {
			ids := make([]string, 0, len(snap.Achievements))
			for id, earned := range snap.Achievements {
				if earned {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)
			fmt.Println("Achievements:", strings.Join(ids, ", "))
		}

		fmt.Println()
		printSkills(cat, snap)
		return nil
	},
}

// printSkills lists unlocked skills with leveling progress, then the skills
// currently within reach.
func printSkills(cat *catalog.Catalog, snap *pet.Snapshot) {
	eval := conditions.NewEvaluator(cat)
	orch := unlock.New(cat, eval, leveling.NewMachine(cat, leveling.DefaultCurve()))

	var active []*pet.SkillProgress
	for _, p := range snap.Skills {
		if p.Active() {
			active = append(active, p)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].SkillID < active[j].SkillID })

	fmt.Printf("Skills (%d of %d unlocked):\n", len(active), cat.Len())
	for _, p := range active {
		name := p.SkillID
		if skill, err := cat.Get(p.SkillID); err == nil {
			name = skill.Name
		}
		fmt.Printf("  %s %-28s Lv %2d  %d/%d XP\n",
			p.Status.Icon(), name, p.Level, p.Experience, p.ExperienceRequired)
	}

	avail := orch.AvailableSkills(snap)
	if len(avail.Unlockable) > 0 {
		fmt.Println("\nReady to unlock:")
		for _, id := range avail.Unlockable {
			name := id
			if skill, err := cat.Get(id); err == nil {
				name = skill.Name
			}
			fmt.Printf("  🔓 %s\n", name)
		}
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
