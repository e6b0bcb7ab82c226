package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/conditions"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by type or rarity)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		skillType, _ := cmd.Flags().GetString("type")
		rarity, _ := cmd.Flags().GetString("rarity")

		var skills []catalog.SkillDefinition
		switch {
		case skillType != "" && rarity != "":
			return fmt.Errorf("use --type or --rarity, not both")
		case skillType != "":
			skills = cat.ByType(catalog.SkillType(skillType))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for type %q", skillType)
			}
		case rarity != "":
			skills = cat.ByRarity(catalog.Rarity(rarity))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for rarity %q", rarity)
			}
		default:
			skills = cat.All()
		}

		fmt.Printf("%-24s  %-28s  %-14s  %-10s  %s\n",
			"ID", "Name", "Type", "Rarity", "Max Lv")
		fmt.Println(strings.Repeat("─", 90))

		for _, s := range skills {
			name := s.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}
			fmt.Printf("%-24s  %-28s  %-14s  %-10s  %6d\n",
				s.ID, name, catalog.TypeDisplayName(s.Type),
				s.Rarity.DisplayName(), s.MaxLevel)
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill's details and the pet's progress toward it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		skill, err := cat.Get(args[0])
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

		fmt.Printf("%s %s  [%s %s]\n", skill.Icon, skill.Name,
			skill.Rarity.DisplayName(), catalog.TypeDisplayName(skill.Type))
		if skill.Description != "" {
			fmt.Println(skill.Description)
		}
		fmt.Printf("Max level %d, experience multiplier %.2fx\n", skill.MaxLevel, skill.ExperienceMultiplier)

		if p, ok := snap.Skills[skill.ID]; ok && p.Active() {
			fmt.Printf("\nStatus: %s %s\n", p.Status.Icon(), p.Status.Label())
			fmt.Printf("Level %d/%d, %d/%d XP, used %d times\n",
				p.Level, skill.MaxLevel, p.Experience, p.ExperienceRequired, p.UsageCount)
			return nil
		}

		eval := conditions.NewEvaluator(cat)
		report, err := eval.EvaluateAll(skill.ID, snap)
		if err != nil {
			return err
		}
		if report.CanUnlock {
			fmt.Println("\nStatus: 🔓 Available, all conditions met")
			return nil
		}

		fmt.Printf("\nStatus: 🔒 Locked (%.0f%% there)\n", report.OverallProgress*100)
		for _, desc := range report.Failed {
			fmt.Println("  •", desc)
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("type", "", "Filter by skill type (e.g. communication)")
	skillListCmd.Flags().String("rarity", "", "Filter by rarity (common, uncommon, rare, epic, legendary)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
