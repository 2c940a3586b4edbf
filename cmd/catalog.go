package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/catalog"
	"github.com/verdant/gdn/internal/output"
)

var plantsCmd = &cobra.Command{
	Use:     "plants [query]",
	Short:   "Browse the plant catalog",
	GroupID: "reference",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		category, _ := cmd.Flags().GetString("category")

		matches := catalog.SearchPlants(query, catalog.PlantCategory(strings.ToLower(category)))
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(matches)
		}

		if len(matches) == 0 {
			output.Info("No catalog plants match")
			return nil
		}

		for _, p := range matches {
			output.Info("%2d  %s %s", p.ID, p.Emoji, p.Name)
			output.Subtle("     %s · %s · %s sun · water every %dd", p.ScientificName, p.Category, p.Sun, p.WaterEvery)
		}
		return nil
	},
}

var pestsCmd = &cobra.Command{
	Use:     "pests [id]",
	Short:   "Browse the pest and disease guide",
	GroupID: "reference",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error("invalid pest id: %s", args[0])
				return err
			}
			pest, ok := catalog.PestByID(id)
			if !ok {
				output.Error("no catalog pest with id %d", id)
				return fmt.Errorf("unknown pest: %d", id)
			}
			rendered, err := output.RenderMarkdown(pest.Markdown())
			if err != nil {
				return err
			}
			fmt.Println(rendered)
			return nil
		}

		for _, p := range catalog.Pests() {
			output.Info("%d  %s %s  %s", p.ID, p.Emoji, p.Name, output.FormatSeverity(p.Severity))
			output.Subtle("   %s", p.Description)
		}
		return nil
	},
}

var tipsCmd = &cobra.Command{
	Use:     "tips [id]",
	Short:   "Browse gardening tips",
	GroupID: "reference",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error("invalid tip id: %s", args[0])
				return err
			}
			tip, ok := catalog.TipByID(id)
			if !ok {
				output.Error("no tip with id %d", id)
				return fmt.Errorf("unknown tip: %d", id)
			}
			rendered, err := output.RenderMarkdown(tip.Markdown())
			if err != nil {
				return err
			}
			fmt.Println(rendered)
			return nil
		}

		category, _ := cmd.Flags().GetString("category")
		for _, t := range catalog.TipsByCategory(catalog.TipCategory(strings.ToLower(category))) {
			output.Info("%2d  %s %s", t.ID, t.Emoji, t.Title)
			output.Subtle("     %s · %s", t.Category, t.Season)
		}
		return nil
	},
}

func init() {
	plantsCmd.Flags().String("category", "", "filter: vegetable, herb, flower, fruit, houseplant")
	plantsCmd.Flags().Bool("json", false, "output as JSON")

	tipsCmd.Flags().String("category", "", "filter: beginner, intermediate, advanced, seasonal")

	rootCmd.AddCommand(plantsCmd, pestsCmd, tipsCmd)
}
