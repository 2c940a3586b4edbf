package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/output"
)

var harvestCmd = &cobra.Command{
	Use:     "harvest",
	Short:   "Record harvests",
	GroupID: "track",
}

var harvestAddCmd = &cobra.Command{
	Use:     "add [plant]",
	Aliases: []string{"new"},
	Short:   "Record a harvest",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plant := args[0]
		if plant == "" {
			output.Error("plant is required")
			return fmt.Errorf("plant is required")
		}

		amount, _ := cmd.Flags().GetString("amount")
		notes, _ := cmd.Flags().GetString("notes")

		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, err := a.requireAccount(); err != nil {
			output.Error("%v", err)
			return err
		}

		h, err := a.state.AddHarvest(models.Harvest{
			Plant:  plant,
			Amount: amount,
			Notes:  notes,
		})
		if err != nil {
			output.Error("add harvest: %v", err)
			return err
		}

		output.Success("🧺 Harvest of %s recorded (id %d)", h.Plant, h.ID)
		return nil
	},
}

var harvestListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List harvests",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, err := a.requireAccount(); err != nil {
			output.Error("%v", err)
			return err
		}

		harvests := a.state.Harvests()
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(harvests)
		}

		if len(harvests) == 0 {
			output.Info("No harvests recorded yet.")
			return nil
		}

		today := models.FormatDate(time.Now())
		for _, h := range harvests {
			line := fmt.Sprintf("🧺 %s", h.Plant)
			if h.Amount != "" {
				line += " · " + h.Amount
			}
			line += " · " + output.HumanDate(h.Date, today)
			if h.Notes != "" {
				line += fmt.Sprintf(" (%s)", h.Notes)
			}
			output.Info("%s", line)
		}
		return nil
	},
}

func init() {
	harvestAddCmd.Flags().String("amount", "", "how much was harvested, free text")
	harvestAddCmd.Flags().String("notes", "", "free-form notes")
	harvestListCmd.Flags().Bool("json", false, "output as JSON")

	harvestCmd.AddCommand(harvestAddCmd, harvestListCmd)
	rootCmd.AddCommand(harvestCmd)
}
