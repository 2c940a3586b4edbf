package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/catalog"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/output"
)

var plantCmd = &cobra.Command{
	Use:     "plant",
	Short:   "Manage the plants you grow",
	GroupID: "garden",
}

var plantAddCmd = &cobra.Command{
	Use:     "add [catalog-id]",
	Aliases: []string{"new"},
	Short:   "Add a plant from the catalog to your garden",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogID, err := strconv.Atoi(args[0])
		if err != nil {
			output.Error("invalid catalog id: %s (run 'gdn plants' to browse)", args[0])
			return err
		}

		species, ok := catalog.PlantByID(catalogID)
		if !ok {
			output.Error("no catalog plant with id %d (run 'gdn plants' to browse)", catalogID)
			return fmt.Errorf("unknown catalog plant: %d", catalogID)
		}

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

		nickname, _ := cmd.Flags().GetString("nickname")
		notes, _ := cmd.Flags().GetString("notes")

		plant, err := a.state.AddPlant(models.OwnedPlant{
			PlantID:  species.ID,
			Name:     species.Name,
			Nickname: nickname,
			Notes:    notes,
		})
		if err != nil {
			output.Error("add plant: %v", err)
			return err
		}

		output.Success("%s %s added to your garden (id %d)", species.Emoji, plant.DisplayName(), plant.ID)
		return nil
	},
}

var plantListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your plants",
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

		plants := a.state.Plants()
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(plants)
		}

		if len(plants) == 0 {
			output.Info("No plants yet. Add one with 'gdn plant add <catalog-id>'.")
			return nil
		}

		today := models.FormatDate(time.Now())
		for _, p := range plants {
			line := fmt.Sprintf("%d  %s %s  %s", p.ID, output.HealthBar(p.Health, 10), output.FormatHealth(p.Health), p.DisplayName())
			if p.Nickname != "" {
				line += fmt.Sprintf(" (%s)", p.Name)
			}
			if p.LastWatered != "" {
				line += "  💧 " + output.HumanDate(p.LastWatered, today)
			} else {
				line += "  💧 never"
			}
			output.Info("%s", line)
		}
		return nil
	},
}

var plantWaterCmd = &cobra.Command{
	Use:   "water [id]",
	Short: "Mark a plant as watered today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

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

		if err := a.state.WaterPlant(id); err != nil {
			output.Error("water plant: %v", err)
			return err
		}
		output.Success("💧 Watered")
		return nil
	},
}

var plantHealthCmd = &cobra.Command{
	Use:   "health [id] [value]",
	Short: "Set a plant's health (0-100)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}
		health, err := strconv.Atoi(args[1])
		if err != nil || health < 0 || health > 100 {
			output.Error("health must be an integer from 0 to 100")
			return fmt.Errorf("invalid health: %s", args[1])
		}

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

		if err := a.state.UpdatePlantHealth(id, health); err != nil {
			output.Error("update health: %v", err)
			return err
		}
		output.Success("Health set to %s", output.FormatHealth(health))
		return nil
	},
}

var plantRemoveCmd = &cobra.Command{
	Use:     "remove [id]",
	Aliases: []string{"rm"},
	Short:   "Remove a plant from your garden",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

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

		if err := a.state.RemovePlant(id); err != nil {
			output.Error("remove plant: %v", err)
			return err
		}
		output.Success("Removed")
		return nil
	},
}

// parseEntityID parses a collection entity id argument
func parseEntityID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return id, nil
}

func init() {
	plantAddCmd.Flags().String("nickname", "", "pet name shown instead of the species name")
	plantAddCmd.Flags().String("notes", "", "free-form notes")
	plantListCmd.Flags().Bool("json", false, "output as JSON")

	plantCmd.AddCommand(plantAddCmd, plantListCmd, plantWaterCmd, plantHealthCmd, plantRemoveCmd)
	rootCmd.AddCommand(plantCmd)
}
