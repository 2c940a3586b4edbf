package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/catalog"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/output"
)

var layoutCmd = &cobra.Command{
	Use:     "layout",
	Short:   "Plan the garden bed grid",
	GroupID: "garden",
}

var layoutShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls"},
	Short:   "Show the garden grid",
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

		placements := a.state.Layout()
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(placements)
		}

		grid := make(map[[2]int]models.LayoutPlacement, len(placements))
		for _, p := range placements {
			grid[[2]int{p.X, p.Y}] = p
		}

		for y := 0; y < models.GridSize; y++ {
			var row strings.Builder
			for x := 0; x < models.GridSize; x++ {
				if p, ok := grid[[2]int{x, y}]; ok {
					row.WriteString(p.Emoji + " ")
				} else {
					row.WriteString("·  ")
				}
			}
			output.Info("%s", row.String())
		}

		if len(placements) > 0 {
			output.Info("")
			for _, p := range placements {
				output.Subtle("%d  %s %s at (%d,%d)", p.ID, p.Emoji, p.Name, p.X, p.Y)
			}
		}
		return nil
	},
}

var layoutPlaceCmd = &cobra.Command{
	Use:     "place [catalog-id] [x] [y]",
	Aliases: []string{"add"},
	Short:   "Place a catalog plant on the grid",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogID, err := strconv.Atoi(args[0])
		if err != nil {
			output.Error("invalid catalog id: %s", args[0])
			return err
		}
		x, errX := strconv.Atoi(args[1])
		y, errY := strconv.Atoi(args[2])
		if errX != nil || errY != nil || x < 0 || x >= models.GridSize || y < 0 || y >= models.GridSize {
			output.Error("coordinates must be integers in 0..%d", models.GridSize-1)
			return fmt.Errorf("invalid coordinates: %s,%s", args[1], args[2])
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

		// Occupancy is gated here, not in the state layer
		if existing, taken := a.state.PlacementAt(x, y); taken {
			output.Error("cell (%d,%d) already holds %s (id %d)", x, y, existing.Name, existing.ID)
			return fmt.Errorf("cell occupied")
		}

		p, err := a.state.AddToLayout(models.LayoutPlacement{
			PlantID: species.ID,
			Name:    species.Name,
			Emoji:   species.Emoji,
			X:       x,
			Y:       y,
		})
		if err != nil {
			output.Error("place: %v", err)
			return err
		}

		output.Success("%s %s planted at (%d,%d)", p.Emoji, p.Name, p.X, p.Y)
		return nil
	},
}

var layoutRemoveCmd = &cobra.Command{
	Use:     "remove [id]",
	Aliases: []string{"rm"},
	Short:   "Remove a placement from the grid",
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

		if err := a.state.RemoveFromLayout(id); err != nil {
			output.Error("remove placement: %v", err)
			return err
		}
		output.Success("Removed")
		return nil
	},
}

var layoutClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the whole grid",
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

		if err := a.state.UpdateLayout(nil); err != nil {
			output.Error("clear layout: %v", err)
			return err
		}
		output.Success("Grid cleared")
		return nil
	},
}

func init() {
	layoutShowCmd.Flags().Bool("json", false, "output as JSON")

	layoutCmd.AddCommand(layoutShowCmd, layoutPlaceCmd, layoutRemoveCmd, layoutClearCmd)
	rootCmd.AddCommand(layoutCmd)
}
