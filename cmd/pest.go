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

var pestCmd = &cobra.Command{
	Use:     "pest",
	Short:   "Track pest and disease issues",
	GroupID: "track",
}

var pestLogCmd = &cobra.Command{
	Use:     "log [catalog-pest-id] [plant]",
	Aliases: []string{"add"},
	Short:   "Log a pest issue on a plant",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pestID, err := strconv.Atoi(args[0])
		if err != nil {
			output.Error("invalid pest id: %s (run 'gdn pests' to browse)", args[0])
			return err
		}
		if _, ok := catalog.PestByID(pestID); !ok {
			output.Error("no catalog pest with id %d (run 'gdn pests' to browse)", pestID)
			return fmt.Errorf("unknown catalog pest: %d", pestID)
		}

		severityFlag, _ := cmd.Flags().GetString("severity")
		severity := models.NormalizeSeverity(severityFlag)
		if !models.IsValidSeverity(severity) {
			output.Error("invalid severity: %s (valid: low, moderate, high)", severityFlag)
			return fmt.Errorf("invalid severity: %s", severityFlag)
		}

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

		l, err := a.state.AddPestLog(models.PestLog{
			PestID:   pestID,
			Plant:    args[1],
			Severity: severity,
			Notes:    notes,
		})
		if err != nil {
			output.Error("log pest: %v", err)
			return err
		}

		output.Success("🐛 Pest issue %d logged against %s", l.ID, l.Plant)
		return nil
	},
}

var pestListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pest logs",
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

		logs := a.state.PestLogs()
		if openOnly, _ := cmd.Flags().GetBool("open"); openOnly {
			var filtered []models.PestLog
			for _, l := range logs {
				if !l.Resolved {
					filtered = append(filtered, l)
				}
			}
			logs = filtered
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(logs)
		}

		if len(logs) == 0 {
			output.Info("No pest issues. Long may it last.")
			return nil
		}

		today := models.FormatDate(time.Now())
		for _, l := range logs {
			name := fmt.Sprintf("pest %d", l.PestID)
			emoji := "🐛"
			if p, ok := catalog.PestByID(l.PestID); ok {
				name = p.Name
				emoji = p.Emoji
			}
			status := output.FormatSeverity(l.Severity)
			if l.Resolved {
				status = "resolved"
			}
			line := fmt.Sprintf("%s %d  %s on %s  %s · %s", emoji, l.ID, name, l.Plant, status, output.HumanDate(l.Date, today))
			if l.Notes != "" {
				line += fmt.Sprintf(" (%s)", l.Notes)
			}
			output.Info("%s", line)
		}
		return nil
	},
}

var pestResolveCmd = &cobra.Command{
	Use:   "resolve [id]",
	Short: "Mark a pest issue resolved",
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

		if err := a.state.ResolvePestLog(id); err != nil {
			output.Error("resolve pest log: %v", err)
			return err
		}
		output.Success("Resolved")
		return nil
	},
}

func init() {
	pestLogCmd.Flags().String("severity", string(models.SeverityModerate), "severity: low, moderate, high")
	pestLogCmd.Flags().String("notes", "", "what you observed")

	pestListCmd.Flags().Bool("open", false, "only unresolved issues")
	pestListCmd.Flags().Bool("json", false, "output as JSON")

	pestCmd.AddCommand(pestLogCmd, pestListCmd, pestResolveCmd)
	rootCmd.AddCommand(pestCmd)
}
