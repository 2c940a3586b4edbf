package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/output"
	"github.com/verdant/gdn/internal/tui/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live TUI overview of your garden",
	Long: `Launch a live-updating TUI dashboard showing:
- Garden: your plants with health bars and watering status
- Tasks: pending and completed tasks with due dates
- Notifications: the derived feed (overdue, watering, pests, health)
- Recent activity: journal entries and harvests

Key bindings:
  Tab/Shift+Tab  Switch panels
  1/2/3/4        Jump to panel
  j/k            Scroll active panel
  /              Filter tasks
  d              Dismiss selected notification
  r              Force refresh
  ?              Toggle help
  q              Quit`,
	GroupID: "garden",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		acct, err := a.requireAccount()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		interval, _ := cmd.Flags().GetDuration("interval")
		if interval < 500*time.Millisecond {
			interval = 2 * time.Second
		}

		model := dashboard.NewModel(a.state, a.center, acct.ID, acct.GardenName, interval)

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running dashboard: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().Duration("interval", 2*time.Second, "Refresh interval (default 2s)")
}
