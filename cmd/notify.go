package cmd

import (
	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/output"
)

var notifyCmd = &cobra.Command{
	Use:     "notify",
	Aliases: []string{"notifications"},
	Short:   "Show the notification feed",
	Long: `Show the notification feed derived from your garden: overdue tasks,
plants needing water, unresolved pest issues, and plants in poor health.

The feed is recomputed from current state every time, so dismissing a
notification only lasts until its cause changes or the feed is rebuilt.`,
	GroupID: "garden",
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

		notifs := a.center.Notifications()
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(notifs)
		}

		if len(notifs) == 0 {
			output.Success("All quiet in the garden 🌿")
			return nil
		}

		for _, n := range notifs {
			output.Info("%s", output.FormatNotification(n))
		}
		return nil
	},
}

var notifyDismissCmd = &cobra.Command{
	Use:   "dismiss [id]",
	Short: "Dismiss one notification for this invocation",
	Args:  cobra.ExactArgs(1),
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

		a.center.Dismiss(args[0])
		for _, n := range a.center.Notifications() {
			output.Info("%s", output.FormatNotification(n))
		}
		output.Subtle("Dismissals are transient: the feed re-derives from state")
		return nil
	},
}

var notifyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the feed for this invocation",
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

		a.center.Clear()
		output.Success("Cleared")
		output.Subtle("The feed re-derives from state on the next recompute")
		return nil
	},
}

func init() {
	notifyCmd.Flags().Bool("json", false, "output as JSON")

	notifyCmd.AddCommand(notifyDismissCmd, notifyClearCmd)
	rootCmd.AddCommand(notifyCmd)
}
