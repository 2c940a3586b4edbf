package cmd

import (
	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/output"
)

var themeCmd = &cobra.Command{
	Use:     "theme",
	Short:   "Show or toggle the UI theme",
	Long:    `Show or toggle the light/dark theme. The theme is global, not per account.`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		output.Info("Theme: %s", a.state.Theme())
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		theme, err := a.state.ToggleTheme()
		if err != nil {
			output.Error("toggle theme: %v", err)
			return err
		}
		output.Success("Theme set to %s", theme)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}
