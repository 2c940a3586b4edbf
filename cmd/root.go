package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
	dirFlag string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "gdn",
	Short: "Local garden tracking CLI",
	Long: `gdn - A single-user garden tracker for the terminal.

Track your plants, seasonal tasks, journal, harvests, and pest issues.
All data lives in a local store under your data directory; nothing ever
leaves your machine.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "data directory (default $GDN_DIR or ~/.gdn)")

	// Define command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: "account", Title: "Account Commands:"},
		&cobra.Group{ID: "garden", Title: "Garden Commands:"},
		&cobra.Group{ID: "track", Title: "Tracking Commands:"},
		&cobra.Group{ID: "reference", Title: "Reference Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)

	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

func initBaseDir() {
	if dirFlag != "" {
		baseDir = dirFlag
		return
	}
	if env := os.Getenv("GDN_DIR"); env != "" {
		baseDir = env
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = filepath.Join(home, ".gdn")
}

// getBaseDir returns the data directory for the store
func getBaseDir() string {
	return baseDir
}
