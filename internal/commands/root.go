package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "studywiz",
	Short: "A study planner and session timer",
	Long: `studywiz is a command-line study planner: configure a study plan,
run a timer against it, save the session and review your history,
materials and time statistics. Everything is stored locally, per user.`,
}

// withApp wires config, logger, database and the session manager for a
// command, and closes them afterwards.
func withApp(fn func(*app.App, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := app.New()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()
		fn(a, cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studywiz %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(discardCmd)
	rootCmd.AddCommand(studiesCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
