package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/models"
	"github.com/studywiz/studywiz/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start (or resume) the study timer",
	Long: `Start the study timer against the current plan. Opens the interactive
timer view; time accrues while the view is open. Resuming a paused timer
keeps its elapsed time.

Examples:
  studywiz start          # interactive timer
  studywiz start --no-ui  # mark running without the timer view`,
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		if err := a.Manager.Start(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			_, elapsed := a.Manager.Status()
			fmt.Printf("⏱️  Timer running (elapsed %s). Time accrues while the timer view is open.\n",
				formatDuration(time.Duration(elapsed)*time.Second))
			return
		}

		if err := tui.RunTimer(a.Manager); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running timer",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		a.Manager.Pause()
		status, elapsed := a.Manager.Status()
		if status != models.StatusPaused {
			fmt.Println("Timer is not running.")
			return
		}
		fmt.Printf("⏸️  Paused at %s.\n", formatDuration(time.Duration(elapsed)*time.Second))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and stage the session for saving",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		a.Manager.Stop()
		pending := a.Manager.PendingSession()
		if pending == nil {
			fmt.Println("Timer is not running.")
			return
		}
		fmt.Printf("⏹️  Session stopped after %s: %s\n",
			formatDuration(time.Duration(pending.DurationSeconds)*time.Second),
			pending.Selection.Summary())
		fmt.Println("   Keep it with 'studywiz save' or drop it with 'studywiz discard'.")
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the timer and discard any staged session",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		a.Manager.Reset()
		fmt.Println("Timer reset.")
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the timer status",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		status, elapsed := a.Manager.Status()
		fmt.Printf("Timer: %s, elapsed %s\n", status, formatDuration(time.Duration(elapsed)*time.Second))
		if pending := a.Manager.PendingSession(); pending != nil {
			fmt.Printf("Pending session: %s (%s) — save or discard it.\n",
				pending.Selection.Summary(),
				formatDuration(time.Duration(pending.DurationSeconds)*time.Second))
		}
	}),
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the staged session into your study history",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		saved, err := a.Manager.SavePendingSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Session saved: %s (%s)\n", saved.Summary,
			formatDuration(time.Duration(saved.DurationSeconds)*time.Second))
	}),
}

var discardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Discard the staged session",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		a.Manager.DiscardPendingSession()
		fmt.Println("Pending session discarded.")
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start without the interactive timer view")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
