package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your study time overview",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to see your statistics.")
			return
		}

		report, err := a.Stats.Report(user.Email, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentBright)).Bold(true)
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentMain))

		fmt.Println(titleStyle.Render("Study time overview"))
		fmt.Printf("  This week: %s\n", formatMinutes(report.WeekSeconds))
		fmt.Printf("  All time:  %s\n\n", formatMinutes(report.AllTimeSeconds))

		const barWidth = 30
		for _, f := range report.Frames {
			filled := f.Percent * barWidth / 100
			bar := barStyle.Render(strings.Repeat("█", filled)) +
				strings.Repeat("░", barWidth-filled)
			fmt.Printf("  %-14s %s %s\n", f.Label, bar, formatMinutes(f.Seconds))
		}
	}),
}

func formatMinutes(totalSeconds int) string {
	minutes := totalSeconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
