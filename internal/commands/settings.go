package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change global preferences (they survive logout)",
	Long: `Show or change global preferences. Without flags the current values
are printed.

Examples:
  studywiz settings
  studywiz settings --theme light --lang fr
  studywiz settings --notifications --auto-pause --auto-pause-hours 2`,
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		changed := false
		err := a.Manager.UpdateSettings(func(s *models.AppSettings) {
			if cmd.Flags().Changed("theme") {
				v, _ := cmd.Flags().GetString("theme")
				if v == "dark" || v == "light" {
					s.Theme = v
					changed = true
				}
			}
			if cmd.Flags().Changed("lang") {
				v, _ := cmd.Flags().GetString("lang")
				if v == "en" || v == "fr" || v == "es" {
					s.Lang = v
					changed = true
				}
			}
			if cmd.Flags().Changed("notifications") {
				s.NotificationsEnabled, _ = cmd.Flags().GetBool("notifications")
				changed = true
			}
			if cmd.Flags().Changed("auto-pause") {
				s.AutoPauseEnabled, _ = cmd.Flags().GetBool("auto-pause")
				changed = true
			}
			if cmd.Flags().Changed("auto-pause-hours") {
				s.AutoPauseHours, _ = cmd.Flags().GetInt("auto-pause-hours")
				changed = true
			}
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		s := a.Manager.Settings()
		if changed {
			fmt.Println("Settings updated.")
		}
		fmt.Printf("  Theme:         %s\n", s.Theme)
		fmt.Printf("  Language:      %s\n", s.Lang)
		fmt.Printf("  Notifications: %v\n", s.NotificationsEnabled)
		fmt.Printf("  Auto-pause:    %v (%dh)\n", s.AutoPauseEnabled, s.AutoPauseHours)
	}),
}

func init() {
	settingsCmd.Flags().String("theme", "", "Theme: dark or light")
	settingsCmd.Flags().String("lang", "", "Language: en, fr or es")
	settingsCmd.Flags().Bool("notifications", false, "Enable notifications")
	settingsCmd.Flags().Bool("auto-pause", false, "Auto-pause long sessions")
	settingsCmd.Flags().Int("auto-pause-hours", 3, "Auto-pause threshold in hours")
}
