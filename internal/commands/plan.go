package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/models"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Edit, show, save or reset the draft study plan",
}

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update fields of the draft study plan",
	Long: `Update the draft study plan field by field. Only the flags you pass
are changed.

Examples:
  studywiz plan set --time-frame "1 Week" --mode Single --priority 1
  studywiz plan set --mode Multiple --count 3 --topics "algebra, calculus"
  studywiz plan set --start 2026-09-01 --end 2026-09-07`,
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		sel := a.Manager.Selection()

		if cmd.Flags().Changed("time-frame") {
			v, _ := cmd.Flags().GetString("time-frame")
			frame, err := parseTimeFrame(v)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			sel.TimeFrame = frame
		}
		if cmd.Flags().Changed("start") {
			sel.StartDate, _ = cmd.Flags().GetString("start")
		}
		if cmd.Flags().Changed("end") {
			sel.EndDate, _ = cmd.Flags().GetString("end")
		}
		if cmd.Flags().Changed("mode") {
			v, _ := cmd.Flags().GetString("mode")
			mode, err := parseTopicMode(v)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			sel.TopicMode = mode
		}
		if cmd.Flags().Changed("count") {
			sel.TopicCount, _ = cmd.Flags().GetInt("count")
		}
		if cmd.Flags().Changed("topics") {
			sel.TopicsText, _ = cmd.Flags().GetString("topics")
		}
		if cmd.Flags().Changed("courses") {
			sel.CoursesText, _ = cmd.Flags().GetString("courses")
		}
		if cmd.Flags().Changed("priority") {
			v, _ := cmd.Flags().GetString("priority")
			priority, err := parsePriority(v)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			sel.Priority = priority
		}

		a.Manager.SetSelection(sel)
		fmt.Printf("📋 %s\n", sel.Summary())
	}),
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the draft study plan",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		sel := a.Manager.Selection()
		if sel.IsEmpty() {
			fmt.Println("No study plan configured yet. Use 'studywiz plan set'.")
			return
		}
		printField := func(label, value string) {
			if value == "" {
				value = "—"
			}
			fmt.Printf("  %-12s %s\n", label+":", value)
		}
		fmt.Printf("📋 %s\n", sel.Summary())
		printField("Time frame", sel.TimeFrame)
		printField("Start", sel.StartDate)
		printField("End", sel.EndDate)
		mode := sel.TopicMode
		if mode == models.TopicMultiple && sel.TopicCount > 0 {
			mode = fmt.Sprintf("%s (%d)", mode, sel.TopicCount)
		}
		printField("Topics mode", mode)
		printField("Topics", sel.TopicsText)
		printField("Courses", sel.CoursesText)
		printField("Priority", sel.Priority)
	}),
}

var planSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the draft plan as a study record (without a timed session)",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		saved, err := a.Manager.SaveSelection()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Plan saved: %s (id %s)\n", saved.Summary, saved.ID)
	}),
}

var planResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the draft plan",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		a.Manager.ResetSelection()
		fmt.Println("Draft plan cleared.")
	}),
}

func parseTimeFrame(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1 day", "day", "1d":
		return models.TimeFrame1Day, nil
	case "1 week", "week", "1w":
		return models.TimeFrame1Week, nil
	case "1 month", "month", "1m":
		return models.TimeFrame1Month, nil
	}
	return "", fmt.Errorf("invalid time frame %q (use: 1 day, 1 week, 1 month)", v)
}

func parseTopicMode(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "single":
		return models.TopicSingle, nil
	case "multiple":
		return models.TopicMultiple, nil
	}
	return "", fmt.Errorf("invalid topic mode %q (use: single, multiple)", v)
}

func parsePriority(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "priority 1", "p1":
		return models.Priority1, nil
	case "2", "priority 2", "p2":
		return models.Priority2, nil
	case "3", "priority 3", "p3":
		return models.Priority3, nil
	}
	return "", fmt.Errorf("invalid priority %q (use: 1, 2 or 3)", v)
}

func init() {
	planSetCmd.Flags().String("time-frame", "", "Study time frame: 1 day, 1 week, 1 month")
	planSetCmd.Flags().String("start", "", "Start date (free form, e.g. 2026-09-01)")
	planSetCmd.Flags().String("end", "", "End date")
	planSetCmd.Flags().String("mode", "", "Topic mode: single or multiple")
	planSetCmd.Flags().Int("count", 0, "Topic count (multiple mode)")
	planSetCmd.Flags().String("topics", "", "Comma-separated topics")
	planSetCmd.Flags().String("courses", "", "Comma-separated courses")
	planSetCmd.Flags().String("priority", "", "Priority level: 1, 2 or 3")

	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planSaveCmd)
	planCmd.AddCommand(planResetCmd)
}
