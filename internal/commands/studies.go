package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/models"
)

var studiesCmd = &cobra.Command{
	Use:   "studies",
	Short: "Browse your saved studies",
}

var studiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved studies, newest first",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		if _, ok := a.Manager.User(); !ok {
			fmt.Println("Please login to see your studies.")
			return
		}

		studies := a.Manager.Studies()
		completedOnly, _ := cmd.Flags().GetBool("completed")
		selectedID := a.Manager.SelectedStudyID()

		var shown int
		for _, s := range studies {
			if completedOnly && !s.Completed() {
				continue
			}
			shown++
			marker := " "
			if s.ID == selectedID {
				marker = "▶"
			}
			line := fmt.Sprintf("%s %s  %s", marker, s.ID, s.Summary)
			if s.Completed() {
				line += fmt.Sprintf("  [%s on %s]",
					formatDuration(time.Duration(s.DurationSeconds)*time.Second),
					time.UnixMilli(s.EndedAt).Format("Jan 02, 2006"))
			} else {
				line += "  [plan]"
			}
			fmt.Println(line)
		}
		if shown == 0 {
			fmt.Println("No saved studies yet.")
		}
	}),
}

var studiesSelectCmd = &cobra.Command{
	Use:   "select [id]",
	Short: "Mark a saved study as the selected one",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		a.Manager.SelectStudy(args[0])
		if a.Manager.SelectedStudyID() != args[0] {
			fmt.Printf("Error: %v\n", models.ErrStudyNotFound)
			return
		}
		fmt.Println("Study selected.")
	}),
}

var studiesRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a saved study",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		a.Manager.RemoveStudy(args[0])
		fmt.Println("Study removed.")
	}),
}

var studiesAgainCmd = &cobra.Command{
	Use:   "again [id]",
	Short: "Load a saved study's plan back into the draft (study again)",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("Usage: studywiz studies again <id>")
			return
		}
		if err := a.Manager.StudyAgain(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📋 %s\n", a.Manager.Selection().Summary())
		fmt.Println("Selection loaded. You can start studying now.")
	}),
}

func init() {
	studiesListCmd.Flags().Bool("completed", false, "Only show completed studies")

	studiesCmd.AddCommand(studiesListCmd)
	studiesCmd.AddCommand(studiesSelectCmd)
	studiesCmd.AddCommand(studiesRemoveCmd)
	studiesCmd.AddCommand(studiesAgainCmd)
}
