package commands

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/models"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Annotate completed studies with due dates",
}

var dueDateFormat = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

var dueSetCmd = &cobra.Command{
	Use:   "set [study-id]",
	Short: "Set a due date on a completed study",
	Long: `Set or update the due date annotation of a completed study.

Example:
  studywiz due set 1a2b3c --date 15/12/2026 --note "final exam"`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to manage due dates.")
			return
		}

		studyID := args[0]
		found := false
		for _, s := range a.Manager.Studies() {
			if s.ID == studyID {
				found = true
				break
			}
		}
		if !found {
			fmt.Printf("Error: %v\n", models.ErrStudyNotFound)
			return
		}

		date, _ := cmd.Flags().GetString("date")
		if date != "" && !dueDateFormat.MatchString(date) {
			fmt.Println("Error: invalid date format. Use dd/mm/yyyy")
			return
		}
		note, _ := cmd.Flags().GetString("note")

		rows := a.Store.DueRows(user.Email)
		updated := false
		for i := range rows {
			if rows[i].StudyID == studyID {
				if cmd.Flags().Changed("date") {
					rows[i].Date = date
				}
				if cmd.Flags().Changed("note") {
					rows[i].Note = note
				}
				rows[i].UpdatedAt = time.Now().UnixMilli()
				updated = true
				break
			}
		}
		if !updated {
			rows = append([]models.DueDateRow{{
				StudyID:   studyID,
				Date:      date,
				Note:      note,
				UpdatedAt: time.Now().UnixMilli(),
			}}, rows...)
		}

		if err := a.Store.SaveDueRows(user.Email, rows); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("📅 Due date saved.")
	}),
}

var dueClearCmd = &cobra.Command{
	Use:   "clear [study-id]",
	Short: "Clear the due date annotation of a study",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to manage due dates.")
			return
		}
		rows := a.Store.DueRows(user.Email)
		kept := rows[:0]
		for _, r := range rows {
			if r.StudyID != args[0] {
				kept = append(kept, r)
			}
		}
		if err := a.Store.SaveDueRows(user.Email, kept); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Due date cleared.")
	}),
}

var dueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List due dates for your completed studies",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to manage due dates.")
			return
		}

		rowsByStudy := map[string]models.DueDateRow{}
		for _, r := range a.Store.DueRows(user.Email) {
			rowsByStudy[r.StudyID] = r
		}

		shown := 0
		for _, s := range a.Manager.Studies() {
			if !s.Completed() {
				continue
			}
			shown++
			row, ok := rowsByStudy[s.ID]
			due := "—"
			if ok && row.Date != "" {
				due = row.Date
			}
			line := fmt.Sprintf("%s  %-40s due %s", s.ID, s.Summary, due)
			if ok && row.Note != "" {
				line += "  (" + row.Note + ")"
			}
			fmt.Println(line)
		}
		if shown == 0 {
			fmt.Println("No completed studies yet.")
		}
	}),
}

func init() {
	dueSetCmd.Flags().String("date", "", "Due date, dd/mm/yyyy")
	dueSetCmd.Flags().String("note", "", "Optional note")

	dueCmd.AddCommand(dueSetCmd)
	dueCmd.AddCommand(dueClearCmd)
	dueCmd.AddCommand(dueListCmd)
}
