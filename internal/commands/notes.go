package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/models"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Keep quick study notes",
}

var notesAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Save a note",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to access your notes.")
			return
		}
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			fmt.Println("Error: note text is empty")
			return
		}
		note := models.MaterialNote{
			ID:        uuid.NewString(),
			Text:      text,
			CreatedAt: time.Now().UnixMilli(),
		}
		notes := append([]models.MaterialNote{note}, a.Store.Notes(user.Email)...)
		if err := a.Store.SaveNotes(user.Email, notes); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("📝 Note saved.")
	}),
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes, newest first",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to access your notes.")
			return
		}
		notes := a.Store.Notes(user.Email)
		if len(notes) == 0 {
			fmt.Println("No saved notes yet.")
			return
		}
		for _, n := range notes {
			fmt.Printf("%s  %s  %s\n", n.ID,
				time.UnixMilli(n.CreatedAt).Format("Jan 02, 2006 15:04"), n.Text)
		}
	}),
}

var notesRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a note",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to access your notes.")
			return
		}
		notes := a.Store.Notes(user.Email)
		kept := notes[:0]
		for _, n := range notes {
			if n.ID != args[0] {
				kept = append(kept, n)
			}
		}
		if len(kept) == len(notes) {
			fmt.Println("Note not found.")
			return
		}
		if err := a.Store.SaveNotes(user.Email, kept); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Note removed.")
	}),
}

func init() {
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesRemoveCmd)
}
