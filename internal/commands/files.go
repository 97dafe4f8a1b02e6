package commands

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage your study material library",
}

var filesAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Upload a file into your library",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to access your study library.")
			return
		}

		blob, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		name := filepath.Base(args[0])
		contentType := mime.TypeByExtension(filepath.Ext(name))

		rec, err := a.Library.Add(user.Email, name, contentType, blob)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📎 Added %s (%s) — id %s\n", rec.Name, humanize.Bytes(uint64(rec.Size)), rec.ID)
	}),
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your library files, newest first",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to access your study library.")
			return
		}
		rows, err := a.Library.List(user.Email)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(rows) == 0 {
			fmt.Println("Your library is empty.")
			return
		}
		for _, r := range rows {
			fmt.Printf("%s  %-30s %10s  %s\n",
				r.ID, r.Name, humanize.Bytes(uint64(r.Size)),
				time.UnixMilli(r.UploadedAt).Format("Jan 02, 2006 15:04"))
		}
	}),
}

var filesRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a file from your library",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		user, ok := a.Manager.User()
		if !ok {
			fmt.Println("Please login to access your study library.")
			return
		}
		removed, err := a.Library.Remove(args[0], user.Email)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !removed {
			fmt.Println("File not found.")
			return
		}
		fmt.Println("File removed.")
	}),
}

func init() {
	filesCmd.AddCommand(filesAddCmd)
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesRemoveCmd)
}
