package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studywiz/studywiz/internal/app"
	"github.com/studywiz/studywiz/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login [name] [email]",
	Short: "Log in or register a (name, email) identity",
	Long: `Log in with a name and email. The first login binds the email to the
name permanently; later logins must use the same name (case does not matter).

Examples:
  studywiz login "Ada" ada@example.com
  studywiz login            # interactive form`,
	Args: cobra.RangeArgs(0, 2),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		var name, email string
		if len(args) == 2 {
			name, email = args[0], args[1]
		} else {
			var ok bool
			var err error
			name, email, ok, err = tui.RunLoginForm()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !ok {
				fmt.Println("Login cancelled.")
				return
			}
		}

		id, err := a.Manager.Login(name, email)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Logged in as %s <%s>\n", id.Name, id.Email)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out (your saved data stays on this device)",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		if _, ok := a.Manager.User(); !ok {
			fmt.Println("Not logged in.")
			return
		}
		if err := a.Manager.Logout(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("👋 Logged out. Your studies are kept for next login.")
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		id, ok := a.Manager.User()
		if !ok {
			fmt.Println("Not logged in.")
			return
		}
		fmt.Printf("%s <%s>\n", id.Name, id.Email)
	}),
}
