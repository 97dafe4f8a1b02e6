// Package notify is the optional notification collaborator.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Console prints user-visible alerts to the terminal. The lifecycle manager
// decides whether notifications are enabled; delivery itself never errors.
type Console struct {
	Out io.Writer
}

func NewConsole() *Console {
	return &Console{Out: os.Stdout}
}

func (c *Console) Notify(title, body string) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "🔔 %s: %s\n", title, body)
}
