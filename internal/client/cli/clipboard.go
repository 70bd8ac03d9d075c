package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/dmitrijs2005/infrakeeper/internal/launcher"
)

// osc52 wraps text in the escape sequence that asks the terminal to put it
// on the system clipboard.
func osc52(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
}

func (a *App) copyToClipboard(text string) error {
	_, err := io.WriteString(a.clip, osc52(text))
	return err
}

// clipboardHandoff is the default launch target: the command goes to the
// clipboard, ready to paste into a terminal.
func (a *App) clipboardHandoff(_ context.Context, t launcher.Target, command string) error {
	if err := a.copyToClipboard(command); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Connecting to %s: command copied, paste it into a terminal.\n", t.Address())
	return nil
}
