package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/infrakeeper/internal/client/manager"
	"github.com/dmitrijs2005/infrakeeper/internal/common"
)

// subShell runs a nested prompt until handle reports done or input ends.
// Handler errors are printed and the loop continues.
func (a *App) subShell(ctx context.Context, prompt string, handle func(cmd string, args []string) (bool, error)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s> ", prompt)
		line, err := readLine(a.reader)
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		done, err := handle(parts[0], parts[1:])
		if err != nil {
			fmt.Fprintln(a.out, "error:", err)
		}
		if done {
			return nil
		}
	}
}

// notifier prints manager notifications as one-line toasts.
func (a *App) notifier() manager.Notifier {
	return manager.NotifierFunc(func(n manager.Notification) {
		icon := "✔"
		if n.Level == manager.LevelError {
			icon = "✖"
		}
		fmt.Fprintf(a.out, "%s %s: %s\n", icon, n.Title, n.Description)
	})
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected one id", common.ErrorValidation)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", common.ErrorValidation, args[0])
	}
	return id, nil
}
