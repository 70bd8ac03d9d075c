package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Summary(ctx context.Context) error
	Search(ctx context.Context, query string) error
	List(ctx context.Context, kind models.Kind, query string) error
	Credentials(ctx context.Context, kind, id string) error
	Notes(ctx context.Context, kind, id string) error
	SSH(ctx context.Context, kind, id string) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpLoggedIn  = "Available commands: summary, search <q>, servers [q], appliances [q], apps [q], " +
		"containers [q], urls [q], creds <kind> <id>, notes <kind> <id>, ssh <kind> <id>, logout, exit"
)

// listCommands maps list-view commands to the entity kind they show.
var listCommands = map[string]models.Kind{
	"servers":    models.KindVMwareServer,
	"appliances": models.KindVirtualAppliance,
	"apps":       models.KindApplication,
	"containers": models.KindContainer,
	"urls":       models.KindURL,
}

// runREPL starts a simple read–eval–print loop for the infrakeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. The loop exits on EOF or when the user types
// "exit" or "quit". Errors returned by handlers are printed and the loop
// continues.
//
//	Not logged in:
//	  help, login, exit | quit
//
//	Logged in:
//	  summary                 dashboard totals
//	  search <q>              search every kind
//	  servers|appliances|apps|containers|urls [q]
//	  creds <kind> <id>       credentials sub-shell
//	  notes <kind> <id>       notes sub-shell
//	  ssh <kind> <id>         connection launcher
//	  logout, exit | quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ik %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if err := dispatch(ctx, a, cmd, args); err != nil {
			if errors.Is(err, errExit) {
				printlnFn("Bye!")
				return
			}
			printlnFn("error:", err)
		}
	}
}

var (
	errExit        = errors.New("exit")
	errNeedsLogin  = errors.New("please log in first")
	errUnknownVerb = errors.New("unknown command")
)

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "login":
		return a.Login(ctx)
	case "exit", "quit":
		return errExit
	}

	if kind, ok := listCommands[cmd]; ok {
		if !a.isLoggedIn() {
			return errNeedsLogin
		}
		return a.List(ctx, kind, strings.Join(args, " "))
	}

	switch cmd {
	case "summary", "search", "creds", "notes", "ssh", "logout":
	default:
		return fmt.Errorf("%w: %s", errUnknownVerb, cmd)
	}
	if !a.isLoggedIn() {
		return errNeedsLogin
	}

	switch cmd {
	case "summary":
		return a.Summary(ctx)
	case "search":
		if len(args) == 0 {
			printlnFn("Usage: search <query>")
			return nil
		}
		return a.Search(ctx, strings.Join(args, " "))
	case "logout":
		return a.Logout(ctx)
	}

	if len(args) != 2 {
		printlnFn(fmt.Sprintf("Usage: %s <kind> <id>", cmd))
		return nil
	}
	switch cmd {
	case "creds":
		return a.Credentials(ctx, args[0], args[1])
	case "notes":
		return a.Notes(ctx, args[0], args[1])
	default:
		return a.SSH(ctx, args[0], args[1])
	}
}
