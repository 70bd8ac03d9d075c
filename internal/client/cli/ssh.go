package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/launcher"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

const sshHelp = "Commands: use <cid>, custom [user|-] [port], saved, command, copy, copy-password, launch, back"

var errNothingToCopy = errors.New("no password to copy")

func (a *App) lookupTarget(ctx context.Context, scope models.Association) (launcher.Target, error) {
	rows, err := a.api.ListEntities(ctx, scope.Kind, "")
	if err != nil {
		return launcher.Target{}, err
	}
	for _, r := range rows {
		if r.Association == scope {
			return launcher.Target{Kind: scope.Kind, ID: scope.ID, Hostname: r.Hostname, IPAddress: r.IPAddress}, nil
		}
	}
	return launcher.Target{}, fmt.Errorf("%w: %s", common.ErrorNotFound, scope)
}

// SSH opens the connection launcher for one entity.
func (a *App) SSH(ctx context.Context, kind, id string) error {
	scope, err := models.NewAssociation(kind, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	target, err := a.lookupTarget(ctx, scope)
	if err != nil {
		return err
	}
	creds, err := a.api.ListCredentials(ctx, scope)
	if err != nil {
		return err
	}

	var opts launcher.Options
	a.renderLauncher(target, creds, opts)

	return a.subShell(ctx, "ssh "+scope.String(), func(cmd string, args []string) (bool, error) {
		switch cmd {
		case "help":
			fmt.Fprintln(a.out, sshHelp)
		case "use":
			cid, err := parseID(args)
			if err != nil {
				return false, err
			}
			i := slices.IndexFunc(creds, func(c *models.Credential) bool { return c.ID == cid })
			if i < 0 {
				return false, fmt.Errorf("%w: credential %d", common.ErrorNotFound, cid)
			}
			opts.UseCustom = false
			opts.Selected = creds[i]
			fmt.Fprintln(a.out, launcher.Command(target, opts))
		case "custom":
			if len(args) > 2 {
				fmt.Fprintln(a.out, "Usage: custom [user|-] [port]")
				return false, nil
			}
			var user string
			if len(args) > 0 && args[0] != "-" {
				user = args[0]
			}
			port := common.DefaultPort
			if len(args) == 2 {
				p, err := strconv.Atoi(args[1])
				if err != nil || p < 1 || p > 65535 {
					return false, fmt.Errorf("%w: invalid port %q", common.ErrorValidation, args[1])
				}
				port = p
			}
			pw, err := getPassword(a.out)
			if err != nil {
				return false, err
			}
			opts.UseCustom = true
			opts.CustomUsername = user
			opts.CustomPassword = string(pw)
			opts.CustomPort = port
			common.WipeByteArray(pw)
			fmt.Fprintln(a.out, launcher.Command(target, opts))
		case "saved":
			opts.UseCustom = false
			fmt.Fprintln(a.out, launcher.Command(target, opts))
		case "command":
			fmt.Fprintln(a.out, launcher.Command(target, opts))
			fmt.Fprintln(a.out, launcher.URL(target, opts))
		case "copy":
			if err := a.copyToClipboard(launcher.Command(target, opts)); err != nil {
				return false, err
			}
			fmt.Fprintln(a.out, "Command copied to clipboard")
		case "copy-password":
			pw := launcher.PasswordToCopy(opts)
			if pw == "" {
				return false, errNothingToCopy
			}
			if err := a.copyToClipboard(pw); err != nil {
				return false, err
			}
			fmt.Fprintln(a.out, "Password copied to clipboard")
		case "launch":
			if _, err := launcher.Launch(ctx, a.handoff, target, opts); err != nil {
				return false, err
			}
		case "back", "exit", "quit":
			return true, nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
			fmt.Fprintln(a.out, sshHelp)
		}
		return false, nil
	})
}

func (a *App) renderLauncher(t launcher.Target, creds []*models.Credential, o launcher.Options) {
	fmt.Fprintf(a.out, "Target: %s %d (%s)\n", t.Kind.Label(), t.ID, t.Address())
	if len(creds) == 0 {
		fmt.Fprintln(a.out, "No saved credentials; use \"custom [user|-] [port]\".")
	} else {
		tw := newTable(a.out)
		fmt.Fprintln(tw, "ID\tUSERNAME\tPORT\tNOTE")
		for _, c := range creds {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", c.ID, orDash(c.Username), c.Port, orDash(firstLine(c.Note)))
		}
		tw.Flush()
	}
	fmt.Fprintln(a.out, launcher.Command(t, o))
}
