package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/infrakeeper/internal/client/manager"
	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

const credentialsHelp = "Commands: list, add, edit <id>, delete <id>, reveal <id>, back"

// Credentials opens the credentials sub-shell for one entity. Leaving the
// sub-shell cancels any in-flight call and drops an unsaved form.
func (a *App) Credentials(ctx context.Context, kind, id string) error {
	scope, err := models.NewAssociation(kind, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := manager.NewCredentialManager(a.api, a.notifier(), scope)
	defer m.Close()

	if err := m.Load(ctx); err != nil {
		return err
	}
	renderCredentials(a.out, m)

	return a.subShell(ctx, "creds "+scope.String(), func(cmd string, args []string) (bool, error) {
		switch cmd {
		case "help":
			fmt.Fprintln(a.out, credentialsHelp)
		case "list":
			if err := m.Load(ctx); err == nil {
				renderCredentials(a.out, m)
			}
		case "add":
			if err := m.Add(); err != nil {
				return false, err
			}
			return false, a.fillCredential(ctx, m)
		case "edit":
			cid, err := parseID(args)
			if err != nil {
				return false, err
			}
			if err := m.Edit(cid); err != nil {
				return false, err
			}
			return false, a.fillCredential(ctx, m)
		case "delete":
			cid, err := parseID(args)
			if err != nil {
				return false, err
			}
			if !Confirm(a.reader, fmt.Sprintf("Delete credential %d?", cid), a.out) {
				return false, nil
			}
			_ = m.Delete(ctx, cid)
			renderCredentials(a.out, m)
		case "reveal":
			cid, err := parseID(args)
			if err != nil {
				return false, err
			}
			if _, ok := m.Find(cid); !ok {
				return false, fmt.Errorf("%w: credential %d", common.ErrorNotFound, cid)
			}
			m.ToggleReveal(cid)
			renderCredentials(a.out, m)
		case "back", "exit", "quit":
			return true, nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
			fmt.Fprintln(a.out, credentialsHelp)
		}
		return false, nil
	})
}

// fillCredential prompts for the open form and saves it. After a failed
// save the form is still open and the user may correct it or give up.
func (a *App) fillCredential(ctx context.Context, m *manager.CredentialManager) error {
	for {
		d, err := a.promptCredential(m.Draft())
		if err != nil {
			_ = m.Cancel()
			return err
		}
		if err := m.SetDraft(d); err != nil {
			return err
		}
		if err := m.Save(ctx); err == nil {
			renderCredentials(a.out, m)
			return nil
		}
		if !Confirm(a.reader, "Save failed. Edit the form again?", a.out) {
			return m.Cancel()
		}
	}
}

func (a *App) promptCredential(d manager.CredentialDraft) (manager.CredentialDraft, error) {
	var err error
	if d.Username, err = GetTextWithDefault(a.reader, "Username", d.Username, a.out); err != nil {
		return d, err
	}

	if d.Password != "" {
		fmt.Fprintln(a.out, "(leave the password empty to keep the current one)")
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return d, err
	}
	if len(pw) > 0 {
		d.Password = string(pw)
	}
	common.WipeByteArray(pw)

	port, err := GetTextWithDefault(a.reader, "Port", strconv.Itoa(d.Port), a.out)
	if err != nil {
		return d, err
	}
	if d.Port, err = strconv.Atoi(port); err != nil {
		return d, fmt.Errorf("%w: invalid port %q", common.ErrorValidation, port)
	}

	if d.URL, err = GetTextWithDefault(a.reader, "URL", d.URL, a.out); err != nil {
		return d, err
	}
	if d.Note, err = GetTextWithDefault(a.reader, "Note", d.Note, a.out); err != nil {
		return d, err
	}
	return d, nil
}
