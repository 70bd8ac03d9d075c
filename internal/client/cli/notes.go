package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/infrakeeper/internal/client/manager"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

const notesHelp = "Commands: list, add, edit <id>, delete <id>, back"

// Notes opens the notes sub-shell for one entity.
func (a *App) Notes(ctx context.Context, kind, id string) error {
	scope, err := models.NewAssociation(kind, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := manager.NewNotesManager(a.api, a.notifier(), scope)
	defer m.Close()

	if err := m.Load(ctx); err != nil {
		return err
	}
	renderNotes(a.out, m)

	return a.subShell(ctx, "notes "+scope.String(), func(cmd string, args []string) (bool, error) {
		switch cmd {
		case "help":
			fmt.Fprintln(a.out, notesHelp)
		case "list":
			if err := m.Load(ctx); err == nil {
				renderNotes(a.out, m)
			}
		case "add":
			if err := m.Add(); err != nil {
				return false, err
			}
			return false, a.fillNote(ctx, m)
		case "edit":
			nid, err := parseID(args)
			if err != nil {
				return false, err
			}
			if err := m.Edit(nid); err != nil {
				return false, err
			}
			return false, a.fillNote(ctx, m)
		case "delete":
			nid, err := parseID(args)
			if err != nil {
				return false, err
			}
			if !Confirm(a.reader, fmt.Sprintf("Delete note %d?", nid), a.out) {
				return false, nil
			}
			_ = m.Delete(ctx, nid)
			renderNotes(a.out, m)
		case "back", "exit", "quit":
			return true, nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
			fmt.Fprintln(a.out, notesHelp)
		}
		return false, nil
	})
}

func (a *App) fillNote(ctx context.Context, m *manager.NotesManager) error {
	for {
		d, err := a.promptNote(m.Draft())
		if err != nil {
			_ = m.Cancel()
			return err
		}
		if err := m.SetDraft(d); err != nil {
			return err
		}
		if err := m.Save(ctx); err == nil {
			renderNotes(a.out, m)
			return nil
		}
		if !Confirm(a.reader, "Save failed. Edit the form again?", a.out) {
			return m.Cancel()
		}
	}
}

func (a *App) promptNote(d manager.NoteDraft) (manager.NoteDraft, error) {
	sev, err := GetTextWithDefault(a.reader, "Severity (info, notice, warning, critical)", string(d.Severity), a.out)
	if err != nil {
		return d, err
	}
	if d.Severity, err = models.ParseSeverity(sev); err != nil {
		return d, err
	}

	prompt := "Enter note text"
	if d.Note != "" {
		fmt.Fprintf(a.out, "Current text:\n%s\n", d.Note)
		prompt = "Enter note text (empty keeps the current text)"
	}
	text, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return d, err
	}
	if text != "" {
		d.Note = text
	}
	return d, nil
}
