package manager

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/formstate"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// EmptyNotesMessage is shown instead of a table when an entity has no notes.
const EmptyNotesMessage = `No notes found. Type "add" to create the first one.`

type NoteDraft struct {
	Severity models.Severity
	Note     string
}

// NewNoteDraft is the empty form with severity info.
func NewNoteDraft() NoteDraft {
	return NoteDraft{Severity: models.SeverityInfo}
}

func (d NoteDraft) fields() models.NoteFields {
	return models.NoteFields{Severity: d.Severity, Note: d.Note}
}

// NotesManager manages the notes of one entity, newest first.
type NotesManager struct {
	store    NoteStore
	notifier Notifier
	scope    models.Association

	state   formstate.State[int64]
	draft   NoteDraft
	records []*models.Note
}

func NewNotesManager(store NoteStore, n Notifier, scope models.Association) *NotesManager {
	return &NotesManager{store: store, notifier: n, scope: scope, draft: NewNoteDraft()}
}

func (m *NotesManager) Scope() models.Association { return m.scope }

func (m *NotesManager) State() formstate.State[int64] { return m.state }

func (m *NotesManager) Records() []*models.Note { return slices.Clone(m.records) }

// Empty reports whether EmptyNotesMessage should be rendered.
func (m *NotesManager) Empty() bool { return len(m.records) == 0 }

func (m *NotesManager) Find(id int64) (*models.Note, bool) {
	i := m.index(id)
	if i < 0 {
		return nil, false
	}
	return m.records[i], true
}

func (m *NotesManager) index(id int64) int {
	return slices.IndexFunc(m.records, func(n *models.Note) bool { return n.ID == id })
}

func (m *NotesManager) Load(ctx context.Context) error {
	recs, err := m.store.ListNotes(ctx, m.scope)
	if err != nil {
		notifyError(m.notifier, err)
		return err
	}
	m.records = recs
	return nil
}

func (m *NotesManager) Draft() NoteDraft { return m.draft }

func (m *NotesManager) SetDraft(d NoteDraft) error {
	if !m.state.Open() {
		return formstate.ErrNoForm
	}
	m.draft = d
	return nil
}

func (m *NotesManager) Add() error {
	s, err := m.state.Add()
	if err != nil {
		return err
	}
	m.state = s
	m.draft = NewNoteDraft()
	return nil
}

func (m *NotesManager) Edit(id int64) error {
	n, ok := m.Find(id)
	if !ok {
		return fmt.Errorf("%w: note %d", common.ErrorNotFound, id)
	}
	s, err := m.state.Edit(id)
	if err != nil {
		return err
	}
	m.state = s
	m.draft = NoteDraft{Severity: n.Severity, Note: n.Note}
	return nil
}

func (m *NotesManager) Cancel() error {
	s, err := m.state.Close()
	if err != nil {
		return err
	}
	m.state = s
	m.draft = NewNoteDraft()
	return nil
}

// Save commits the draft. New notes go to the top; edits keep their place.
func (m *NotesManager) Save(ctx context.Context) error {
	if !m.state.Open() {
		return formstate.ErrNoForm
	}

	if id, editing := m.state.Target(); editing {
		n, err := m.store.UpdateNote(ctx, m.scope, id, m.draft.fields())
		if err != nil {
			notifyError(m.notifier, err)
			return err
		}
		if i := m.index(id); i >= 0 {
			m.records[i] = n
		}
		notify(m.notifier, LevelSuccess, "Note Updated", "Note has been updated successfully.")
	} else {
		n, err := m.store.CreateNote(ctx, m.scope, m.draft.fields())
		if err != nil {
			notifyError(m.notifier, err)
			return err
		}
		m.records = slices.Insert(m.records, 0, n)
		notify(m.notifier, LevelSuccess, "Note Added", "New note has been saved successfully.")
	}

	m.state = m.state.Reset()
	m.draft = NewNoteDraft()
	return nil
}

func (m *NotesManager) Delete(ctx context.Context, id int64) error {
	err := m.store.DeleteNote(ctx, m.scope, id)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		notifyError(m.notifier, err)
		return err
	}
	if i := m.index(id); i >= 0 {
		m.records = slices.Delete(m.records, i, i+1)
	}
	if err != nil {
		notifyError(m.notifier, err)
		return err
	}
	notify(m.notifier, LevelSuccess, "Note Deleted", "Note has been removed successfully.")
	return nil
}

func (m *NotesManager) Close() {
	m.state = m.state.Reset()
	m.draft = NewNoteDraft()
}
