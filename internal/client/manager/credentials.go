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

// CredentialDraft is the content of the credential form. ProtocolID and
// HiddenDisplay are not prompted for; they ride along so an edit saves them
// unchanged. A nil HiddenDisplay takes the store's default.
type CredentialDraft struct {
	Username      string
	Password      string
	Note          string
	Port          int
	URL           string
	ProtocolID    *int64
	HiddenDisplay *bool
}

// NewCredentialDraft is the empty form: everything blank, port 22.
func NewCredentialDraft() CredentialDraft {
	return CredentialDraft{Port: common.DefaultPort}
}

func credentialDraftFrom(c *models.Credential) CredentialDraft {
	f := c.Fields()
	d := CredentialDraft{
		Username:      f.Username,
		Password:      f.Password,
		Note:          f.Note,
		Port:          f.Port,
		URL:           f.URL,
		HiddenDisplay: f.HiddenDisplay,
	}
	if c.ProtocolID != nil {
		id := *c.ProtocolID
		d.ProtocolID = &id
	}
	if d.Port == 0 {
		d.Port = common.DefaultPort
	}
	return d
}

func (d CredentialDraft) fields() models.CredentialFields {
	return models.CredentialFields{
		Username:      d.Username,
		Password:      d.Password,
		Note:          d.Note,
		Port:          d.Port,
		URL:           d.URL,
		ProtocolID:    d.ProtocolID,
		HiddenDisplay: d.HiddenDisplay,
	}
}

// CredentialManager manages the credentials of one entity.
type CredentialManager struct {
	store    CredentialStore
	notifier Notifier
	scope    models.Association

	state    formstate.State[int64]
	draft    CredentialDraft
	records  []*models.Credential
	revealed map[int64]bool
}

func NewCredentialManager(store CredentialStore, n Notifier, scope models.Association) *CredentialManager {
	return &CredentialManager{
		store:    store,
		notifier: n,
		scope:    scope,
		draft:    NewCredentialDraft(),
		revealed: make(map[int64]bool),
	}
}

func (m *CredentialManager) Scope() models.Association { return m.scope }

func (m *CredentialManager) State() formstate.State[int64] { return m.state }

// Records returns the rows in display order.
func (m *CredentialManager) Records() []*models.Credential {
	return slices.Clone(m.records)
}

// Find returns the row with id, if shown.
func (m *CredentialManager) Find(id int64) (*models.Credential, bool) {
	i := m.index(id)
	if i < 0 {
		return nil, false
	}
	return m.records[i], true
}

func (m *CredentialManager) index(id int64) int {
	return slices.IndexFunc(m.records, func(c *models.Credential) bool { return c.ID == id })
}

// Load replaces the rows with the store's current list.
func (m *CredentialManager) Load(ctx context.Context) error {
	recs, err := m.store.ListCredentials(ctx, m.scope)
	if err != nil {
		notifyError(m.notifier, err)
		return err
	}
	m.records = recs
	return nil
}

func (m *CredentialManager) Draft() CredentialDraft { return m.draft }

// SetDraft replaces the form content. It fails while no form is open.
func (m *CredentialManager) SetDraft(d CredentialDraft) error {
	if !m.state.Open() {
		return formstate.ErrNoForm
	}
	m.draft = d
	return nil
}

// Add opens an empty form.
func (m *CredentialManager) Add() error {
	s, err := m.state.Add()
	if err != nil {
		return err
	}
	m.state = s
	m.draft = NewCredentialDraft()
	return nil
}

// Edit opens the form prefilled from row id.
func (m *CredentialManager) Edit(id int64) error {
	c, ok := m.Find(id)
	if !ok {
		return fmt.Errorf("%w: credential %d", common.ErrorNotFound, id)
	}
	s, err := m.state.Edit(id)
	if err != nil {
		return err
	}
	m.state = s
	m.draft = credentialDraftFrom(c)
	return nil
}

// Cancel closes the form without touching the store.
func (m *CredentialManager) Cancel() error {
	s, err := m.state.Close()
	if err != nil {
		return err
	}
	m.state = s
	m.draft = NewCredentialDraft()
	return nil
}

// Save commits the draft. A new credential is appended, an edited one is
// replaced in place. On failure the form stays open.
func (m *CredentialManager) Save(ctx context.Context) error {
	if !m.state.Open() {
		return formstate.ErrNoForm
	}

	if id, editing := m.state.Target(); editing {
		c, err := m.store.UpdateCredential(ctx, m.scope, id, m.draft.fields())
		if err != nil {
			notifyError(m.notifier, err)
			return err
		}
		if i := m.index(id); i >= 0 {
			m.records[i] = c
		}
		notify(m.notifier, LevelSuccess, "Credential Updated", "Credential has been updated successfully.")
	} else {
		c, err := m.store.CreateCredential(ctx, m.scope, m.draft.fields())
		if err != nil {
			notifyError(m.notifier, err)
			return err
		}
		m.records = append(m.records, c)
		notify(m.notifier, LevelSuccess, "Credential Added", "New credential has been saved successfully.")
	}

	m.state = m.state.Reset()
	m.draft = NewCredentialDraft()
	return nil
}

// Delete removes row id through the store. A row the store no longer has
// is dropped from the screen too.
func (m *CredentialManager) Delete(ctx context.Context, id int64) error {
	err := m.store.DeleteCredential(ctx, m.scope, id)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		notifyError(m.notifier, err)
		return err
	}
	if i := m.index(id); i >= 0 {
		m.records = slices.Delete(m.records, i, i+1)
	}
	delete(m.revealed, id)
	if err != nil {
		notifyError(m.notifier, err)
		return err
	}
	notify(m.notifier, LevelSuccess, "Credential Deleted", "Credential has been removed successfully.")
	return nil
}

// ToggleReveal flips the visibility of row id and returns the new value.
func (m *CredentialManager) ToggleReveal(id int64) bool {
	m.revealed[id] = !m.revealed[id]
	return m.revealed[id]
}

func (m *CredentialManager) Revealed(id int64) bool { return m.revealed[id] }

// DisplayPassword is what the table shows in the password column.
func (m *CredentialManager) DisplayPassword(c *models.Credential) string {
	if c.Password == "" {
		return ""
	}
	if m.revealed[c.ID] {
		return c.Password
	}
	return models.MaskedPassword
}

// Close drops any unsaved draft. Committed changes are already in the store.
func (m *CredentialManager) Close() {
	m.state = m.state.Reset()
	m.draft = NewCredentialDraft()
}
