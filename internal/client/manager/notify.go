package manager

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Notification is a toast: a short title plus one line of description.
type Notification struct {
	Level       Level
	Title       string
	Description string
}

type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

func notify(n Notifier, level Level, title, description string) {
	if n == nil {
		return
	}
	n.Notify(Notification{Level: level, Title: title, Description: description})
}

func notifyError(n Notifier, err error) {
	notify(n, LevelError, "Error", err.Error())
}

type CredentialStore interface {
	ListCredentials(ctx context.Context, a models.Association) ([]*models.Credential, error)
	CreateCredential(ctx context.Context, a models.Association, f models.CredentialFields) (*models.Credential, error)
	UpdateCredential(ctx context.Context, a models.Association, id int64, f models.CredentialFields) (*models.Credential, error)
	DeleteCredential(ctx context.Context, a models.Association, id int64) error
}

type NoteStore interface {
	ListNotes(ctx context.Context, a models.Association) ([]*models.Note, error)
	CreateNote(ctx context.Context, a models.Association, f models.NoteFields) (*models.Note, error)
	UpdateNote(ctx context.Context, a models.Association, id int64, f models.NoteFields) (*models.Note, error)
	DeleteNote(ctx context.Context, a models.Association, id int64) error
}
