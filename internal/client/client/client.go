package client

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/wire"
)

// Client is everything the CLI needs from the server.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) error
	Logout()
	LoggedIn() bool
	Ping(ctx context.Context) error
	Summary(ctx context.Context) (*wire.Summary, error)
	ListEntities(ctx context.Context, kind models.Kind, query string) ([]wire.EntityRow, error)

	ListCredentials(ctx context.Context, a models.Association) ([]*models.Credential, error)
	CreateCredential(ctx context.Context, a models.Association, f models.CredentialFields) (*models.Credential, error)
	UpdateCredential(ctx context.Context, a models.Association, id int64, f models.CredentialFields) (*models.Credential, error)
	DeleteCredential(ctx context.Context, a models.Association, id int64) error

	ListNotes(ctx context.Context, a models.Association) ([]*models.Note, error)
	CreateNote(ctx context.Context, a models.Association, f models.NoteFields) (*models.Note, error)
	UpdateNote(ctx context.Context, a models.Association, id int64, f models.NoteFields) (*models.Note, error)
	DeleteNote(ctx context.Context, a models.Association, id int64) error
}
