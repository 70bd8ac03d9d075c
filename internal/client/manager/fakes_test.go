package manager

import (
	"context"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// fakeStore keeps records per association with monotonic ids. failNext
// makes the next mutating call return that error.
type fakeStore struct {
	lastID   int64
	creds    []*models.Credential
	notes    []*models.Note
	failNext error
}

func (f *fakeStore) fail() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeStore) ListCredentials(_ context.Context, a models.Association) ([]*models.Credential, error) {
	var out []*models.Credential
	for _, c := range f.creds {
		if c.Association == a {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (f *fakeStore) CreateCredential(_ context.Context, a models.Association, fl models.CredentialFields) (*models.Credential, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	fl, err := fl.Normalize()
	if err != nil {
		return nil, err
	}
	f.lastID++
	c := &models.Credential{ID: f.lastID, Association: a, LastUpdated: time.Now()}
	c.Apply(fl)
	f.creds = append(f.creds, c)
	return c.Clone(), nil
}

func (f *fakeStore) UpdateCredential(_ context.Context, a models.Association, id int64, fl models.CredentialFields) (*models.Credential, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	for _, c := range f.creds {
		if c.ID == id {
			if c.Association != a {
				return nil, common.ErrAssociationMismatch
			}
			fl, err := fl.Keep(c).Normalize()
			if err != nil {
				return nil, err
			}
			c.Apply(fl)
			return c.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeStore) DeleteCredential(_ context.Context, a models.Association, id int64) error {
	if err := f.fail(); err != nil {
		return err
	}
	for i, c := range f.creds {
		if c.ID == id {
			f.creds = append(f.creds[:i], f.creds[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) ListNotes(_ context.Context, a models.Association) ([]*models.Note, error) {
	var out []*models.Note
	for i := len(f.notes) - 1; i >= 0; i-- {
		if f.notes[i].Association == a {
			out = append(out, f.notes[i].Clone())
		}
	}
	return out, nil
}

func (f *fakeStore) CreateNote(_ context.Context, a models.Association, fl models.NoteFields) (*models.Note, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	if err := fl.Validate(); err != nil {
		return nil, err
	}
	f.lastID++
	n := &models.Note{ID: f.lastID, Association: a, Severity: fl.Severity, Note: fl.Note, CreatedAt: time.Now()}
	f.notes = append(f.notes, n)
	return n.Clone(), nil
}

func (f *fakeStore) UpdateNote(_ context.Context, a models.Association, id int64, fl models.NoteFields) (*models.Note, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	for _, n := range f.notes {
		if n.ID == id {
			n.Severity, n.Note = fl.Severity, fl.Note
			return n.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeStore) DeleteNote(_ context.Context, a models.Association, id int64) error {
	if err := f.fail(); err != nil {
		return err
	}
	for i, n := range f.notes {
		if n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type recorder struct{ got []Notification }

func (r *recorder) Notify(n Notification) { r.got = append(r.got, n) }

func (r *recorder) last() Notification {
	if len(r.got) == 0 {
		return Notification{}
	}
	return r.got[len(r.got)-1]
}
