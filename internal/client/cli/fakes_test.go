package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/client/client"
	"github.com/dmitrijs2005/infrakeeper/internal/client/config"
	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/wire"
)

// fakeAPI is an in-memory client.Client.
type fakeAPI struct {
	mu       sync.Mutex
	loggedIn bool
	down     atomic.Bool
	pings    atomic.Int32
	lastID   int64
	rows     []wire.EntityRow
	creds    []*models.Credential
	notes    []*models.Note
	summary  *wire.Summary
	closed   bool
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Close() error { f.closed = true; return nil }

func (f *fakeAPI) Login(_ context.Context, username, password string) error {
	if f.down.Load() {
		return client.ErrUnavailable
	}
	if username != "admin" || password != "secret" {
		return common.ErrorUnauthorized
	}
	f.mu.Lock()
	f.loggedIn = true
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) Logout() {
	f.mu.Lock()
	f.loggedIn = false
	f.mu.Unlock()
}

func (f *fakeAPI) LoggedIn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loggedIn
}

func (f *fakeAPI) Ping(context.Context) error {
	f.pings.Add(1)
	if f.down.Load() {
		return client.ErrUnavailable
	}
	return nil
}

func (f *fakeAPI) Summary(context.Context) (*wire.Summary, error) {
	if f.summary == nil {
		return nil, client.ErrUnavailable
	}
	return f.summary, nil
}

func (f *fakeAPI) ListEntities(_ context.Context, kind models.Kind, query string) ([]wire.EntityRow, error) {
	var out []wire.EntityRow
	for _, r := range f.rows {
		if kind != "" && r.Association.Kind != kind {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(query)) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAPI) ListCredentials(_ context.Context, a models.Association) ([]*models.Credential, error) {
	var out []*models.Credential
	for _, c := range f.creds {
		if c.Association == a {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateCredential(_ context.Context, a models.Association, fl models.CredentialFields) (*models.Credential, error) {
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

func (f *fakeAPI) UpdateCredential(_ context.Context, a models.Association, id int64, fl models.CredentialFields) (*models.Credential, error) {
	for _, c := range f.creds {
		if c.ID == id && c.Association == a {
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

func (f *fakeAPI) DeleteCredential(_ context.Context, a models.Association, id int64) error {
	for i, c := range f.creds {
		if c.ID == id && c.Association == a {
			f.creds = append(f.creds[:i], f.creds[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeAPI) ListNotes(_ context.Context, a models.Association) ([]*models.Note, error) {
	var out []*models.Note
	for i := len(f.notes) - 1; i >= 0; i-- {
		if f.notes[i].Association == a {
			out = append(out, f.notes[i].Clone())
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateNote(_ context.Context, a models.Association, fl models.NoteFields) (*models.Note, error) {
	if err := fl.Validate(); err != nil {
		return nil, err
	}
	f.lastID++
	n := &models.Note{ID: f.lastID, Association: a, Severity: fl.Severity, Note: fl.Note, CreatedAt: time.Now()}
	f.notes = append(f.notes, n)
	return n.Clone(), nil
}

func (f *fakeAPI) UpdateNote(_ context.Context, a models.Association, id int64, fl models.NoteFields) (*models.Note, error) {
	if err := fl.Validate(); err != nil {
		return nil, err
	}
	for _, n := range f.notes {
		if n.ID == id && n.Association == a {
			n.Severity, n.Note = fl.Severity, fl.Note
			return n.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAPI) DeleteNote(_ context.Context, a models.Association, id int64) error {
	for i, n := range f.notes {
		if n.ID == id && n.Association == a {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

var (
	webVM = models.Association{Kind: models.KindVirtualAppliance, ID: 1}
	mysql = models.Association{Kind: models.KindApplication, ID: 2}
)

func seededAPI() *fakeAPI {
	return &fakeAPI{
		loggedIn: true,
		rows: []wire.EntityRow{
			{Association: webVM, Title: "web-01", Hostname: "web-01", IPAddress: "10.0.1.100"},
			{Association: mysql, Title: "MySQL", Detail: "database"},
			{Association: models.Association{Kind: models.KindApplication, ID: 1}, Title: "Nginx", Detail: "web server"},
		},
	}
}

// testApp wires an App to scripted input and captured output.
func testApp(t *testing.T, api *fakeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(&config.Config{OnlineCheckInterval: time.Hour}, api, bufio.NewReader(strings.NewReader(input)), &out)
	return a, &out
}

// stubPassword makes every password prompt answer pw.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
