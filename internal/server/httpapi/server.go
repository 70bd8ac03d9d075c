// Package httpapi serves the dashboard JSON API with chi.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/inventory"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/server/metrics"
	"github.com/dmitrijs2005/infrakeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Operators interface {
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(token string) (int64, error)
}

type Dashboard interface {
	Summary(ctx context.Context) (*services.Summary, error)
	ListEntities(ctx context.Context, kind models.Kind, term string) ([]services.EntityRow, error)
	Lookup(a models.Association) (inventory.Row, error)
}

type Associations interface {
	ListCredentials(ctx context.Context, a models.Association) ([]*models.Credential, error)
	GetCredential(ctx context.Context, a models.Association, id int64) (*models.Credential, error)
	CreateCredential(ctx context.Context, a models.Association, f models.CredentialFields) (*models.Credential, error)
	UpdateCredential(ctx context.Context, a models.Association, id int64, f models.CredentialFields) (*models.Credential, error)
	DeleteCredential(ctx context.Context, a models.Association, id int64) error
	ListNotes(ctx context.Context, a models.Association) ([]*models.Note, error)
	CreateNote(ctx context.Context, a models.Association, f models.NoteFields) (*models.Note, error)
	UpdateNote(ctx context.Context, a models.Association, id int64, f models.NoteFields) (*models.Note, error)
	DeleteNote(ctx context.Context, a models.Association, id int64) error
}

type Exporter interface {
	Export(ctx context.Context) (string, error)
}

type HTTPServer struct {
	address      string
	operators    Operators
	dashboard    Dashboard
	associations Associations
	exporter     Exporter
	metrics      *metrics.Metrics
	logger       logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, ops Operators, d Dashboard, as Associations, e Exporter, m *metrics.Metrics) *HTTPServer {
	return &HTTPServer{
		address:      a,
		logger:       l.With("module", "http_server"),
		operators:    ops,
		dashboard:    d,
		associations: as,
		exporter:     e,
		metrics:      m,
	}
}

// Router builds the route tree.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/summary", s.summary)
			for _, kind := range models.Kinds {
				r.Get("/"+collectionPath(kind), s.listEntities(kind))
			}
			r.Post("/exports", s.export)

			r.Route("/associations/{kind}/{id}", func(r chi.Router) {
				r.Use(s.withAssociation)

				r.Get("/credentials", s.listCredentials)
				r.Post("/credentials", s.createCredential)
				r.Put("/credentials/{cid}", s.updateCredential)
				r.Delete("/credentials/{cid}", s.deleteCredential)
				r.Get("/credentials/{cid}/secret", s.credentialSecret)

				r.Get("/notes", s.listNotes)
				r.Post("/notes", s.createNote)
				r.Put("/notes/{nid}", s.updateNote)
				r.Delete("/notes/{nid}", s.deleteNote)

				r.Post("/launch", s.launch)
			})
		})
	})

	return r
}

// collectionPath is the plural URL segment for a kind.
func collectionPath(k models.Kind) string {
	switch k {
	case models.KindVMwareServer:
		return "servers"
	case models.KindVirtualAppliance:
		return "appliances"
	case models.KindApplication:
		return "applications"
	case models.KindContainer:
		return "containers"
	}
	return "urls"
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
