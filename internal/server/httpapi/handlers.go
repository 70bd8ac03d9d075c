package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/infrakeeper/internal/launcher"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/server/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type secretResponse struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

type launchRequest struct {
	CredentialID *int64 `json:"credential_id,omitempty"`
	UseCustom    bool   `json:"use_custom"`
	Username     string `json:"username,omitempty"`
	Port         int    `json:"port,omitempty"`
}

type launchResponse struct {
	Target  launcher.Target `json:"target"`
	Command string          `json:"command"`
	URL     string          `json:"url"`
}

type exportResponse struct {
	Location string `json:"location"`
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	token, err := s.operators.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}

func (s *HTTPServer) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.dashboard.Summary(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *HTTPServer) listEntities(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := s.dashboard.ListEntities(r.Context(), kind, r.URL.Query().Get("q"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func (s *HTTPServer) export(w http.ResponseWriter, r *http.Request) {
	location, err := s.exporter.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, exportResponse{Location: location})
}

func (s *HTTPServer) listCredentials(w http.ResponseWriter, r *http.Request) {
	creds, err := s.associations.ListCredentials(r.Context(), association(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]*models.Credential, 0, len(creds))
	for _, c := range creds {
		out = append(out, c.Masked())
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) createCredential(w http.ResponseWriter, r *http.Request) {
	var f models.CredentialFields
	if err := decode(r, &f); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.associations.CreateCredential(r.Context(), association(r), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c.Masked())
}

func (s *HTTPServer) updateCredential(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "cid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var f models.CredentialFields
	if err := decode(r, &f); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.associations.UpdateCredential(r.Context(), association(r), id, f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c.Masked())
}

func (s *HTTPServer) deleteCredential(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "cid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.associations.DeleteCredential(r.Context(), association(r), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// credentialSecret is the only route that returns a raw password. Every
// read is audited.
func (s *HTTPServer) credentialSecret(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "cid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	a := association(r)
	c, err := s.associations.GetCredential(r.Context(), a, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	operatorID, _ := auth.OperatorFromContext(r.Context())
	s.logger.Info(r.Context(), "Credential secret read", "operator", operatorID, "association", a.String(), "credential", id)
	s.metrics.SecretRead()
	writeJSON(w, http.StatusOK, secretResponse{ID: c.ID, Password: c.Password})
}

func (s *HTTPServer) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.associations.ListNotes(r.Context(), association(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *HTTPServer) createNote(w http.ResponseWriter, r *http.Request) {
	var f models.NoteFields
	if err := decode(r, &f); err != nil {
		s.writeError(w, r, err)
		return
	}
	n, err := s.associations.CreateNote(r.Context(), association(r), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (s *HTTPServer) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "nid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var f models.NoteFields
	if err := decode(r, &f); err != nil {
		s.writeError(w, r, err)
		return
	}
	n, err := s.associations.UpdateNote(r.Context(), association(r), id, f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *HTTPServer) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "nid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.associations.DeleteNote(r.Context(), association(r), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// launch derives the ssh command for an entity. The server has no
// terminal to hand off to, so the command is returned for the caller to
// run.
func (s *HTTPServer) launch(w http.ResponseWriter, r *http.Request) {
	var req launchRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	a := association(r)
	row, err := s.dashboard.Lookup(a)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	target := launcher.Target{Kind: a.Kind, ID: a.ID, Hostname: row.Hostname, IPAddress: row.IPAddress}

	opts := launcher.Options{UseCustom: req.UseCustom, CustomUsername: req.Username, CustomPort: req.Port}
	if !req.UseCustom && req.CredentialID != nil {
		c, err := s.associations.GetCredential(r.Context(), a, *req.CredentialID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Selected = c
	}

	cmd, err := launcher.Launch(r.Context(), nil, target, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	operatorID, _ := auth.OperatorFromContext(r.Context())
	s.logger.Info(r.Context(), "Connection launched", "operator", operatorID, "association", a.String(), "address", target.Address())
	s.metrics.Launch()
	writeJSON(w, http.StatusOK, launchResponse{Target: target, Command: cmd, URL: launcher.URL(target, opts)})
}
