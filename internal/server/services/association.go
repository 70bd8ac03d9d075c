// Package services contains server-side business logic. AssociationService
// is the single store of credentials and notes shared by every transport.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/server/auth"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/repomanager"
)

// MutationRecorder is told about every successful write.
type MutationRecorder interface {
	Mutation(record, action string)
}

// AssociationService validates input and enforces the association scope on
// top of the repositories.
//
// Delete reports common.ErrorNotFound when the id is absent, including for
// the second call of a double delete.
type AssociationService struct {
	repos     repomanager.RepositoryManager
	logger    logging.Logger
	recorders []MutationRecorder
	now       func() time.Time
}

func NewAssociationService(m repomanager.RepositoryManager, l logging.Logger, recorders ...MutationRecorder) *AssociationService {
	return &AssociationService{
		repos:     m,
		logger:    l.With("module", "associations"),
		recorders: recorders,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// AddRecorder subscribes r to successful writes. Not safe to call once
// requests are being served.
func (s *AssociationService) AddRecorder(r MutationRecorder) {
	s.recorders = append(s.recorders, r)
}

func (s *AssociationService) record(record, action string) {
	for _, r := range s.recorders {
		r.Mutation(record, action)
	}
}

func (s *AssociationService) ListCredentials(ctx context.Context, a models.Association) ([]*models.Credential, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return s.repos.Credentials().List(ctx, a)
}

func (s *AssociationService) GetCredential(ctx context.Context, a models.Association, id int64) (*models.Credential, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repos.Credentials().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Association != a {
		return nil, common.ErrAssociationMismatch
	}
	return c, nil
}

func (s *AssociationService) CreateCredential(ctx context.Context, a models.Association, f models.CredentialFields) (*models.Credential, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}

	c := &models.Credential{Association: a, LastUpdated: s.now()}
	c.Apply(f)

	out, err := s.repos.Credentials().Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error creating credential: %w", err)
	}
	s.logger.Info(ctx, "Credential created", "association", a.String(), "id", out.ID)
	s.record("credential", "create")
	return out, nil
}

// UpdateCredential replaces the editable fields of credential id. A nil
// protocol or hidden flag keeps the stored value.
func (s *AssociationService) UpdateCredential(ctx context.Context, a models.Association, id int64, f models.CredentialFields) (*models.Credential, error) {
	existing, err := s.GetCredential(ctx, a, id)
	if err != nil {
		return nil, err
	}
	f, err = f.Keep(existing).Normalize()
	if err != nil {
		return nil, err
	}

	c := &models.Credential{ID: id, Association: a, LastUpdated: s.now()}
	c.Apply(f)

	out, err := s.repos.Credentials().Update(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Credential updated", "association", a.String(), "id", id)
	s.record("credential", "update")
	return out, nil
}

func (s *AssociationService) DeleteCredential(ctx context.Context, a models.Association, id int64) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.repos.Credentials().Delete(ctx, a, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "Credential deleted", "association", a.String(), "id", id)
	s.record("credential", "delete")
	return nil
}

func (s *AssociationService) ListNotes(ctx context.Context, a models.Association) ([]*models.Note, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return s.repos.Notes().List(ctx, a)
}

// CreateNote stamps the note with the operator found in ctx; 0 when the
// caller is anonymous.
func (s *AssociationService) CreateNote(ctx context.Context, a models.Association, f models.NoteFields) (*models.Note, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	operatorID, _ := auth.OperatorFromContext(ctx)
	n := &models.Note{
		Association: a,
		Severity:    f.Severity,
		Note:        f.Note,
		CreatedBy:   operatorID,
		CreatedAt:   s.now(),
	}

	out, err := s.repos.Notes().Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	s.logger.Info(ctx, "Note created", "association", a.String(), "id", out.ID, "severity", string(out.Severity))
	s.record("note", "create")
	return out, nil
}

func (s *AssociationService) UpdateNote(ctx context.Context, a models.Association, id int64, f models.NoteFields) (*models.Note, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	out, err := s.repos.Notes().Update(ctx, &models.Note{ID: id, Association: a, Severity: f.Severity, Note: f.Note})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Note updated", "association", a.String(), "id", id)
	s.record("note", "update")
	return out, nil
}

func (s *AssociationService) DeleteNote(ctx context.Context, a models.Association, id int64) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.repos.Notes().Delete(ctx, a, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "Note deleted", "association", a.String(), "id", id)
	s.record("note", "delete")
	return nil
}

func (s *AssociationService) CountBySeverity(ctx context.Context) (map[models.Severity]int, error) {
	return s.repos.Notes().CountBySeverity(ctx)
}

// Counts returns credential and note counts per association.
func (s *AssociationService) Counts(ctx context.Context) (creds, notes map[models.Association]int, err error) {
	if creds, err = s.repos.Credentials().Counts(ctx); err != nil {
		return nil, nil, err
	}
	if notes, err = s.repos.Notes().Counts(ctx); err != nil {
		return nil, nil, err
	}
	return creds, notes, nil
}
