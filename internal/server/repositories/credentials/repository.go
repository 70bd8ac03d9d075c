// Package credentials stores the credentials attached to inventory
// entities. Two implementations exist: MemoryRepository and SQLRepository
// (PostgreSQL or SQLite, passwords sealed at rest).
package credentials

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// Repository is scoped by association on every mutating call: Update and
// Delete fail with common.ErrAssociationMismatch when the id exists under a
// different association, and with common.ErrorNotFound when it does not
// exist at all.
type Repository interface {
	// List returns the association's credentials in insertion order.
	List(ctx context.Context, a models.Association) ([]*models.Credential, error)
	ListAll(ctx context.Context) ([]*models.Credential, error)
	Get(ctx context.Context, id int64) (*models.Credential, error)
	Create(ctx context.Context, c *models.Credential) (*models.Credential, error)
	Update(ctx context.Context, c *models.Credential) (*models.Credential, error)
	Delete(ctx context.Context, a models.Association, id int64) error
	// Counts returns the number of credentials per association.
	Counts(ctx context.Context) (map[models.Association]int, error)
}
