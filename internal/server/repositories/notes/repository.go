// Package notes stores the operational notes attached to inventory
// entities, in memory or in SQL.
package notes

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// Repository mirrors credentials.Repository: mutations are scoped by
// association and report common.ErrAssociationMismatch or
// common.ErrorNotFound when the scope does not hold the id.
type Repository interface {
	// List returns the association's notes newest first.
	List(ctx context.Context, a models.Association) ([]*models.Note, error)
	ListAll(ctx context.Context) ([]*models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Create(ctx context.Context, n *models.Note) (*models.Note, error)
	// Update rewrites only the note text and severity.
	Update(ctx context.Context, n *models.Note) (*models.Note, error)
	Delete(ctx context.Context, a models.Association, id int64) error
	Counts(ctx context.Context) (map[models.Association]int, error)
	CountBySeverity(ctx context.Context) (map[models.Severity]int, error)
}
