// Package operators stores the people allowed to sign in.
package operators

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, op *models.Operator) (*models.Operator, error)
	GetByUsername(ctx context.Context, username string) (*models.Operator, error)
}
