package operators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/dbx"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, op *models.Operator) (*models.Operator, error) {
	query :=
		`INSERT INTO operators (username, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`

	out := *op
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), op.Username, op.PasswordHash, op.CreatedAt).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &out, nil
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.Operator, error) {
	query :=
		`SELECT id, username, password_hash, created_at FROM operators
		 WHERE username = $1`

	op := &models.Operator{}
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), username).
		Scan(&op.ID, &op.Username, &op.PasswordHash, &op.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return op, nil
}
