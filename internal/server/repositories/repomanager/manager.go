// Package repomanager vends the repositories of one storage backend:
// process memory, or a SQL database (PostgreSQL via pgx, SQLite via
// modernc) with goose migrations.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/infrakeeper/internal/cryptox"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/operators"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Credentials() credentials.Repository
	Notes() notes.Repository
	Operators() operators.Repository
	// WithTx runs fn with a manager whose repositories share one
	// transaction. The memory backend runs fn directly.
	WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error
	Close() error
}

// New picks the backend from the DSN: empty means memory.
func New(dsn string, sealer *cryptox.Sealer, l logging.Logger) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}
	m, err := NewSQLRepositoryManager(dsn, sealer, l)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	return m, nil
}
