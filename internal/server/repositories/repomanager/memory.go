package repomanager

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/operators"
)

// MemoryRepositoryManager holds one instance of each in-memory repository
// for the life of the process.
type MemoryRepositoryManager struct {
	credentials *credentials.MemoryRepository
	notes       *notes.MemoryRepository
	operators   *operators.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		credentials: credentials.NewMemoryRepository(),
		notes:       notes.NewMemoryRepository(),
		operators:   operators.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Credentials() credentials.Repository { return m.credentials }

func (m *MemoryRepositoryManager) Notes() notes.Repository { return m.notes }

func (m *MemoryRepositoryManager) Operators() operators.Repository { return m.operators }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) Close() error { return nil }
