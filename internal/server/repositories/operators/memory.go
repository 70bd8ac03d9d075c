package operators

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	byName map[string]*models.Operator
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]*models.Operator)}
}

func (r *MemoryRepository) Create(ctx context.Context, op *models.Operator) (*models.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[op.Username]; exists {
		return nil, fmt.Errorf("%w: operator %q already exists", common.ErrorValidation, op.Username)
	}
	r.lastID++
	stored := *op
	stored.ID = r.lastID
	r.byName[op.Username] = &stored
	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *op
	return &out, nil
}
