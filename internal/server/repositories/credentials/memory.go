package credentials

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// MemoryRepository keeps credentials in process memory. Ids come from a
// counter that only ever grows, so a deleted id is never handed out again.
type MemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	items  map[int64]*models.Credential
	order  []int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]*models.Credential)}
}

func (r *MemoryRepository) List(ctx context.Context, a models.Association) ([]*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.Credential{}
	for _, id := range r.order {
		if c := r.items[id]; c.Association == a {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Credential, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return c.Clone(), nil
}

func (r *MemoryRepository) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := c.Clone()
	stored.ID = r.lastID
	r.items[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return stored.Clone(), nil
}

// lookup must be called with the lock held.
func (r *MemoryRepository) lookup(a models.Association, id int64) (*models.Credential, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if c.Association != a {
		return nil, common.ErrAssociationMismatch
	}
	return c, nil
}

func (r *MemoryRepository) Update(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(c.Association, c.ID); err != nil {
		return nil, err
	}
	stored := c.Clone()
	r.items[c.ID] = stored
	return stored.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, a models.Association, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(a, id); err != nil {
		return err
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) Counts(ctx context.Context) (map[models.Association]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[models.Association]int)
	for _, c := range r.items {
		out[c.Association]++
	}
	return out, nil
}
