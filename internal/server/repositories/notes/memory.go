package notes

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// MemoryRepository keeps notes in process memory with monotonic ids.
type MemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	items  map[int64]*models.Note
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]*models.Note)}
}

func newestFirst(ns []*models.Note) {
	sort.Slice(ns, func(i, j int) bool {
		if !ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].CreatedAt.After(ns[j].CreatedAt)
		}
		return ns[i].ID > ns[j].ID
	})
}

func (r *MemoryRepository) List(ctx context.Context, a models.Association) ([]*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.Note{}
	for _, n := range r.items {
		if n.Association == a {
			out = append(out, n.Clone())
		}
	}
	newestFirst(out)
	return out, nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Note, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, n.Clone())
	}
	newestFirst(out)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return n.Clone(), nil
}

func (r *MemoryRepository) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := n.Clone()
	stored.ID = r.lastID
	r.items[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *MemoryRepository) lookup(a models.Association, id int64) (*models.Note, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if n.Association != a {
		return nil, common.ErrAssociationMismatch
	}
	return n, nil
}

func (r *MemoryRepository) Update(ctx context.Context, n *models.Note) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.lookup(n.Association, n.ID)
	if err != nil {
		return nil, err
	}
	stored.Note = n.Note
	stored.Severity = n.Severity
	return stored.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, a models.Association, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(a, id); err != nil {
		return err
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) Counts(ctx context.Context) (map[models.Association]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[models.Association]int)
	for _, n := range r.items {
		out[n.Association]++
	}
	return out, nil
}

func (r *MemoryRepository) CountBySeverity(ctx context.Context) (map[models.Severity]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[models.Severity]int)
	for _, n := range r.items {
		out[n.Severity]++
	}
	return out, nil
}
