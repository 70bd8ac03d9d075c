package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/inventory"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

const summaryKey = "summary"

// Summary feeds the dashboard header.
type Summary struct {
	inventory.Totals
	NotesBySeverity map[models.Severity]int `json:"notes_by_severity"`
	CriticalNotes   int                     `json:"critical_notes"`
	WarningNotes    int                     `json:"warning_notes"`
	Credentials     int                     `json:"credentials"`
	GeneratedAt     time.Time               `json:"generated_at"`
}

// EntityRow is a catalog row decorated with how many credentials and
// notes the store holds for it.
type EntityRow struct {
	inventory.Row
	CredentialCount int `json:"credential_count"`
	NoteCount       int `json:"note_count"`
}

// DashboardService answers read-only catalog queries and the cached
// summary.
type DashboardService struct {
	catalog *inventory.Catalog
	assoc   *AssociationService
	cache   *gocache.Cache
	ttl     time.Duration
	logger  logging.Logger

	// gen counts invalidations; a summary computed under an older gen is
	// not cached.
	mu  sync.Mutex
	gen uint64
}

func NewDashboardService(c *inventory.Catalog, a *AssociationService, ttl time.Duration, l logging.Logger) *DashboardService {
	return &DashboardService{
		catalog: c,
		assoc:   a,
		cache:   gocache.New(ttl, 2*ttl),
		ttl:     ttl,
		logger:  l.With("module", "dashboard"),
	}
}

// Summary is recomputed at most once per cache TTL, and after every write
// when the service is registered as a recorder. A TTL <= 0 disables caching.
func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	if s.ttl > 0 {
		if v, ok := s.cache.Get(summaryKey); ok {
			return v.(*Summary), nil
		}
	}

	gen := s.generation()
	bySeverity, err := s.assoc.CountBySeverity(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting notes: %w", err)
	}
	creds, _, err := s.assoc.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting credentials: %w", err)
	}

	sum := &Summary{
		Totals:          s.catalog.Totals(),
		NotesBySeverity: bySeverity,
		CriticalNotes:   bySeverity[models.SeverityCritical],
		WarningNotes:    bySeverity[models.SeverityWarning],
		GeneratedAt:     time.Now().UTC(),
	}
	for _, n := range creds {
		sum.Credentials += n
	}

	cached := s.cacheSummary(gen, sum)
	s.logger.Debug(ctx, "Summary recomputed", "cached", cached)
	return sum, nil
}

func (s *DashboardService) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// cacheSummary stores sum unless the summary was invalidated after gen was
// read.
func (s *DashboardService) cacheSummary(gen uint64, sum *Summary) bool {
	if s.ttl <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.cache.SetDefault(summaryKey, sum)
	return true
}

// InvalidateSummary drops the cached summary, including one still being
// computed.
func (s *DashboardService) InvalidateSummary() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.cache.Delete(summaryKey)
}

// Mutation implements MutationRecorder so writes refresh the summary.
func (s *DashboardService) Mutation(record, action string) {
	s.InvalidateSummary()
}

// ListEntities filters one kind of the catalog by term.
func (s *DashboardService) ListEntities(ctx context.Context, kind models.Kind, term string) ([]EntityRow, error) {
	rows, err := s.catalog.Rows(kind, term)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, rows)
}

// Search runs term over every kind.
func (s *DashboardService) Search(ctx context.Context, term string) ([]EntityRow, error) {
	return s.decorate(ctx, s.catalog.Search(term))
}

func (s *DashboardService) decorate(ctx context.Context, rows []inventory.Row) ([]EntityRow, error) {
	creds, notes, err := s.assoc.Counts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EntityRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, EntityRow{
			Row:             r,
			CredentialCount: creds[r.Association],
			NoteCount:       notes[r.Association],
		})
	}
	return out, nil
}

// Lookup resolves an association to its catalog row.
func (s *DashboardService) Lookup(a models.Association) (inventory.Row, error) {
	if err := a.Validate(); err != nil {
		return inventory.Row{}, err
	}
	r, ok := s.catalog.Lookup(a)
	if !ok {
		return inventory.Row{}, fmt.Errorf("%w: %s", common.ErrorNotFound, a)
	}
	return r, nil
}

// Catalog exposes the underlying snapshot.
func (s *DashboardService) Catalog() *inventory.Catalog { return s.catalog }
