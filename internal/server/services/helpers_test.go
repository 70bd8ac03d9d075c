package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/repomanager"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type countingRecorder struct{ calls []string }

func (r *countingRecorder) Mutation(record, action string) {
	r.calls = append(r.calls, record+"/"+action)
}

// newAssociationService returns a memory-backed service whose clock
// advances one second per call, so creation order is visible in
// timestamps.
func newAssociationService(t *testing.T) (*AssociationService, *countingRecorder) {
	t.Helper()
	rec := &countingRecorder{}
	s := NewAssociationService(repomanager.NewMemoryRepositoryManager(), nopLogger{}, rec)
	clock := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s, rec
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}
