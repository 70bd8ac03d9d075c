package repomanager

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// lineLogger keeps "LEVEL msg" lines. With shares the buffer.
type lineLogger struct {
	mu    *sync.Mutex
	lines *[]string
}

func newLineLogger() lineLogger {
	return lineLogger{mu: &sync.Mutex{}, lines: &[]string{}}
}

func (l lineLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.lines = append(*l.lines, level+" "+msg)
}

func (l lineLogger) Debug(_ context.Context, msg string, _ ...any) { l.add("DEBUG", msg) }
func (l lineLogger) Info(_ context.Context, msg string, _ ...any)  { l.add("INFO", msg) }
func (l lineLogger) Warn(_ context.Context, msg string, _ ...any)  { l.add("WARN", msg) }
func (l lineLogger) Error(_ context.Context, msg string, _ ...any) { l.add("ERROR", msg) }
func (l lineLogger) With(...any) logging.Logger                    { return l }

func (l lineLogger) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), *l.lines...)
}

func TestGooseLogger_Printf(t *testing.T) {
	l := newLineLogger()
	g := gooseLogger{ctx: context.Background(), logger: l}

	g.Printf("OK   %s (%s)\n", "00001_operators.sql", "1.2ms")
	assert.Equal(t, []string{"INFO OK   00001_operators.sql (1.2ms)"}, l.all())
}

func TestGooseLogger_FatalfLogsThenPanics(t *testing.T) {
	l := newLineLogger()
	g := gooseLogger{ctx: context.Background(), logger: l}

	assert.PanicsWithValue(t, "goose: no such table", func() {
		g.Fatalf("goose: %s\n", "no such table")
	})
	assert.Equal(t, []string{"ERROR goose: no such table"}, l.all())
}

func TestRunMigrations_LogsThroughLogger(t *testing.T) {
	ctx := context.Background()
	l := newLineLogger()
	m, err := New(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()), newSealer(t), l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.RunMigrations(ctx))

	var applied []string
	for _, line := range l.all() {
		if strings.HasPrefix(line, "INFO OK") {
			applied = append(applied, line)
		}
	}
	require.Len(t, applied, 3)
	assert.Contains(t, applied[0], "00001_operators.sql")
	assert.Contains(t, applied[2], "00003_notes.sql")
}
