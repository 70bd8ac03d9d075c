package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.Mutation("credential", "create")
	m.Mutation("credential", "create")
	m.Mutation("note", "delete")
	m.SecretRead()
	m.Launch()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				key := f.GetName()
				for _, l := range metric.GetLabel() {
					key += "," + l.GetValue()
				}
				got[key] = c.GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, got["infrakeeper_record_mutations_total,create,credential"])
	assert.Equal(t, 1.0, got["infrakeeper_record_mutations_total,delete,note"])
	assert.Equal(t, 1.0, got["infrakeeper_secret_reads_total"])
	assert.Equal(t, 1.0, got["infrakeeper_launches_total"])
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Mutation("note", "create")
		m.SecretRead()
		m.Launch()
		m.ObserveRequest("http", "/", 200, time.Millisecond)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("http", "/api/v1/summary", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "infrakeeper_request_duration_seconds")
	assert.Contains(t, string(body), `route="/api/v1/summary"`)
}
