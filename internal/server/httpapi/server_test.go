package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/inventory"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/server/config"
	"github.com/dmitrijs2005/infrakeeper/internal/server/metrics"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/infrakeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeExporter struct {
	location string
	err      error
}

func (f fakeExporter) Export(context.Context) (string, error) { return f.location, f.err }

type apiClient struct {
	t     *testing.T
	srv   *httptest.Server
	token string
	m     *metrics.Metrics
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	ctx := context.Background()

	repos := repomanager.NewMemoryRepositoryManager()
	cfg := &config.Config{SecretKey: "secret", AccessTokenValidityDuration: time.Minute}
	ops := services.NewOperatorService(repos, nopLogger{}, cfg)
	require.NoError(t, ops.EnsureOperator(ctx, "admin", "admin"))
	m := metrics.New()
	assoc := services.NewAssociationService(repos, nopLogger{}, m)
	dash := services.NewDashboardService(inventory.DefaultCatalog(), assoc, time.Minute, nopLogger{})
	assoc.AddRecorder(dash)

	h := NewHTTPServer(":0", nopLogger{}, ops, dash, assoc, fakeExporter{location: "s3://inventory/exports/x.json"}, m)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)

	c := &apiClient{t: t, srv: srv, m: m}
	var login loginResponse
	status := c.do(http.MethodPost, "/api/v1/login", `{"username":"admin","password":"admin"}`, &login)
	require.Equal(t, http.StatusOK, status)
	c.token = login.AccessToken
	return c
}

func (c *apiClient) do(method, path, body string, out any) int {
	c.t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, rd)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthzAndMetrics(t *testing.T) {
	c := newAPI(t)
	c.token = ""
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/healthz", "", nil))

	resp, err := c.srv.Client().Get(c.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "infrakeeper_request_duration_seconds")
}

func TestAuthRequired(t *testing.T) {
	c := newAPI(t)
	c.token = ""
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/v1/summary", "", nil))

	c.token = "garbage"
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/v1/summary", "", nil))

	c.token = ""
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/v1/login", `{"username":"admin","password":"x"}`, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/v1/login", `{`, nil))
}

func TestListEntitiesAndSummary(t *testing.T) {
	c := newAPI(t)

	var rows []services.EntityRow
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/v1/applications?q=sql", "", &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "MySQL Database", rows[0].Title)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/v1/servers", "", &rows))
	assert.Len(t, rows, 2)

	var sum services.Summary
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/v1/summary", "", &sum))
	assert.Equal(t, 384, sum.TotalRAMGB)
}

func TestCredentialRoutes(t *testing.T) {
	c := newAPI(t)
	base := "/api/v1/associations/application/2/credentials"

	var created models.Credential
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, base, `{"username":"dba","password":"s3cret"}`, &created))
	assert.Equal(t, models.MaskedPassword, created.Password)
	assert.Equal(t, 22, created.Port)

	var list []models.Credential
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, base, "", &list))
	require.Len(t, list, 1)
	assert.Equal(t, models.MaskedPassword, list[0].Password)

	var secret secretResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, base+"/1/secret", "", &secret))
	assert.Equal(t, "s3cret", secret.Password)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, base+"/1", `{"port":70000}`, nil))
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPut, "/api/v1/associations/vm/1/credentials/1", `{"username":"x"}`, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/v1/associations/router/1/credentials", "", nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodDelete, base+"/abc", "", nil))

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, base+"/1", "", nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, base+"/1", "", nil))
}

func TestNoteRoutes(t *testing.T) {
	c := newAPI(t)
	base := "/api/v1/associations/vm/1/notes"

	var first, second models.Note
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, base, `{"severity":"warning","note":"disk 85%"}`, &first))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, base, `{"severity":"critical","note":"disk 99%"}`, &second))
	assert.Equal(t, int64(1), first.CreatedBy)

	var list []models.Note
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, base, "", &list))
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, base, `{"severity":"urgent","note":"x"}`, nil))

	var upd models.Note
	require.Equal(t, http.StatusOK, c.do(http.MethodPut, base+"/1", `{"severity":"info","note":"resolved"}`, &upd))
	assert.Equal(t, "resolved", upd.Note)

	var sum services.Summary
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/v1/summary", "", &sum))
	assert.Equal(t, 1, sum.CriticalNotes)
	assert.Equal(t, 0, sum.WarningNotes)

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, base+"/1", "", nil))
}

func TestLaunch(t *testing.T) {
	c := newAPI(t)
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/associations/vm/1/credentials", `{"username":"admin","port":2222}`, nil))

	var resp launchResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/v1/associations/vm/1/launch", `{"credential_id":1}`, &resp))
	assert.Equal(t, "ssh admin@10.0.1.100 -p 2222", resp.Command)
	assert.Equal(t, "ssh://admin@10.0.1.100:2222", resp.URL)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/v1/associations/vm/1/launch", `{"use_custom":true}`, &resp))
	assert.Equal(t, "ssh 10.0.1.100 -p 22", resp.Command)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/v1/associations/application/2/launch", `{}`, &resp))
	assert.Equal(t, "ssh 10.0.1.101", resp.Command)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/v1/associations/container/99/launch", `{}`, nil))
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/v1/associations/vm/2/launch", `{"credential_id":1}`, nil))
}

func TestExport(t *testing.T) {
	c := newAPI(t)
	var resp exportResponse
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/exports", "", &resp))
	assert.Equal(t, "s3://inventory/exports/x.json", resp.Location)
}
