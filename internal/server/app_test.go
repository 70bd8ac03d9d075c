package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

func TestNewApp_MemoryBackend(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	_, err = app.operators.Login(context.Background(), "admin", "admin")
	assert.NoError(t, err)

	sum, err := app.dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Servers)
}

func TestNewApp_BadInventoryFile(t *testing.T) {
	c := testConfig()
	c.InventoryFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestNewApp_InventoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("servers:\n  - id: 1\n    hostname: esx-lab\n    ip_address: 10.9.0.1\n    total_cpu_cores: 8\n"), 0o600))

	c := testConfig()
	c.InventoryFile = path
	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	sum, err := app.dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Servers)
	assert.Equal(t, 8, sum.TotalCPUCores)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
