package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from json", func(t *testing.T) {
		path := writeTemp(t, "cfg.json", `{
			"endpoint_addr_grpc": "www.example:9000",
			"database_dsn": "sqlite://inventory.db",
			"secret_key": "my_secret_key",
			"access_token_validity_duration": "1m",
			"s3_bucket": "bucket",
			"summary_cache_ttl": 5000000000
		}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "sqlite://inventory.db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, 5*time.Second, cfg.SummaryCacheTTL)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP, "absent keys keep defaults")
	})

	t.Run("loads from yaml", func(t *testing.T) {
		path := writeTemp(t, "cfg.yaml", `
endpoint_addr_http: ":9999"
inventory_file: /etc/infrakeeper/inventory.yaml
summary_cache_ttl: 2m
log_level: debug
`)
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
		assert.Equal(t, "/etc/infrakeeper/inventory.yaml", cfg.InventoryFile)
		assert.Equal(t, 2*time.Minute, cfg.SummaryCacheTTL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no config flag keeps values", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrGRPC: "defaults:1234", SecretKey: "key"}
		parseFile(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, "key", cfg.SecretKey)
	})

	t.Run("invalid file panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(t.TempDir(), "none.yaml")}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
