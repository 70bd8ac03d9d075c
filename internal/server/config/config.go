// Package config handles configuration for the server component,
// including defaults, a JSON or YAML file overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the infrakeeper server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses of the two transports.
//   - DatabaseDSN: postgres:// (pgx) or sqlite:// / file: (modernc). Empty keeps
//     credentials and notes in memory.
//   - SecretKey: HMAC secret for signing JWTs (HS256) and the key material for
//     sealing stored credential passwords. Do not use the default in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - AdminUser / AdminPassword: operator seeded on first start.
//   - InventoryFile: YAML catalog; empty uses the built-in seed inventory.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint:
//     export target. With an empty bucket exports go to ExportDir.
//   - SummaryCacheTTL: how long the dashboard summary is cached.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC            string
	EndpointAddrHTTP            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	AdminUser                   string
	AdminPassword               string
	InventoryFile               string
	S3RootUser                  string
	S3RootPassword              string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
	ExportDir                   string
	SummaryCacheTTL             time.Duration
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.AdminUser = "admin"
	c.AdminPassword = "admin"
	c.InventoryFile = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.ExportDir = "exports"
	c.SummaryCacheTTL = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
