package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/infrakeeper/internal/flagx"
	"github.com/dmitrijs2005/infrakeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Durations accept
// "30s" style strings or integer nanoseconds. Fields left out of the file
// keep their current value.
type FileConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                   string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	AdminUser                   string         `json:"admin_user" yaml:"admin_user"`
	AdminPassword               string         `json:"admin_password" yaml:"admin_password"`
	InventoryFile               string         `json:"inventory_file" yaml:"inventory_file"`
	S3RootUser                  string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                    string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	ExportDir                   string         `json:"export_dir" yaml:"export_dir"`
	SummaryCacheTTL             timex.Duration `json:"summary_cache_ttl" yaml:"summary_cache_ttl"`
	LogLevel                    string         `json:"log_level" yaml:"log_level"`
}

// decodeFile picks the decoder from the extension: .yaml and .yml are YAML,
// anything else JSON.
func decodeFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (fc *FileConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, fc.DatabaseDSN)
	setString(&config.SecretKey, fc.SecretKey)
	if fc.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	setString(&config.AdminUser, fc.AdminUser)
	setString(&config.AdminPassword, fc.AdminPassword)
	setString(&config.InventoryFile, fc.InventoryFile)
	setString(&config.S3RootUser, fc.S3RootUser)
	setString(&config.S3RootPassword, fc.S3RootPassword)
	setString(&config.S3Bucket, fc.S3Bucket)
	setString(&config.S3Region, fc.S3Region)
	setString(&config.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&config.ExportDir, fc.ExportDir)
	if fc.SummaryCacheTTL.Duration > 0 {
		config.SummaryCacheTTL = fc.SummaryCacheTTL.Duration
	}
	setString(&config.LogLevel, fc.LogLevel)
}

// parseFile overlays the file named by -c / -config, if any.
// An unreadable or malformed file panics, as bad flags do.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	fc, err := decodeFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(config)
}
