package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-l string   HTTP bind address (e.g., ":8080")
//	-d string   database DSN (postgres://..., sqlite://...; empty = memory)
//	-s string   JWT / sealing secret key
//	-t int      access token validity, minutes
//	-U string   admin operator username
//	-P string   admin operator password
//	-i string   inventory YAML file
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name (empty = export to -x)
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-x string   local export directory
//	-m int      summary cache TTL, seconds
//	-v string   log level
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so -c / -config can share the command line.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-l", "-d", "-s", "-t", "-U", "-P", "-i",
		"-u", "-p", "-b", "-g", "-e", "-x", "-m", "-v",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.StringVar(&config.AdminUser, "U", config.AdminUser, "admin username")
	fs.StringVar(&config.AdminPassword, "P", config.AdminPassword, "admin password")
	fs.StringVar(&config.InventoryFile, "i", config.InventoryFile, "inventory YAML file")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.ExportDir, "x", config.ExportDir, "local export directory")

	summaryTTL := fs.Int("m", int(config.SummaryCacheTTL.Seconds()), "summary cache TTL (in seconds)")

	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.SummaryCacheTTL = time.Duration(*summaryTTL) * time.Second
}
