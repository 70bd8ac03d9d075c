// Package migrations embeds the goose schema migrations, one directory per
// SQL dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Dir returns the directory inside Migrations holding the files for the
// given goose dialect.
func Dir(dialect string) string {
	if dialect == "sqlite" || dialect == "sqlite3" {
		return "sqlite"
	}
	return "postgres"
}
