// Package migrations embeds the schema for each supported SQL dialect.
package migrations

import "embed"

// FS holds <dialect>/NNN_name.up.sql files, applied in name order.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
