// Package migrations embeds the postgres schema applied by cmd/migrate.
package migrations

import "embed"

// SchemaFile is the name of the schema script inside Files.
const SchemaFile = "report_tracker_schema.sql"

//go:embed *.sql
var Files embed.FS
