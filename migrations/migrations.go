package migrations

import "embed"

// FS holds the schema and seed files, applied in name order.
//
//go:embed *.sql
var FS embed.FS
