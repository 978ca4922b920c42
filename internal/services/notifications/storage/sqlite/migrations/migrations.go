// Package migrations embeds the guild store schema.
package migrations

import "embed"

// FS holds the forward-only SQL migrations.
//
//go:embed *.sql
var FS embed.FS
