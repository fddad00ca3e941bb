// Package migrations holds the versioned schema history of the weighttrack
// store, managed by goose. Version 1 is the legacy layout with plaintext
// passwords; version 2 introduces salted digests, the value/length CHECK
// constraints and the secondary indices; version 3 adds the local settings
// table. The store runs all pending
// migrations at open time, before any repository is constructed, so callers
// never observe a partially migrated database.
package migrations

import "embed"

// Migrations exposes the SQL migration files for goose.SetBaseFS. Go
// migrations in this package register themselves with goose in init.
//
//go:embed *.sql
var Migrations embed.FS
