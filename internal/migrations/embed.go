// Package migrations provides embedded SQL migration files.
package migrations

import (
	_ "embed"
)

// InitialSQL creates the metadata cache and event log tables.
//
//go:embed sql/001_initial.sql
var InitialSQL string
