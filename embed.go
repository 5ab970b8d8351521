// Package crm holds assets embedded at the repository root, currently the
// goose SQL migrations applied by the migrate subcommand and the test harness.
package crm

import "embed"

// Migrations contains the goose migration files for the CRM schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
