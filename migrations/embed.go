// Package migrations holds the goose SQL migrations, embedded into every
// binary that needs to apply them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
