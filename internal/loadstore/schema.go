package loadstore

import (
	_ "embed"
)

// Schema creates the tables the repo reads and writes. Migrations are owned
// by the surrounding application, this is what the tests and local runs use.
//
//go:embed schema.sql
var Schema string
