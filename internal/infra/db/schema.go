package db

import _ "embed"

// Schema is the full DDL applied to a fresh database.
//
//go:embed schema.sql
var Schema string
