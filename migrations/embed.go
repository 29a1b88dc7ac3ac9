// Package migrations встраивает SQL-миграции, чтобы goose мог применять их
// программно при старте сервиса, без файлов на диске.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
