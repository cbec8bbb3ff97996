// Package migrations embute os arquivos SQL do goose para que o binário de migração
// e os testes de integração usem o mesmo esquema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
