// Package repomanager builds dialect-specific repositories over a shared
// DBTX, so the store can run the same code against *sql.DB or *sql.Tx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/history"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/records"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Records(db dbx.DBTX) records.Repository
	History(db dbx.DBTX) history.Repository
}
