package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/vault/repositories/repomanager"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Open connects to the backing database, runs pending migrations and returns
// a ready Store. Initialization failures here are fatal to the vault
// session: nothing downstream can proceed without the schema in place.
func Open(ctx context.Context, backend, dsn string) (*Store, error) {
	var (
		driver string
		m      repomanager.RepositoryManager
	)

	switch backend {
	case BackendSQLite:
		driver = "sqlite"
		m = repomanager.NewSQLite()
	case BackendPostgres:
		driver = "pgx"
		m = repomanager.NewPostgres()
	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", backend)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if backend == BackendSQLite {
		// SQLite allows a single writer; a one-connection pool also keeps
		// in-memory databases on one handle.
		db.SetMaxOpenConns(1)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return New(db, m), nil
}
