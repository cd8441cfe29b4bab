package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/vault/migrations"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/history"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/records"
	"github.com/pressly/goose/v3"
)

type SQLiteManager struct{}

func NewSQLite() *SQLiteManager {
	return &SQLiteManager{}
}

func (m *SQLiteManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, "sqlite")
}

func (m *SQLiteManager) Records(db dbx.DBTX) records.Repository {
	return records.NewSQLiteRepository(db)
}

func (m *SQLiteManager) History(db dbx.DBTX) history.Repository {
	return history.NewSQLiteRepository(db)
}
