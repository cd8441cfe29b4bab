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

type PostgresManager struct{}

func NewPostgres() *PostgresManager {
	return &PostgresManager{}
}

func (m *PostgresManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, "postgres")
}

func (m *PostgresManager) Records(db dbx.DBTX) records.Repository {
	return records.NewPostgresRepository(db)
}

func (m *PostgresManager) History(db dbx.DBTX) history.Repository {
	return history.NewPostgresRepository(db)
}
