// Package cli implements the interactive PassVault shell: generating
// password batches, listing and verifying records, and exporting the vault.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/passvault/internal/config"
	"github.com/dmitrijs2005/passvault/internal/filex"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/vault/analyzer"
	"github.com/dmitrijs2005/passvault/internal/vault/export"
	"github.com/dmitrijs2005/passvault/internal/vault/generator"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/records"
	"github.com/dmitrijs2005/passvault/internal/vault/service"
	"github.com/dmitrijs2005/passvault/internal/vault/store"
)

// vaultStore is the store surface the shell uses. Read operations return
// digests and metrics only.
type vaultStore interface {
	VerifyPassword(ctx context.Context, id int64, candidate string) (bool, error)
	RecordUsage(ctx context.Context, id int64) error
	ListRecords(ctx context.Context, f records.Filter) ([]models.PasswordRecord, error)
	ListHistory(ctx context.Context, id int64) ([]models.HistoryEntry, error)
	Close() error
}

type batchService interface {
	GenerateBatch(ctx context.Context, req service.GenerationRequest) ([]service.BatchItem, error)
}

type fileExporter interface {
	JSON(ctx context.Context) (string, error)
	CSV(ctx context.Context) (string, error)
}

type objectUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	service  batchService
	store    vaultStore
	exporter fileExporter
	uploader objectUploader
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	vaultDir, err := filex.EnsureVaultDir(cfg.BaseDir, cfg.VaultName)
	if err != nil {
		return nil, fmt.Errorf("initializing vault directory: %w", err)
	}

	dsn := cfg.DatabaseDSN
	if dsn == "" && cfg.DatabaseBackend == store.BackendSQLite {
		dsn = filepath.Join(vaultDir, "password_vault.db")
	}

	st, err := store.Open(ctx, cfg.DatabaseBackend, dsn)
	if err != nil {
		return nil, fmt.Errorf("initializing store: %w", err)
	}

	app := &App{
		config:   cfg,
		logger:   logger,
		service:  service.New(generator.New(), analyzer.New(), st, logger),
		store:    st,
		exporter: export.NewExporter(st, filepath.Join(vaultDir, "exports")),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	if cfg.S3Bucket != "" {
		app.uploader = export.NewS3Uploader(export.S3Config{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
		})
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "closing store", "error", err)
		}
	}()
	a.Root(ctx)
}
