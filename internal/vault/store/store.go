// Package store implements the vault store. It accepts plaintext passwords
// only as transient write-path parameters; every read path returns hash,
// salt and metrics types, so a stored plaintext is never retrievable by
// construction.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/records"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/repomanager"
)

// now is a test seam.
var now = time.Now

// Store persists salted password digests with their metrics and an
// append-only action ledger. One write transaction is in flight per store
// at a time; the record insert and its first ledger entry are atomic.
type Store struct {
	db *sql.DB
	m  repomanager.RepositoryManager
}

func New(db *sql.DB, m repomanager.RepositoryManager) *Store {
	return &Store{db: db, m: m}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateRecord salts and hashes the password, persists the record together
// with its "generated" ledger entry in one transaction, and returns the new
// identifier. On failure neither row is retained and the error matches
// common.ErrStoreWrite.
func (s *Store) CreateRecord(ctx context.Context, name, password string, metrics models.PasswordMetrics) (int64, error) {
	salt, err := cryptox.NewSalt()
	if err != nil {
		return 0, fmt.Errorf("%w: generating salt: %v", common.ErrStoreWrite, err)
	}

	rec := &models.PasswordRecord{
		Name:            name,
		PasswordHash:    cryptox.HashPassword(password, salt),
		Salt:            salt,
		PasswordMetrics: metrics,
		GeneratedAt:     now().UTC(),
	}

	var id int64
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = s.m.Records(tx).Create(ctx, rec)
		if err != nil {
			return err
		}
		return s.m.History(tx).Append(ctx, id, models.ActionGenerated, rec.GeneratedAt)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrStoreWrite, err)
	}

	return id, nil
}

// VerifyPassword recomputes the digest of candidate‖storedSalt and compares
// it to the stored hash in constant time. A mismatch returns false, not an
// error; an unknown identifier fails with common.ErrRecordNotFound.
func (s *Store) VerifyPassword(ctx context.Context, id int64, candidate string) (bool, error) {
	rec, err := s.m.Records(s.db).GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return cryptox.DigestsEqual(cryptox.HashPassword(candidate, rec.Salt), rec.PasswordHash), nil
}

// ListRecords returns records matching the filter, ordered by creation time
// ascending.
func (s *Store) ListRecords(ctx context.Context, f records.Filter) ([]models.PasswordRecord, error) {
	return s.m.Records(s.db).List(ctx, f)
}

// ListHistory returns the action ledger for one record, oldest first.
func (s *Store) ListHistory(ctx context.Context, id int64) ([]models.HistoryEntry, error) {
	return s.m.History(s.db).ListByRecord(ctx, id)
}

// RecordUsage increments the usage counter, sets the last-used timestamp and
// appends a "used" ledger entry, atomically.
func (s *Store) RecordUsage(ctx context.Context, id int64) error {
	usedAt := now().UTC()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.m.Records(tx).IncrementUsage(ctx, id, usedAt); err != nil {
			return err
		}
		return s.m.History(tx).Append(ctx, id, models.ActionUsed, usedAt)
	})
	if err != nil {
		if errors.Is(err, common.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrStoreWrite, err)
	}
	return nil
}
