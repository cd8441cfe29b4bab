package history

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passvault/internal/vault/models"
)

// Repository describes the append-only action ledger. Entries reference a
// password record and are never updated or deleted.
type Repository interface {
	// Append records an action for the given password record.
	Append(ctx context.Context, passwordID int64, action models.Action, at time.Time) error

	// ListByRecord returns the ledger entries for one record, oldest first.
	ListByRecord(ctx context.Context, passwordID int64) ([]models.HistoryEntry, error)
}
