package records

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passvault/internal/vault/models"
)

// Filter narrows List results. Zero values mean no restriction.
type Filter struct {
	Category string
	Strength models.StrengthRating
}

// Repository describes persistence operations for password records.
// Implementations are backed by SQLite or PostgreSQL. Hash, salt and metrics
// columns are written once at creation and never updated; only usage
// bookkeeping changes afterwards.
type Repository interface {
	// Create inserts a new record and returns its store-assigned identifier.
	Create(ctx context.Context, rec *models.PasswordRecord) (int64, error)

	// GetByID returns a record by its identifier, or common.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*models.PasswordRecord, error)

	// List returns records matching the filter, ordered by creation time
	// ascending (identifier ascending as a tiebreaker).
	List(ctx context.Context, f Filter) ([]models.PasswordRecord, error)

	// IncrementUsage bumps the usage counter and sets the last-used
	// timestamp. Returns common.ErrRecordNotFound for an unknown identifier.
	IncrementUsage(ctx context.Context, id int64, usedAt time.Time) error
}
