package history

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
)

// PostgresRepository implements Repository over a DBTX for PostgreSQL.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, passwordID int64, action models.Action, at time.Time) error {
	query := `INSERT INTO password_history (password_id, action, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, passwordID, action, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByRecord(ctx context.Context, passwordID int64) ([]models.HistoryEntry, error) {
	query := `SELECT id, password_id, action, created_at FROM password_history WHERE password_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, passwordID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.PasswordID, &e.Action, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
