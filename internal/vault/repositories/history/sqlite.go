package history

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, passwordID int64, action models.Action, at time.Time) error {
	query := `INSERT INTO password_history (password_id, action, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, passwordID, action, at)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByRecord(ctx context.Context, passwordID int64) ([]models.HistoryEntry, error) {
	query := `SELECT id, password_id, action, created_at FROM password_history WHERE password_id = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, passwordID)
	if err != nil {
		return nil, fmt.Errorf("failed to select history: %w", err)
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
