package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
)

// PostgresRepository implements Repository over a DBTX for shared vaults
// backed by PostgreSQL.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.PasswordRecord) (int64, error) {
	query := `INSERT INTO passwords (
			name, password_hash, salt,
			complexity_score, strength_rating,
			total_length, uppercase_count, lowercase_count, digit_count, special_char_count,
			entropy, generated_at, usage_count, notes, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, $13, $14)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		rec.Name, rec.PasswordHash, rec.Salt,
		rec.ComplexityScore, rec.StrengthRating,
		rec.TotalLength, rec.UppercaseCount, rec.LowercaseCount, rec.DigitCount, rec.SpecialCharCount,
		rec.Entropy, rec.GeneratedAt, rec.Notes, rec.Category).Scan(&rec.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rec.ID, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.PasswordRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM passwords WHERE id = $1`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrRecordNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]models.PasswordRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM passwords`

	var conds []string
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Strength != "" {
		args = append(args, f.Strength)
		conds = append(conds, fmt.Sprintf("strength_rating = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY generated_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.PasswordRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) IncrementUsage(ctx context.Context, id int64, usedAt time.Time) error {
	query := `UPDATE passwords SET usage_count = usage_count + 1, last_used_at = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, usedAt, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrRecordNotFound
	}
	return nil
}
