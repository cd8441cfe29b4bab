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

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rec *models.PasswordRecord) (int64, error) {
	query := `INSERT INTO passwords (
			name, password_hash, salt,
			complexity_score, strength_rating,
			total_length, uppercase_count, lowercase_count, digit_count, special_char_count,
			entropy, generated_at, usage_count, notes, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		rec.Name, rec.PasswordHash, rec.Salt,
		rec.ComplexityScore, rec.StrengthRating,
		rec.TotalLength, rec.UppercaseCount, rec.LowercaseCount, rec.DigitCount, rec.SpecialCharCount,
		rec.Entropy, rec.GeneratedAt, rec.Notes, rec.Category)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	rec.ID = id
	return id, nil
}

const recordColumns = `id, name, password_hash, salt,
	complexity_score, strength_rating,
	total_length, uppercase_count, lowercase_count, digit_count, special_char_count,
	entropy, generated_at, last_used_at, usage_count, notes, category`

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.PasswordRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM passwords WHERE id = ?`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrRecordNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) List(ctx context.Context, f Filter) ([]models.PasswordRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM passwords`

	var conds []string
	var args []any
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if f.Strength != "" {
		conds = append(conds, "strength_rating = ?")
		args = append(args, f.Strength)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY generated_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
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

func (r *SQLiteRepository) IncrementUsage(ctx context.Context, id int64, usedAt time.Time) error {
	query := `UPDATE passwords SET usage_count = usage_count + 1, last_used_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, usedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update usage: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrRecordNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*models.PasswordRecord, error) {
	rec := &models.PasswordRecord{}
	var lastUsed sql.NullTime
	var notes, category sql.NullString

	err := s.Scan(&rec.ID, &rec.Name, &rec.PasswordHash, &rec.Salt,
		&rec.ComplexityScore, &rec.StrengthRating,
		&rec.TotalLength, &rec.UppercaseCount, &rec.LowercaseCount, &rec.DigitCount, &rec.SpecialCharCount,
		&rec.Entropy, &rec.GeneratedAt, &lastUsed, &rec.UsageCount, &notes, &category)
	if err != nil {
		return nil, err
	}

	if lastUsed.Valid {
		t := lastUsed.Time
		rec.LastUsedAt = &t
	}
	if notes.Valid {
		v := notes.String
		rec.Notes = &v
	}
	if category.Valid {
		v := category.String
		rec.Category = &v
	}
	return rec, nil
}
