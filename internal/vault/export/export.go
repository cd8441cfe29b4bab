// Package export serializes the vault's record set (digests, salts and
// metrics — never plaintext) to JSON or CSV files, with an optional upload
// to an S3-compatible backend.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dmitrijs2005/passvault/internal/filex"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
	"github.com/dmitrijs2005/passvault/internal/vault/repositories/records"
)

// now is a test seam.
var now = time.Now

// RecordLister is the read surface the exporter needs from the vault store.
type RecordLister interface {
	ListRecords(ctx context.Context, f records.Filter) ([]models.PasswordRecord, error)
}

type Exporter struct {
	store RecordLister
	dir   string
}

// NewExporter returns an Exporter writing files into dir.
func NewExporter(store RecordLister, dir string) *Exporter {
	return &Exporter{store: store, dir: dir}
}

// JSON writes the full record set as indented JSON and returns the file path.
func (e *Exporter) JSON(ctx context.Context) (string, error) {
	recs, err := e.store.ListRecords(ctx, records.Filter{})
	if err != nil {
		return "", fmt.Errorf("listing records: %w", err)
	}

	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshaling records: %w", err)
	}

	path, err := e.exportPath("json")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

var csvHeader = []string{
	"id", "name", "password_hash", "salt",
	"complexity_score", "strength_rating",
	"total_length", "uppercase_count", "lowercase_count", "digit_count", "special_char_count",
	"entropy", "generated_at", "last_used_at", "usage_count", "notes", "category",
}

// CSV writes the full record set as CSV and returns the file path.
func (e *Exporter) CSV(ctx context.Context) (string, error) {
	recs, err := e.store.ListRecords(ctx, records.Filter{})
	if err != nil {
		return "", fmt.Errorf("listing records: %w", err)
	}

	path, err := e.exportPath("csv")
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("creating export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}
	for _, r := range recs {
		if err := w.Write(csvRow(&r)); err != nil {
			return "", fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing export: %w", err)
	}
	return path, nil
}

func (e *Exporter) exportPath(ext string) (string, error) {
	dir, err := filex.EnsureDir(e.dir)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("vault_export_%s.%s", now().Format("20060102_150405"), ext)
	return filepath.Join(dir, name), nil
}

func csvRow(r *models.PasswordRecord) []string {
	lastUsed := ""
	if r.LastUsedAt != nil {
		lastUsed = r.LastUsedAt.Format(time.RFC3339)
	}
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		r.PasswordHash,
		r.Salt,
		strconv.Itoa(r.ComplexityScore),
		string(r.StrengthRating),
		strconv.Itoa(r.TotalLength),
		strconv.Itoa(r.UppercaseCount),
		strconv.Itoa(r.LowercaseCount),
		strconv.Itoa(r.DigitCount),
		strconv.Itoa(r.SpecialCharCount),
		strconv.FormatFloat(r.Entropy, 'f', -1, 64),
		r.GeneratedAt.Format(time.RFC3339),
		lastUsed,
		strconv.FormatInt(r.UsageCount, 10),
		deref(r.Notes),
		deref(r.Category),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
