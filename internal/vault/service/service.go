// Package service orchestrates one generation batch: generator → analyzer →
// store, per requested password. Plaintext passwords exist only in the
// returned batch items; the service keeps no reference after the call.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/vault/analyzer"
	"github.com/dmitrijs2005/passvault/internal/vault/generator"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
	"github.com/dmitrijs2005/passvault/internal/vault/profile"
)

// Storer is the write path the service needs from the vault store. The
// plaintext password is a transient parameter; no read path for it exists.
type Storer interface {
	CreateRecord(ctx context.Context, name, password string, metrics models.PasswordMetrics) (int64, error)
}

// GenerationRequest describes one batch.
type GenerationRequest struct {
	Count     int
	MinLength int
	MaxLength int
	Profile   profile.ID
}

// BatchItem is one successfully generated and persisted password. Password
// is returned to the caller once and is not recoverable afterwards.
type BatchItem struct {
	ID       int64
	Name     string
	Password string
	Metrics  models.PasswordMetrics
}

// BatchItemError attributes a failure to a single batch item.
type BatchItemError struct {
	Index int
	Name  string
	Err   error
}

func (e *BatchItemError) Error() string {
	return fmt.Sprintf("item %d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e *BatchItemError) Unwrap() error {
	return e.Err
}

type VaultService struct {
	generator *generator.Generator
	analyzer  *analyzer.Analyzer
	store     Storer
	logger    logging.Logger
}

func New(g *generator.Generator, a *analyzer.Analyzer, store Storer, logger logging.Logger) *VaultService {
	return &VaultService{generator: g, analyzer: a, store: store, logger: logger}
}

// GenerateBatch produces req.Count passwords, scores each and persists its
// record. Invalid input fails the whole batch upfront; a store failure on
// one item does not stop the rest. The returned error, if any, joins one
// BatchItemError per failed item, so a caller can tell "5 of 5" from
// "4 of 5, item 3 failed".
func (s *VaultService) GenerateBatch(ctx context.Context, req GenerationRequest) ([]BatchItem, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", common.ErrInvalidRange, req.Count)
	}
	if req.MinLength <= 0 || req.MaxLength <= 0 || req.MinLength > req.MaxLength {
		return nil, fmt.Errorf("%w: [%d, %d]", common.ErrInvalidRange, req.MinLength, req.MaxLength)
	}
	if _, err := profile.Lookup(req.Profile); err != nil {
		return nil, err
	}

	items := make([]BatchItem, 0, req.Count)
	var itemErrs []error

	for i := range req.Count {
		name := fmt.Sprintf("Generated-%d", i+1)

		item, err := s.generateOne(ctx, name, req)
		if err != nil {
			s.logger.Error(ctx, "batch item failed", "item", i+1, "name", name, "error", err)
			itemErrs = append(itemErrs, &BatchItemError{Index: i, Name: name, Err: err})
			continue
		}

		s.logger.Info(ctx, "record stored", "id", item.ID, "name", name,
			"strength", item.Metrics.StrengthRating, "score", item.Metrics.ComplexityScore)
		items = append(items, *item)
	}

	return items, errors.Join(itemErrs...)
}

func (s *VaultService) generateOne(ctx context.Context, name string, req GenerationRequest) (*BatchItem, error) {
	password, err := s.generator.Generate(req.Profile, req.MinLength, req.MaxLength)
	if err != nil {
		return nil, fmt.Errorf("generating: %w", err)
	}

	metrics, err := s.analyzer.Analyze(password)
	if err != nil {
		return nil, fmt.Errorf("analyzing: %w", err)
	}

	id, err := s.store.CreateRecord(ctx, name, password, metrics)
	if err != nil {
		return nil, err
	}

	return &BatchItem{ID: id, Name: name, Password: password, Metrics: metrics}, nil
}
