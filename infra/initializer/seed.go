package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/bankdash/pkg/config"
	"github.com/amirasaad/bankdash/pkg/generator"
	"github.com/amirasaad/bankdash/pkg/repository"
)

// EnsureDataset populates an empty store with a generated dataset. A store
// that already holds transactions is left untouched, so restarting against
// the same database never regenerates or duplicates rows. It must complete
// before any analytics query is served.
func EnsureDataset(
	ctx context.Context,
	store repository.DatasetWriter,
	cfg *config.Dataset,
	now time.Time,
	logger *slog.Logger,
) (seeded bool, err error) {
	populated, err := store.IsPopulated(ctx)
	if err != nil {
		return false, fmt.Errorf("check dataset: %w", err)
	}
	if populated {
		logger.Info("Dataset already present; skipping generation")
		return false, nil
	}

	gen := generator.NewDefault()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	started := time.Now()
	ds, err := gen.Generate(generator.Config{
		Customers:    cfg.Customers,
		Transactions: cfg.Transactions,
		Now:          now,
	})
	if err != nil {
		return false, fmt.Errorf("generate dataset: %w", err)
	}
	if err := store.BulkInsert(ctx, ds.Customers, ds.Transactions); err != nil {
		return false, fmt.Errorf("persist dataset: %w", err)
	}

	logger.Info("Dataset generated",
		"customers", len(ds.Customers),
		"transactions", len(ds.Transactions),
		"took", time.Since(started),
	)
	return true, nil
}
