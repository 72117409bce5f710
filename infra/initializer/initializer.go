package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/bankdash/infra"
	infra_cache "github.com/amirasaad/bankdash/infra/cache"
	infra_repository "github.com/amirasaad/bankdash/infra/repository"
	"github.com/amirasaad/bankdash/pkg/app"
	"github.com/amirasaad/bankdash/pkg/cache"
	"github.com/amirasaad/bankdash/pkg/config"
	"github.com/amirasaad/bankdash/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// memorySweep is how often the in-process cache evicts expired entries.
const memorySweep = time.Minute

// InitializeDependencies opens the store, runs the dataset barrier and
// builds the shared collaborators. The returned Deps own the database and
// cache connections; release them with Deps.Close.
func InitializeDependencies(cfg *config.App) (deps *app.Deps, err error) {
	logger := SetupLogger(cfg.Log)
	return InitializeWithLogger(context.Background(), cfg, logger)
}

// InitializeWithLogger is InitializeDependencies with a caller supplied logger.
func InitializeWithLogger(ctx context.Context, cfg *config.App, logger *slog.Logger) (deps *app.Deps, err error) {
	deps = &app.Deps{Logger: logger, Metrics: metrics.New()}
	defer func() {
		if err != nil {
			_ = deps.Close()
			deps = nil
		}
	}()

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return deps, err
	}
	deps.AddCloser(closeDB(db))

	store := infra_repository.New(db)
	if err := store.Migrate(ctx); err != nil {
		return deps, fmt.Errorf("failed to migrate store: %w", err)
	}
	if _, err := EnsureDataset(ctx, store, cfg.Dataset, time.Now().UTC(), logger); err != nil {
		return deps, err
	}
	counts, err := store.Counts(ctx)
	if err != nil {
		return deps, err
	}
	deps.Metrics.SetDatasetRows(counts.Customers, counts.Transactions)
	deps.Store = store

	deps.Cache, err = newCache(ctx, cfg.Redis, logger)
	if err != nil {
		return deps, fmt.Errorf("failed to create result cache: %w", err)
	}
	if c, ok := deps.Cache.(interface{ Close() error }); ok {
		deps.AddCloser(c.Close)
	}
	return deps, nil
}

// newCache selects redis when a URL is configured and memory otherwise.
func newCache(ctx context.Context, cfg *config.Redis, logger *slog.Logger) (cache.Cache, error) {
	if cfg == nil || cfg.URL == "" {
		logger.Info("Using in-memory result cache")
		return infra_cache.NewMemoryCache(memorySweep), nil
	}

	rc, err := infra_cache.NewRedisCache(cfg.URL, cfg.KeyPrefix, logger, func(o *redis.Options) {
		o.PoolSize = cfg.PoolSize
		o.DialTimeout = cfg.DialTimeout
		o.ReadTimeout = cfg.ReadTimeout
		o.WriteTimeout = cfg.WriteTimeout
	})
	if err != nil {
		return nil, err
	}
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		_ = rc.Close()
		return nil, errors.Join(errors.New("redis unreachable"), err)
	}
	logger.Info("Using redis result cache", "prefix", cfg.KeyPrefix)
	return rc, nil
}

func closeDB(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}
