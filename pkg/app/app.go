package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/bankdash/pkg/cache"
	"github.com/amirasaad/bankdash/pkg/config"
	"github.com/amirasaad/bankdash/pkg/metrics"
	"github.com/amirasaad/bankdash/pkg/repository"
	"github.com/amirasaad/bankdash/pkg/service/analytics"
	"github.com/amirasaad/bankdash/pkg/service/signals"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Store   repository.Store
	Cache   cache.Cache
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	closers []func() error
}

// AddCloser registers a release function run by Close in reverse order.
func (d *Deps) AddCloser(fn func() error) {
	d.closers = append(d.closers, fn)
}

// Close releases every registered resource.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

type App struct {
	Deps             *Deps
	Config           *config.App
	AnalyticsService *analytics.Service
	SignalsService   *signals.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}

	var ttl time.Duration
	if cfg.Analytics != nil {
		ttl = cfg.Analytics.CacheTTL
	}
	app.AnalyticsService = analytics.NewService(analytics.Deps{
		Store:    deps.Store,
		Cache:    deps.Cache,
		CacheTTL: ttl,
		Metrics:  deps.Metrics,
		Logger:   deps.Logger,
	})

	var sc signals.Config
	if s := cfg.Signals; s != nil {
		sc = signals.Config{
			Region:           s.Region,
			Steps:            s.JobSteps,
			StepDelay:        s.JobStepDelay,
			SpawnProbability: s.SpawnProbability,
			MaxConcurrent:    s.MaxConcurrent,
			JobHistory:       s.JobHistory,
		}
	} else {
		sc = signals.DefaultConfig()
	}
	app.SignalsService = signals.NewService(signals.Deps{
		Config:  sc,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
	})
	return app
}

// Shutdown stops background jobs, then releases infrastructure.
func (a *App) Shutdown(ctx context.Context) error {
	return errors.Join(a.SignalsService.Shutdown(ctx), a.Deps.Close())
}
