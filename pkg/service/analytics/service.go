// Package analytics answers the dashboard's read-only questions about the
// persisted dataset: summary statistics, recent transactions, daily and
// per-category trends, fraud alerts, customer distributions and risk metrics.
//
// Aggregates are memoized in a cache.Cache for a configurable TTL and
// concurrent misses for the same aggregate share a single store round trip.
// Listings that take a caller supplied limit always go to the store.
package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/bankdash/pkg/cache"
	"github.com/amirasaad/bankdash/pkg/metrics"
	"github.com/amirasaad/bankdash/pkg/repository"
	"golang.org/x/sync/singleflight"
)

// TrendWindow is how far back daily trends look from query time.
const TrendWindow = 30 * 24 * time.Hour

// Cache keys for memoized aggregates.
const (
	keyDashboardStats       = "analytics:dashboard_stats"
	keyTransactionAnalytics = "analytics:transaction_analytics"
	keyFraudAlerts          = "analytics:fraud_alerts"
	keyCustomerAnalytics    = "analytics:customer_analytics"
	keyRiskAssessment       = "analytics:risk_assessment"
)

// Deps are the collaborators of Service. Only Store is required.
type Deps struct {
	Store    repository.AnalyticsReader
	Cache    cache.Cache
	CacheTTL time.Duration
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Now      func() time.Time
}

// Service computes dashboard aggregates over a populated store.
type Service struct {
	store   repository.AnalyticsReader
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
	group   singleflight.Group
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps Deps) *Service {
	s := &Service{
		store:   deps.Store,
		cache:   deps.Cache,
		ttl:     deps.CacheTTL,
		metrics: deps.Metrics,
		logger:  deps.Logger,
		now:     deps.Now,
	}
	if s.cache == nil || s.ttl <= 0 {
		s.cache = cache.Nop{}
		s.ttl = 0
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("service", "analytics")
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Invalidate drops every memoized aggregate so the next read goes to the
// store. Use it after the dataset changes underneath a shared cache.
func (s *Service) Invalidate(ctx context.Context) error {
	var errs []error
	for _, key := range []string{
		keyDashboardStats,
		keyTransactionAnalytics,
		keyFraudAlerts,
		keyCustomerAnalytics,
		keyRiskAssessment,
	} {
		if err := s.cache.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// observe logs and records the outcome of one operation. Call it deferred
// with the named error return.
func (s *Service) observe(op string, started time.Time, err *error) {
	s.metrics.ObserveQuery(op, started, *err)
	if *err != nil {
		s.logger.Error(op+" failed", "error", *err)
		return
	}
	s.logger.Debug(op+" successful", "took", time.Since(started))
}

// memoize returns the cached value under key or computes it with load.
// Cache failures degrade to a direct load. The shared load outlives the
// caller that started it; each caller still returns when its own ctx ends.
func memoize[T any](ctx context.Context, s *Service, key string, load func(context.Context) (T, error)) (T, error) {
	if s.ttl <= 0 {
		return load(ctx)
	}

	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache get failed", "key", key, "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			s.metrics.CacheHit()
			return v, nil
		}
		s.logger.Warn("discarding undecodable cache entry", "key", key)
	}
	s.metrics.CacheMiss()

	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		v, err := load(shared)
		if err != nil {
			return v, err
		}
		if raw, err := json.Marshal(v); err != nil {
			s.logger.Warn("cache encode failed", "key", key, "error", err)
		} else if err := s.cache.Set(shared, key, raw, s.ttl); err != nil {
			s.logger.Warn("cache set failed", "key", key, "error", err)
		}
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
