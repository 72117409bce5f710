package analytics_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirasaad/bankdash/infra/cache"
	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/dto"
	"github.com/amirasaad/bankdash/pkg/generator"
	"github.com/amirasaad/bankdash/pkg/repository"
	"github.com/amirasaad/bankdash/pkg/service/analytics"
	"github.com/amirasaad/bankdash/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func newService(store repository.AnalyticsReader) *analytics.Service {
	return analytics.NewService(analytics.Deps{
		Store: store,
		Now:   func() time.Time { return testutils.Anchor },
	})
}

func TestScenario(t *testing.T) {
	store, _ := testutils.NewSQLiteStore(t)
	testutils.SeedStore(t, store, testutils.ScenarioCustomers(), testutils.ScenarioTransactions())
	svc := newService(store)
	ctx := context.Background()

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalTransactions)
	assert.InDelta(t, 250.00, stats.TotalVolume, 0.001)
	assert.Equal(t, int64(2), stats.ActiveCustomers)
	assert.Equal(t, int64(1), stats.FraudAlerts)
	assert.InDelta(t, 175.25, stats.AvgTransaction, 0.001)
	assert.Equal(t, int64(1), stats.HighRiskAccounts)

	alerts, err := svc.FraudAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "TXN00000001", alerts[0].TransactionID)
	assert.Equal(t, "CUST000001", alerts[0].CustomerID)
	assert.Equal(t, "Unusual Shopping transaction pattern detected", alerts[0].Reason)
	assert.Equal(t, "pending", alerts[0].Status)

	risk, err := svc.RiskAssessment(ctx)
	require.NoError(t, err)
	require.Len(t, risk.RiskMetrics, 3)
	assert.Equal(t, domain.RiskLow, risk.RiskMetrics[0].RiskLevel)
	assert.Equal(t, int64(1), risk.RiskMetrics[0].TransactionCount)
	assert.InDelta(t, 80.0, risk.RiskMetrics[0].AvgFraudScore, 0.001)
	assert.InDelta(t, 250.0, risk.RiskMetrics[0].TotalAmount, 0.001)
	assert.Equal(t, dto.RiskMetric{RiskLevel: domain.RiskHigh}, risk.RiskMetrics[2])

	trends, err := svc.TransactionAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, trends.DailyTrends, 1)
	assert.Equal(t, "2025-06-15", trends.DailyTrends[0].Date)
	assert.Equal(t, int64(2), trends.DailyTrends[0].Count)
	assert.InDelta(t, 350.50, trends.DailyTrends[0].Volume, 0.001)
	require.Len(t, trends.CategoryBreakdown, 2)
	assert.Equal(t, "Shopping", trends.CategoryBreakdown[0].Category)

	customers, err := svc.CustomerAnalytics(ctx)
	require.NoError(t, err)
	assert.Len(t, customers.SegmentDistribution, 3)
	assert.Len(t, customers.RiskDistribution, 3)
}

func TestEmptyStore(t *testing.T) {
	store, _ := testutils.NewSQLiteStore(t)
	svc := newService(store)
	ctx := context.Background()

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.DashboardStats{}, *stats)

	alerts, err := svc.FraudAlerts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)

	risk, err := svc.RiskAssessment(ctx)
	require.NoError(t, err)
	require.Len(t, risk.RiskMetrics, 3)
	for _, m := range risk.RiskMetrics {
		assert.Zero(t, m.TransactionCount)
		assert.Zero(t, m.AvgFraudScore)
		assert.Zero(t, m.TotalAmount)
	}
}

type GeneratedDatasetSuite struct {
	suite.Suite
	svc     *analytics.Service
	dataset *generator.Dataset
}

func (s *GeneratedDatasetSuite) SetupSuite() {
	store, _ := testutils.NewSQLiteStore(s.T())
	ds, err := generator.NewSeeded(11).Generate(generator.DefaultConfig(testutils.Anchor))
	s.Require().NoError(err)
	testutils.SeedStore(s.T(), store, ds.Customers, ds.Transactions)
	s.dataset = ds
	s.svc = newService(store)
}

func TestGeneratedDatasetSuite(t *testing.T) {
	suite.Run(t, new(GeneratedDatasetSuite))
}

func (s *GeneratedDatasetSuite) TestFraudSummaryMatchesListing() {
	ctx := context.Background()
	stats, err := s.svc.DashboardStats(ctx)
	s.Require().NoError(err)
	alerts, err := s.svc.FraudAlerts(ctx)
	s.Require().NoError(err)

	if stats.FraudAlerts <= domain.FraudAlertLimit {
		s.Equal(int(stats.FraudAlerts), len(alerts))
	} else {
		s.Len(alerts, domain.FraudAlertLimit)
	}
	for i, a := range alerts {
		s.Greater(a.FraudScore, domain.FraudAlertThreshold)
		if i > 0 {
			s.LessOrEqual(a.FraudScore, alerts[i-1].FraudScore)
		}
	}
}

func (s *GeneratedDatasetSuite) TestListTransactionsLimits() {
	ctx := context.Background()

	none, err := s.svc.ListTransactions(ctx, 0)
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)

	recent, err := s.svc.ListTransactions(ctx, 100)
	s.Require().NoError(err)
	s.Len(recent, 100)
	for i := 1; i < len(recent); i++ {
		s.False(recent[i].Timestamp.After(recent[i-1].Timestamp))
	}

	_, err = s.svc.ListTransactions(ctx, -1)
	s.ErrorIs(err, domain.ErrInvalidLimit)
}

func (s *GeneratedDatasetSuite) TestListCustomersLimits() {
	ctx := context.Background()

	customers, err := s.svc.ListCustomers(ctx, 100)
	s.Require().NoError(err)
	s.Len(customers, 100)
	s.Equal("CUST000001", customers[0].ID)

	all, err := s.svc.ListCustomers(ctx, 10_000)
	s.Require().NoError(err)
	s.Len(all, len(s.dataset.Customers))

	_, err = s.svc.ListCustomers(ctx, -5)
	s.ErrorIs(err, domain.ErrInvalidLimit)
}

func (s *GeneratedDatasetSuite) TestCategoryVolumesSumToTotal() {
	out, err := s.svc.TransactionAnalytics(context.Background())
	s.Require().NoError(err)

	var sum, expected float64
	var count int64
	for _, c := range out.CategoryBreakdown {
		sum += c.Volume
		count += c.Count
	}
	for _, tx := range s.dataset.Transactions {
		expected += tx.Amount
	}
	s.Equal(int64(len(s.dataset.Transactions)), count)
	s.InDelta(expected, sum, 0.01*float64(len(out.CategoryBreakdown)))

	s.NotEmpty(out.DailyTrends)
	earliest := testutils.Anchor.Add(-analytics.TrendWindow).Format(time.DateOnly)
	for _, d := range out.DailyTrends {
		s.GreaterOrEqual(d.Date, earliest)
	}
}

func (s *GeneratedDatasetSuite) TestRiskAssessmentCoversAllLevels() {
	out, err := s.svc.RiskAssessment(context.Background())
	s.Require().NoError(err)
	s.Require().Len(out.RiskMetrics, len(domain.RiskLevels))

	var total int64
	for i, m := range out.RiskMetrics {
		s.Equal(domain.RiskLevels[i], m.RiskLevel)
		total += m.TransactionCount
	}
	s.Equal(int64(len(s.dataset.Transactions)), total)
}

// countingStore records calls to RiskMetrics and fails when err is set.
type countingStore struct {
	repository.AnalyticsReader
	calls   atomic.Int32
	err     error
	release chan struct{}
}

func (c *countingStore) RiskMetrics(context.Context) ([]dto.RiskMetric, error) {
	c.calls.Add(1)
	if c.release != nil {
		<-c.release
	}
	if c.err != nil {
		return nil, c.err
	}
	return []dto.RiskMetric{{RiskLevel: domain.RiskMedium, TransactionCount: 3, AvgFraudScore: 41.234, TotalAmount: 99.999}}, nil
}

func TestRiskAssessment_CacheHitAvoidsStore(t *testing.T) {
	store := &countingStore{}
	svc := analytics.NewService(analytics.Deps{
		Store:    store,
		Cache:    cache.NewMemoryCache(0),
		CacheTTL: time.Minute,
	})
	ctx := context.Background()

	first, err := svc.RiskAssessment(ctx)
	require.NoError(t, err)
	second, err := svc.RiskAssessment(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), store.calls.Load())
	assert.Equal(t, first, second)
	assert.Equal(t, domain.RiskMedium, second.RiskMetrics[1].RiskLevel)
	assert.InDelta(t, 41.23, second.RiskMetrics[1].AvgFraudScore, 1e-9)
	assert.InDelta(t, 100.0, second.RiskMetrics[1].TotalAmount, 1e-9)
}

func TestRiskAssessment_ZeroTTLDisablesCache(t *testing.T) {
	store := &countingStore{}
	svc := analytics.NewService(analytics.Deps{Store: store, Cache: cache.NewMemoryCache(0)})

	for range 3 {
		_, err := svc.RiskAssessment(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), store.calls.Load())
}

func TestRiskAssessment_ConcurrentMissesShareLoad(t *testing.T) {
	store := &countingStore{release: make(chan struct{})}
	svc := analytics.NewService(analytics.Deps{
		Store:    store,
		Cache:    cache.NewMemoryCache(0),
		CacheTTL: time.Minute,
	})

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RiskAssessment(context.Background())
			assert.NoError(t, err)
		}()
	}
	assert.Eventually(t, func() bool { return store.calls.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(store.release)
	wg.Wait()

	assert.LessOrEqual(t, store.calls.Load(), int32(2))
}

// blockingStore holds RiskMetrics until release is closed or its ctx ends.
type blockingStore struct {
	repository.AnalyticsReader
	calls   atomic.Int32
	release chan struct{}
}

func (b *blockingStore) RiskMetrics(ctx context.Context) ([]dto.RiskMetric, error) {
	b.calls.Add(1)
	select {
	case <-b.release:
		return []dto.RiskMetric{{RiskLevel: domain.RiskLow, TransactionCount: 1}}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestRiskAssessment_CancelledLeaderDoesNotFailFollowers(t *testing.T) {
	store := &blockingStore{release: make(chan struct{})}
	svc := analytics.NewService(analytics.Deps{
		Store:    store,
		Cache:    cache.NewMemoryCache(0),
		CacheTTL: time.Minute,
	})

	leaderCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	leaderErr := make(chan error, 1)
	go func() {
		_, err := svc.RiskAssessment(leaderCtx)
		leaderErr <- err
	}()
	require.Eventually(t, func() bool { return store.calls.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		out *dto.RiskAssessment
		err error
	}
	follower := make(chan result, 1)
	go func() {
		out, err := svc.RiskAssessment(context.Background())
		follower <- result{out, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	select {
	case err := <-leaderErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(store.release)
	select {
	case res := <-follower:
		require.NoError(t, res.err)
		assert.Equal(t, int64(1), res.out.RiskMetrics[0].TransactionCount)
	case <-time.After(time.Second):
		t.Fatal("live caller did not return")
	}
	assert.Equal(t, int32(1), store.calls.Load())
}

// failingCache rejects every read and write.
type failingCache struct{}

var errCacheDown = errors.New("cache down")

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errCacheDown
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error { return errCacheDown }

func (failingCache) Delete(context.Context, string) error { return errCacheDown }

func TestRiskAssessment_CacheFailureFallsBackToStore(t *testing.T) {
	store := &countingStore{}
	svc := analytics.NewService(analytics.Deps{
		Store:    store,
		Cache:    failingCache{},
		CacheTTL: time.Minute,
	})

	for range 2 {
		out, err := svc.RiskAssessment(context.Background())
		require.NoError(t, err)
		require.Len(t, out.RiskMetrics, 3)
		assert.Equal(t, int64(3), out.RiskMetrics[1].TransactionCount)
	}
	assert.Equal(t, int32(2), store.calls.Load())
}

func TestInvalidate_ForcesReload(t *testing.T) {
	store := &countingStore{}
	svc := analytics.NewService(analytics.Deps{
		Store:    store,
		Cache:    cache.NewMemoryCache(0),
		CacheTTL: time.Minute,
	})
	ctx := context.Background()

	_, err := svc.RiskAssessment(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(ctx))
	_, err = svc.RiskAssessment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), store.calls.Load())
}

func TestInvalidate_ReportsCacheErrors(t *testing.T) {
	svc := analytics.NewService(analytics.Deps{
		Store:    &countingStore{},
		Cache:    failingCache{},
		CacheTTL: time.Minute,
	})
	err := svc.Invalidate(context.Background())
	require.ErrorIs(t, err, errCacheDown)
	assert.Contains(t, err.Error(), "analytics:risk_assessment")
}

func TestRiskAssessment_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("disk on fire")
	store := &countingStore{err: boom}
	svc := analytics.NewService(analytics.Deps{
		Store:    store,
		Cache:    cache.NewMemoryCache(0),
		CacheTTL: time.Minute,
	})
	ctx := context.Background()

	_, err := svc.RiskAssessment(ctx)
	require.ErrorIs(t, err, boom)

	store.err = nil
	out, err := svc.RiskAssessment(ctx)
	require.NoError(t, err)
	assert.Len(t, out.RiskMetrics, 3)
	assert.Equal(t, int32(2), store.calls.Load())
}
