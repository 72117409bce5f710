package analytics

import (
	"context"
	"time"

	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/dto"
)

// DashboardStats returns the headline summary. TotalVolume sums debits only;
// AvgTransaction averages every row.
func (s *Service) DashboardStats(ctx context.Context) (stats *dto.DashboardStats, err error) {
	defer s.observe("DashboardStats", time.Now(), &err)

	v, err := memoize(ctx, s, keyDashboardStats, s.loadDashboardStats)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) loadDashboardStats(ctx context.Context) (dto.DashboardStats, error) {
	var out dto.DashboardStats
	var err error

	if out.TotalTransactions, err = s.store.CountTransactions(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	debit := domain.TransactionDebit
	if out.TotalVolume, err = s.store.SumAmount(ctx, &debit); err != nil {
		return dto.DashboardStats{}, err
	}
	if out.ActiveCustomers, err = s.store.CountDistinctCustomers(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	if out.FraudAlerts, err = s.store.CountFraud(ctx, domain.FraudAlertThreshold); err != nil {
		return dto.DashboardStats{}, err
	}
	if out.AvgTransaction, err = s.store.AvgAmount(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	if out.HighRiskAccounts, err = s.store.CountCustomersByRisk(ctx, domain.RiskHigh); err != nil {
		return dto.DashboardStats{}, err
	}

	out.TotalVolume = domain.Round2(out.TotalVolume)
	out.AvgTransaction = domain.Round2(out.AvgTransaction)
	return out, nil
}

// ListTransactions returns the limit most recent transactions, newest first.
// A negative limit is rejected; zero yields an empty list.
func (s *Service) ListTransactions(ctx context.Context, limit int) (txs []domain.Transaction, err error) {
	defer s.observe("ListTransactions", time.Now(), &err)

	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		return []domain.Transaction{}, nil
	}
	return s.store.RecentTransactions(ctx, limit)
}

// TransactionAnalytics returns daily trends over the trailing window and the
// per-category breakdown of every transaction.
func (s *Service) TransactionAnalytics(ctx context.Context) (out *dto.TransactionAnalytics, err error) {
	defer s.observe("TransactionAnalytics", time.Now(), &err)

	v, err := memoize(ctx, s, keyTransactionAnalytics, s.loadTransactionAnalytics)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) loadTransactionAnalytics(ctx context.Context) (dto.TransactionAnalytics, error) {
	since := s.now().UTC().Add(-TrendWindow)
	trends, err := s.store.DailyTrends(ctx, since)
	if err != nil {
		return dto.TransactionAnalytics{}, err
	}
	categories, err := s.store.CategoryBreakdown(ctx)
	if err != nil {
		return dto.TransactionAnalytics{}, err
	}

	out := dto.TransactionAnalytics{
		DailyTrends:       make([]dto.DailyTrend, len(trends)),
		CategoryBreakdown: make([]dto.CategoryVolume, len(categories)),
	}
	for i, t := range trends {
		t.Volume = domain.Round2(t.Volume)
		out.DailyTrends[i] = t
	}
	for i, c := range categories {
		c.Volume = domain.Round2(c.Volume)
		out.CategoryBreakdown[i] = c
	}
	return out, nil
}

// FraudAlerts lists up to domain.FraudAlertLimit transactions whose fraud
// score is strictly above domain.FraudAlertThreshold, highest score first.
func (s *Service) FraudAlerts(ctx context.Context) (alerts []domain.FraudAlert, err error) {
	defer s.observe("FraudAlerts", time.Now(), &err)
	return memoize(ctx, s, keyFraudAlerts, s.loadFraudAlerts)
}

func (s *Service) loadFraudAlerts(ctx context.Context) ([]domain.FraudAlert, error) {
	txs, err := s.store.FraudTransactions(ctx, domain.FraudAlertThreshold, domain.FraudAlertLimit)
	if err != nil {
		return nil, err
	}
	alerts := make([]domain.FraudAlert, len(txs))
	for i, t := range txs {
		alerts[i] = domain.NewFraudAlert(t)
	}
	return alerts, nil
}

// ListCustomers returns the first limit customers in storage order.
func (s *Service) ListCustomers(ctx context.Context, limit int) (customers []domain.Customer, err error) {
	defer s.observe("ListCustomers", time.Now(), &err)

	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		return []domain.Customer{}, nil
	}
	return s.store.ListCustomers(ctx, limit)
}

// CustomerAnalytics returns the segment and risk level distributions.
func (s *Service) CustomerAnalytics(ctx context.Context) (out *dto.CustomerAnalytics, err error) {
	defer s.observe("CustomerAnalytics", time.Now(), &err)

	v, err := memoize(ctx, s, keyCustomerAnalytics, s.loadCustomerAnalytics)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) loadCustomerAnalytics(ctx context.Context) (dto.CustomerAnalytics, error) {
	segments, err := s.store.SegmentDistribution(ctx)
	if err != nil {
		return dto.CustomerAnalytics{}, err
	}
	risks, err := s.store.RiskDistribution(ctx)
	if err != nil {
		return dto.CustomerAnalytics{}, err
	}

	out := dto.CustomerAnalytics{
		SegmentDistribution: make([]dto.SegmentStat, len(segments)),
		RiskDistribution:    make([]dto.RiskCount, len(risks)),
	}
	for i, seg := range segments {
		seg.AvgBalance = domain.Round2(seg.AvgBalance)
		out.SegmentDistribution[i] = seg
	}
	copy(out.RiskDistribution, risks)
	return out, nil
}

// RiskAssessment aggregates transactions per customer risk level. Every
// known level is reported, in Low, Medium, High order, with zeros for levels
// that own no transactions. Unknown levels found in storage follow.
func (s *Service) RiskAssessment(ctx context.Context) (out *dto.RiskAssessment, err error) {
	defer s.observe("RiskAssessment", time.Now(), &err)

	v, err := memoize(ctx, s, keyRiskAssessment, s.loadRiskAssessment)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) loadRiskAssessment(ctx context.Context) (dto.RiskAssessment, error) {
	rows, err := s.store.RiskMetrics(ctx)
	if err != nil {
		return dto.RiskAssessment{}, err
	}

	byLevel := make(map[domain.RiskLevel]dto.RiskMetric, len(rows))
	for _, r := range rows {
		byLevel[r.RiskLevel] = r
	}

	metrics := make([]dto.RiskMetric, 0, len(domain.RiskLevels)+len(rows))
	for _, level := range domain.RiskLevels {
		m, ok := byLevel[level]
		if !ok {
			m = dto.RiskMetric{RiskLevel: level}
		}
		metrics = append(metrics, roundMetric(m))
		delete(byLevel, level)
	}
	for _, r := range rows {
		if _, extra := byLevel[r.RiskLevel]; extra {
			metrics = append(metrics, roundMetric(r))
		}
	}
	return dto.RiskAssessment{RiskMetrics: metrics}, nil
}

func roundMetric(m dto.RiskMetric) dto.RiskMetric {
	m.AvgFraudScore = domain.Round2(m.AvgFraudScore)
	m.TotalAmount = domain.Round2(m.TotalAmount)
	return m
}

// Counts reports the persisted row counts. Not cached.
func (s *Service) Counts(ctx context.Context) (counts dto.DatasetCounts, err error) {
	defer s.observe("Counts", time.Now(), &err)
	return s.store.Counts(ctx)
}
