package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/dto"
)

// CountTransactions implements repository.AnalyticsReader.
func (s *store) CountTransactions(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Transaction{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// SumAmount implements repository.AnalyticsReader.
func (s *store) SumAmount(ctx context.Context, txType *domain.TransactionType) (float64, error) {
	var total float64
	q := s.db.WithContext(ctx).Model(&Transaction{}).Select("COALESCE(SUM(amount), 0)")
	if txType != nil {
		q = q.Where("transaction_type = ?", string(*txType))
	}
	if err := q.Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum transaction amounts: %w", err)
	}
	return total, nil
}

// AvgAmount implements repository.AnalyticsReader.
func (s *store) AvgAmount(ctx context.Context) (float64, error) {
	var avg float64
	if err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("COALESCE(AVG(amount), 0)").
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("average transaction amount: %w", err)
	}
	return avg, nil
}

// CountDistinctCustomers implements repository.AnalyticsReader.
func (s *store) CountDistinctCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Distinct("customer_id").
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count active customers: %w", err)
	}
	return n, nil
}

// CountFraud implements repository.AnalyticsReader.
func (s *store) CountFraud(ctx context.Context, threshold float64) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("fraud_score > ?", threshold).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count fraud alerts: %w", err)
	}
	return n, nil
}

// CountCustomersByRisk implements repository.AnalyticsReader.
func (s *store) CountCustomersByRisk(ctx context.Context, level domain.RiskLevel) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).
		Model(&Customer{}).
		Where("risk_level = ?", string(level)).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s risk customers: %w", level, err)
	}
	return n, nil
}

// RecentTransactions implements repository.AnalyticsReader.
func (s *store) RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	var rows []Transaction
	if err := s.db.WithContext(ctx).
		Order(`"timestamp" DESC`).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	out := make([]domain.Transaction, len(rows))
	for i := range rows {
		out[i] = transactionToDomain(rows[i])
	}
	return out, nil
}

type dailyRow struct {
	Date   string
	Count  int64
	Volume float64
}

// DailyTrends implements repository.AnalyticsReader.
func (s *store) DailyTrends(ctx context.Context, since time.Time) ([]dto.DailyTrend, error) {
	var rows []dailyRow
	if err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Select(`DATE("timestamp") AS date, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS volume`).
		Where(`"timestamp" >= ?`, since.UTC()).
		Group(`DATE("timestamp")`).
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("daily transaction trends: %w", err)
	}
	out := make([]dto.DailyTrend, len(rows))
	for i, r := range rows {
		out[i] = dto.DailyTrend{Date: calendarDate(r.Date), Count: r.Count, Volume: r.Volume}
	}
	return out, nil
}

// CategoryBreakdown implements repository.AnalyticsReader.
func (s *store) CategoryBreakdown(ctx context.Context) ([]dto.CategoryVolume, error) {
	var rows []dto.CategoryVolume
	if err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("category, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS volume").
		Group("category").
		Order("volume DESC").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	return rows, nil
}

// FraudTransactions implements repository.AnalyticsReader.
func (s *store) FraudTransactions(ctx context.Context, threshold float64, limit int) ([]domain.Transaction, error) {
	var rows []Transaction
	if err := s.db.WithContext(ctx).
		Where("fraud_score > ?", threshold).
		Order("fraud_score DESC").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list fraud transactions: %w", err)
	}
	out := make([]domain.Transaction, len(rows))
	for i := range rows {
		out[i] = transactionToDomain(rows[i])
	}
	return out, nil
}

// ListCustomers implements repository.AnalyticsReader. Customer ids are
// assigned in insertion order, so ordering by id is storage order.
func (s *store) ListCustomers(ctx context.Context, limit int) ([]domain.Customer, error) {
	var rows []Customer
	if err := s.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]domain.Customer, len(rows))
	for i := range rows {
		out[i] = customerToDomain(rows[i])
	}
	return out, nil
}

// SegmentDistribution implements repository.AnalyticsReader.
func (s *store) SegmentDistribution(ctx context.Context) ([]dto.SegmentStat, error) {
	var rows []dto.SegmentStat
	if err := s.db.WithContext(ctx).
		Model(&Customer{}).
		Select("segment, COUNT(*) AS count, COALESCE(AVG(account_balance), 0) AS avg_balance").
		Group("segment").
		Order("segment ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("segment distribution: %w", err)
	}
	return rows, nil
}

// RiskDistribution implements repository.AnalyticsReader.
func (s *store) RiskDistribution(ctx context.Context) ([]dto.RiskCount, error) {
	var rows []dto.RiskCount
	if err := s.db.WithContext(ctx).
		Model(&Customer{}).
		Select("risk_level, COUNT(*) AS count").
		Group("risk_level").
		Order("risk_level ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("risk distribution: %w", err)
	}
	return rows, nil
}

// RiskMetrics implements repository.AnalyticsReader. Customers without
// transactions still produce a row for their level through the outer join.
func (s *store) RiskMetrics(ctx context.Context) ([]dto.RiskMetric, error) {
	var rows []dto.RiskMetric
	if err := s.db.WithContext(ctx).
		Table("customers AS c").
		Select(`c.risk_level AS risk_level,
			COUNT(DISTINCT t.id) AS transaction_count,
			COALESCE(AVG(t.fraud_score), 0) AS avg_fraud_score,
			COALESCE(SUM(t.amount), 0) AS total_amount`).
		Joins("LEFT JOIN transactions AS t ON c.id = t.customer_id").
		Group("c.risk_level").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("risk metrics: %w", err)
	}
	return rows, nil
}

// Counts implements repository.AnalyticsReader.
func (s *store) Counts(ctx context.Context) (dto.DatasetCounts, error) {
	var counts dto.DatasetCounts
	db := s.db.WithContext(ctx)
	if err := db.Model(&Customer{}).Count(&counts.Customers).Error; err != nil {
		return dto.DatasetCounts{}, fmt.Errorf("count customers: %w", err)
	}
	if err := db.Model(&Transaction{}).Count(&counts.Transactions).Error; err != nil {
		return dto.DatasetCounts{}, fmt.Errorf("count transactions: %w", err)
	}
	return counts, nil
}

// calendarDate trims driver-specific date renderings (sqlite returns
// "2006-01-02", postgres a full timestamp) to YYYY-MM-DD.
func calendarDate(raw string) string {
	if len(raw) > len(time.DateOnly) {
		return raw[:len(time.DateOnly)]
	}
	return raw
}
