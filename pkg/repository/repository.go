package repository

import (
	"context"
	"time"

	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/dto"
)

// DatasetWriter covers the one-time population of the store.
type DatasetWriter interface {
	// Migrate creates the customers and transactions tables if they are missing.
	Migrate(ctx context.Context) error

	// IsPopulated reports whether the transactions table already holds rows.
	IsPopulated(ctx context.Context) (bool, error)

	// BulkInsert appends customers and transactions in a single all-or-nothing write.
	// It performs no existence check: callers must consult IsPopulated first.
	BulkInsert(ctx context.Context, customers []domain.Customer, transactions []domain.Transaction) error
}

// AnalyticsReader is the read path used by the analytics service. Every call
// returns the complete result for its filter or an error, never a partial set.
type AnalyticsReader interface {
	// CountTransactions counts every transaction.
	CountTransactions(ctx context.Context) (int64, error)

	// SumAmount sums transaction amounts, restricted to txType when non-nil. Empty sets sum to 0.
	SumAmount(ctx context.Context, txType *domain.TransactionType) (float64, error)

	// AvgAmount averages every transaction amount. An empty table yields 0.
	AvgAmount(ctx context.Context) (float64, error)

	// CountDistinctCustomers counts the distinct customer ids referenced by transactions.
	CountDistinctCustomers(ctx context.Context) (int64, error)

	// CountFraud counts transactions with fraud_score strictly above threshold.
	CountFraud(ctx context.Context, threshold float64) (int64, error)

	// CountCustomersByRisk counts customers at the given risk level.
	CountCustomersByRisk(ctx context.Context, level domain.RiskLevel) (int64, error)

	// RecentTransactions lists up to limit transactions, newest first, ties in storage order.
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// DailyTrends buckets transactions at or after since by UTC calendar date, ascending.
	DailyTrends(ctx context.Context, since time.Time) ([]dto.DailyTrend, error)

	// CategoryBreakdown groups every transaction by category, highest volume first.
	CategoryBreakdown(ctx context.Context) ([]dto.CategoryVolume, error)

	// FraudTransactions lists transactions with fraud_score strictly above threshold,
	// highest score first, capped at limit.
	FraudTransactions(ctx context.Context, threshold float64, limit int) ([]domain.Transaction, error)

	// ListCustomers lists up to limit customers in storage order.
	ListCustomers(ctx context.Context, limit int) ([]domain.Customer, error)

	// SegmentDistribution groups customers by segment.
	SegmentDistribution(ctx context.Context) ([]dto.SegmentStat, error)

	// RiskDistribution groups customers by risk level.
	RiskDistribution(ctx context.Context) ([]dto.RiskCount, error)

	// RiskMetrics joins customers to their transactions (outer join) and aggregates per risk level.
	RiskMetrics(ctx context.Context) ([]dto.RiskMetric, error)

	// Counts reports the row count of both tables.
	Counts(ctx context.Context) (dto.DatasetCounts, error)
}

// Store is the full storage contract.
type Store interface {
	DatasetWriter
	AnalyticsReader

	// Ping checks that the underlying database is reachable.
	Ping(ctx context.Context) error
}
