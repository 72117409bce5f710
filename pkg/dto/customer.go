package dto

import "github.com/amirasaad/bankdash/pkg/domain"

// SegmentStat is the size and mean account balance of one customer segment.
type SegmentStat struct {
	Segment    domain.Segment `json:"segment"`
	Count      int64          `json:"count"`
	AvgBalance float64        `json:"avg_balance"`
}

// RiskCount is the number of customers at one risk level.
type RiskCount struct {
	RiskLevel domain.RiskLevel `json:"risk_level"`
	Count     int64            `json:"count"`
}

// CustomerAnalytics groups the segment and risk distributions.
type CustomerAnalytics struct {
	SegmentDistribution []SegmentStat `json:"segment_distribution"`
	RiskDistribution    []RiskCount   `json:"risk_distribution"`
}

// RiskMetric aggregates the transactions owned by customers at one risk level.
// Levels without transactions report zeros, never nulls.
type RiskMetric struct {
	RiskLevel        domain.RiskLevel `json:"risk_level"`
	TransactionCount int64            `json:"transaction_count"`
	AvgFraudScore    float64          `json:"avg_fraud_score"`
	TotalAmount      float64          `json:"total_amount"`
}

// RiskAssessment wraps the per-level risk metrics.
type RiskAssessment struct {
	RiskMetrics []RiskMetric `json:"risk_metrics"`
}

// DatasetCounts reports the persisted row counts.
type DatasetCounts struct {
	Customers    int64 `json:"customers"`
	Transactions int64 `json:"transactions"`
}
