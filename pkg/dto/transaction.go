package dto

// DailyTrend is the count and summed volume of transactions for one UTC calendar date.
type DailyTrend struct {
	Date   string  `json:"date"`   // YYYY-MM-DD
	Count  int64   `json:"count"`  // Number of transactions on the date
	Volume float64 `json:"volume"` // Sum of amounts, rounded to 2 decimals
}

// CategoryVolume is the count and summed volume of transactions in one category.
type CategoryVolume struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Volume   float64 `json:"volume"`
}

// TransactionAnalytics groups the time-bucketed and per-category views.
type TransactionAnalytics struct {
	DailyTrends       []DailyTrend     `json:"daily_trends"`
	CategoryBreakdown []CategoryVolume `json:"category_breakdown"`
}

// DashboardStats is the summary shown at the top of the dashboard.
type DashboardStats struct {
	TotalTransactions int64   `json:"total_transactions"`
	TotalVolume       float64 `json:"total_volume"` // Debit volume only
	ActiveCustomers   int64   `json:"active_customers"`
	FraudAlerts       int64   `json:"fraud_alerts"`
	AvgTransaction    float64 `json:"avg_transaction"` // Mean over all transactions
	HighRiskAccounts  int64   `json:"high_risk_accounts"`
}
