package domain

import (
	"fmt"
	"time"
)

// RiskLevel classifies a customer for risk-assessment aggregation.
type RiskLevel string

// Risk levels, ordered from least to most risky.
const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevels lists every risk level in reporting order.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// Valid reports whether r is a known risk level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Segment is a customer tier used for grouping analytics. It is independent of RiskLevel.
type Segment string

// Customer segments.
const (
	SegmentPremium  Segment = "Premium"
	SegmentStandard Segment = "Standard"
	SegmentBasic    Segment = "Basic"
)

// Segments lists every customer segment.
var Segments = []Segment{SegmentPremium, SegmentStandard, SegmentBasic}

// Customer is a synthesized bank customer. Customers are immutable once persisted.
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AccountBalance float64   `json:"account_balance"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Segment        Segment   `json:"segment"`
	JoinDate       time.Time `json:"join_date"`
}

// CustomerID formats the id of the customer with the given 1-based sequence number.
func CustomerID(seq int) string {
	return fmt.Sprintf("CUST%06d", seq)
}

// CustomerName is the display name of the customer with the given sequence number.
func CustomerName(seq int) string {
	return fmt.Sprintf("Customer %d", seq)
}

// CustomerEmail is the email of the customer with the given sequence number.
func CustomerEmail(seq int) string {
	return fmt.Sprintf("customer%d@example.com", seq)
}
