package domain

import (
	"fmt"
	"time"
)

// TransactionType is the direction of a transaction.
type TransactionType string

// Transaction types.
const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

// TransactionTypes lists every transaction type.
var TransactionTypes = []TransactionType{TransactionDebit, TransactionCredit}

const (
	// FraudAlertThreshold is the fraud score above which a transaction raises an alert.
	// The comparison is strict: a score of exactly 70 is not an alert.
	FraudAlertThreshold = 70.0
	// FraudAlertLimit caps the fraud alert listing.
	FraudAlertLimit = 50
	// FraudAlertStatusPending is the status every synthesized alert carries.
	FraudAlertStatusPending = "pending"
)

// Transaction is a synthesized card or account movement.
// FraudScore is uniformly random and carries no relation to the other fields.
type Transaction struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	Amount          float64         `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	Merchant        string          `json:"merchant"`
	Category        string          `json:"category"`
	Timestamp       time.Time       `json:"timestamp"`
	FraudScore      float64         `json:"fraud_score"`
	Location        string          `json:"location"`
}

// IsFraudAlert reports whether the transaction's fraud score crosses FraudAlertThreshold.
func (t Transaction) IsFraudAlert() bool {
	return t.FraudScore > FraudAlertThreshold
}

// TransactionID formats the id of the transaction with the given 1-based sequence number.
func TransactionID(seq int) string {
	return fmt.Sprintf("TXN%08d", seq)
}

// FraudAlert is a transaction flagged by FraudAlertThreshold.
type FraudAlert struct {
	TransactionID string    `json:"transaction_id"`
	CustomerID    string    `json:"customer_id"`
	Amount        float64   `json:"amount"`
	FraudScore    float64   `json:"fraud_score"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
	Status        string    `json:"status"`
}

// NewFraudAlert builds the alert for t. The reason is derived from the category only.
func NewFraudAlert(t Transaction) FraudAlert {
	return FraudAlert{
		TransactionID: t.ID,
		CustomerID:    t.CustomerID,
		Amount:        t.Amount,
		FraudScore:    t.FraudScore,
		Reason:        FraudReason(t.Category),
		Timestamp:     t.Timestamp,
		Status:        FraudAlertStatusPending,
	}
}

// FraudReason is the human-readable reason attached to an alert for category.
func FraudReason(category string) string {
	return fmt.Sprintf("Unusual %s transaction pattern detected", category)
}
