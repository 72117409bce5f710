package repository

import (
	"time"

	"github.com/amirasaad/bankdash/pkg/domain"
)

// Customer represents a customer record in the database.
type Customer struct {
	ID             string    `gorm:"type:varchar(16);primaryKey"`
	Name           string    `gorm:"type:varchar(64);not null"`
	Email          string    `gorm:"type:varchar(128);not null"`
	AccountBalance float64   `gorm:"not null"`
	RiskLevel      string    `gorm:"type:varchar(8);not null;index"`
	Segment        string    `gorm:"type:varchar(16);not null"`
	JoinDate       time.Time `gorm:"not null"`
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}

// Transaction represents a persisted transaction record. CustomerID is not a
// declared foreign key; the generator guarantees it references a customer.
type Transaction struct {
	ID              string    `gorm:"type:varchar(16);primaryKey"`
	CustomerID      string    `gorm:"type:varchar(16);not null;index"`
	Amount          float64   `gorm:"not null"`
	TransactionType string    `gorm:"type:varchar(8);not null"`
	Merchant        string    `gorm:"type:varchar(32);not null"`
	Category        string    `gorm:"type:varchar(32);not null;index"`
	Timestamp       time.Time `gorm:"not null;index"`
	FraudScore      float64   `gorm:"not null;index"`
	Location        string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// --- Mappers ---

func customerToModel(c domain.Customer) Customer {
	return Customer{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		AccountBalance: c.AccountBalance,
		RiskLevel:      string(c.RiskLevel),
		Segment:        string(c.Segment),
		JoinDate:       c.JoinDate.UTC(),
	}
}

func customerToDomain(m Customer) domain.Customer {
	return domain.Customer{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		AccountBalance: m.AccountBalance,
		RiskLevel:      domain.RiskLevel(m.RiskLevel),
		Segment:        domain.Segment(m.Segment),
		JoinDate:       m.JoinDate.UTC(),
	}
}

func transactionToModel(t domain.Transaction) Transaction {
	return Transaction{
		ID:              t.ID,
		CustomerID:      t.CustomerID,
		Amount:          t.Amount,
		TransactionType: string(t.TransactionType),
		Merchant:        t.Merchant,
		Category:        t.Category,
		Timestamp:       t.Timestamp.UTC(),
		FraudScore:      t.FraudScore,
		Location:        t.Location,
	}
}

func transactionToDomain(m Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Merchant:        m.Merchant,
		Category:        m.Category,
		Timestamp:       m.Timestamp.UTC(),
		FraudScore:      m.FraudScore,
		Location:        m.Location,
	}
}
