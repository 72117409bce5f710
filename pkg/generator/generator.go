// Package generator synthesizes the customer and transaction dataset the
// analytics service is seeded with.
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/amirasaad/bankdash/pkg/domain"
)

// Default dataset sizes.
const (
	DefaultCustomers    = 500
	DefaultTransactions = 10000
)

// Attribute ranges.
const (
	minBalance     = 1000.0
	maxBalance     = 500000.0
	minAmount      = 10.0
	maxAmount      = 5000.0
	maxFraudScore  = 100.0
	minJoinDays    = 30
	maxJoinDays    = 730
	minTxnAgeHours = 1
	maxTxnAgeHours = 720
)

// Config describes the dataset to generate. Now anchors every relative date.
type Config struct {
	Customers    int
	Transactions int
	Now          time.Time
}

// DefaultConfig returns the default dataset sizes anchored at now.
func DefaultConfig(now time.Time) Config {
	return Config{
		Customers:    DefaultCustomers,
		Transactions: DefaultTransactions,
		Now:          now,
	}
}

// Validate checks the generation parameters.
func (c Config) Validate() error {
	if c.Customers <= 0 {
		return fmt.Errorf("%w: customer count %d", domain.ErrInvalidGenerationParams, c.Customers)
	}
	if c.Transactions <= 0 {
		return fmt.Errorf("%w: transaction count %d", domain.ErrInvalidGenerationParams, c.Transactions)
	}
	if c.Now.IsZero() {
		return fmt.Errorf("%w: generation time is not set", domain.ErrInvalidGenerationParams)
	}
	return nil
}

// Dataset is a generated population of customers and the transactions referencing them.
type Dataset struct {
	Customers    []domain.Customer
	Transactions []domain.Transaction
}

// Generator produces datasets from its random source. A Generator is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a generator with a deterministic source.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewDefault creates a generator seeded by the runtime.
func NewDefault() *Generator {
	return New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Generate builds a dataset. It performs no I/O.
func (g *Generator) Generate(cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	now := cfg.Now.UTC()

	customers := make([]domain.Customer, cfg.Customers)
	for i := range customers {
		seq := i + 1
		customers[i] = domain.Customer{
			ID:             domain.CustomerID(seq),
			Name:           domain.CustomerName(seq),
			Email:          domain.CustomerEmail(seq),
			AccountBalance: domain.Round2(g.uniform(minBalance, maxBalance)),
			RiskLevel:      pick(g.rng, domain.RiskLevels),
			Segment:        pick(g.rng, domain.Segments),
			JoinDate:       now.AddDate(0, 0, -g.intBetween(minJoinDays, maxJoinDays)),
		}
	}

	transactions := make([]domain.Transaction, cfg.Transactions)
	for i := range transactions {
		owner := customers[g.rng.IntN(len(customers))]
		age := time.Duration(g.intBetween(minTxnAgeHours, maxTxnAgeHours)) * time.Hour
		transactions[i] = domain.Transaction{
			ID:              domain.TransactionID(i + 1),
			CustomerID:      owner.ID,
			Amount:          domain.Round2(g.uniform(minAmount, maxAmount)),
			TransactionType: pick(g.rng, domain.TransactionTypes),
			Merchant:        pick(g.rng, domain.Merchants),
			Category:        pick(g.rng, domain.Categories),
			Timestamp:       now.Add(-age),
			FraudScore:      domain.Round2(g.uniform(0, maxFraudScore)),
			Location:        pick(g.rng, domain.Locations),
		}
	}

	return &Dataset{Customers: customers, Transactions: transactions}, nil
}

// uniform draws from [lo, hi].
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween draws an integer from [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
