package testutils

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/bankdash/infra"
	infrarepo "github.com/amirasaad/bankdash/infra/repository"
	"github.com/amirasaad/bankdash/pkg/config"
	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Anchor is a fixed generation time used across tests.
var Anchor = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// NewSQLiteStore opens a migrated, empty store backed by a sqlite file in a
// per-test temp directory.
func NewSQLiteStore(t *testing.T) (repository.Store, *gorm.DB) {
	t.Helper()
	return OpenSQLiteStore(t, filepath.Join(t.TempDir(), "banking_data.db"))
}

// OpenSQLiteStore opens (and migrates) the sqlite store at path. Opening the
// same path twice simulates a process restart.
func OpenSQLiteStore(t *testing.T, path string) (repository.Store, *gorm.DB) {
	t.Helper()
	db, err := infra.NewDBConnection(&config.DB{Url: path}, "test")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close() //nolint:errcheck
		}
	})

	store := infrarepo.New(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store, db
}

// SeedStore inserts the given rows and fails the test on error.
func SeedStore(t *testing.T, store repository.Store, customers []domain.Customer, transactions []domain.Transaction) {
	t.Helper()
	require.NoError(t, store.BulkInsert(context.Background(), customers, transactions))
}

// ScenarioCustomers returns three customers, one per risk level.
func ScenarioCustomers() []domain.Customer {
	levels := []domain.RiskLevel{domain.RiskLow, domain.RiskMedium, domain.RiskHigh}
	customers := make([]domain.Customer, len(levels))
	for i, level := range levels {
		seq := i + 1
		customers[i] = domain.Customer{
			ID:             domain.CustomerID(seq),
			Name:           domain.CustomerName(seq),
			Email:          domain.CustomerEmail(seq),
			AccountBalance: float64(seq) * 1000,
			RiskLevel:      level,
			Segment:        domain.Segments[i],
			JoinDate:       Anchor.AddDate(0, 0, -100),
		}
	}
	return customers
}

// ScenarioTransactions returns one alerting transaction owned by CUST000001
// and one non-alerting transaction owned by CUST000002.
func ScenarioTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:              domain.TransactionID(1),
			CustomerID:      domain.CustomerID(1),
			Amount:          250.00,
			TransactionType: domain.TransactionDebit,
			Merchant:        "Amazon",
			Category:        "Shopping",
			Timestamp:       Anchor.Add(-2 * time.Hour),
			FraudScore:      80,
			Location:        "Boston",
		},
		{
			ID:              domain.TransactionID(2),
			CustomerID:      domain.CustomerID(2),
			Amount:          100.50,
			TransactionType: domain.TransactionCredit,
			Merchant:        "Hotels",
			Category:        "Travel",
			Timestamp:       Anchor.Add(-5 * time.Hour),
			FraudScore:      50,
			Location:        "Miami",
		},
	}
}

// MakeRequest is a helper for making HTTP requests against a fiber app in tests.
func MakeRequest(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return do(app, req)
}

// MakeRequestWithHeaders issues a body-less request carrying headers.
func MakeRequestWithHeaders(app *fiber.App, method, path string, headers map[string]string) *http.Response {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return do(app, req)
}

func do(app *fiber.App, req *http.Request) *http.Response {
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}
