package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*store, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return &store{db: db, batchSize: defaultBatchSize}, mock
}

func TestStore_IsPopulated(t *testing.T) {
	require := require.New(t)
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	populated, err := s.IsPopulated(ctx)
	require.NoError(err)
	require.False(populated)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10000))
	populated, err = s.IsPopulated(ctx)
	require.NoError(err)
	require.True(populated)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions"`).
		WillReturnError(errors.New("connection reset"))
	_, err = s.IsPopulated(ctx)
	require.Error(err)

	require.NoError(mock.ExpectationsWereMet())
}

func TestStore_BulkInsert_RollsBackOnFailure(t *testing.T) {
	require := require.New(t)
	s, mock := newMockStore(t)

	customers := []domain.Customer{{ID: "CUST000001", RiskLevel: domain.RiskLow, Segment: domain.SegmentBasic, JoinDate: time.Now()}}
	transactions := []domain.Transaction{{ID: "TXN00000001", CustomerID: "CUST000001", Timestamp: time.Now()}}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "transactions"`).WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.BulkInsert(context.Background(), customers, transactions)
	require.Error(err)
	require.Contains(err.Error(), "insert transactions")
	require.NoError(mock.ExpectationsWereMet())
}

func TestStore_BulkInsert_Commits(t *testing.T) {
	require := require.New(t)
	s, mock := newMockStore(t)

	customers := []domain.Customer{{ID: "CUST000001", JoinDate: time.Now()}}
	transactions := []domain.Transaction{{ID: "TXN00000001", CustomerID: "CUST000001", Timestamp: time.Now()}}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "transactions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(s.BulkInsert(context.Background(), customers, transactions))
	require.NoError(mock.ExpectationsWereMet())
}

func TestStore_BulkInsert_DuplicateIDsInBatch(t *testing.T) {
	s, mock := newMockStore(t)

	customers := []domain.Customer{{ID: "CUST000001"}, {ID: "CUST000001"}}
	err := s.BulkInsert(context.Background(), customers, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	transactions := []domain.Transaction{{ID: "TXN00000009"}, {ID: "TXN00000009"}}
	err = s.BulkInsert(context.Background(), []domain.Customer{{ID: "CUST000001"}}, transactions)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	// nothing reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CountFraud_UsesStrictThreshold(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE fraud_score > \$1`).
		WithArgs(domain.FraudAlertThreshold).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := s.CountFraud(context.Background(), domain.FraudAlertThreshold)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SumAmount_FiltersByType(t *testing.T) {
	s, mock := newMockStore(t)
	debit := domain.TransactionDebit

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "transactions" WHERE transaction_type = \$1`).
		WithArgs("debit").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1234.5))

	total, err := s.SumAmount(context.Background(), &debit)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_QueryErrorsPropagate(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()
	boom := errors.New("relation does not exist")

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).WillReturnError(boom)
	_, err := s.RecentTransactions(ctx, 10)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(`SELECT category`).WillReturnError(boom)
	_, err = s.CategoryBreakdown(ctx)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(`LEFT JOIN transactions AS t`).WillReturnError(boom)
	_, err = s.RiskMetrics(ctx)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendarDate(t *testing.T) {
	assert.Equal(t, "2025-06-01", calendarDate("2025-06-01"))
	assert.Equal(t, "2025-06-01", calendarDate("2025-06-01T00:00:00Z"))
	assert.Equal(t, "", calendarDate(""))
}
