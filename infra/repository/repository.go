package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/bankdash/pkg/domain"
	"github.com/amirasaad/bankdash/pkg/repository"
	"gorm.io/gorm"
)

// defaultBatchSize keeps a transactions batch under sqlite's 999 bound parameters.
const defaultBatchSize = 100

type store struct {
	db        *gorm.DB
	batchSize int
}

// New creates a gorm backed analytics store.
func New(db *gorm.DB) repository.Store {
	return &store{db: db, batchSize: defaultBatchSize}
}

// Migrate implements repository.DatasetWriter.
func (s *store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Customer{}, &Transaction{}); err != nil {
		return fmt.Errorf("migrate analytics tables: %w", err)
	}
	return nil
}

// IsPopulated implements repository.DatasetWriter.
func (s *store) IsPopulated(ctx context.Context) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Transaction{}).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count transactions: %w", err)
	}
	return n > 0, nil
}

// BulkInsert implements repository.DatasetWriter. Duplicate ids inside the
// batch are rejected before anything is written; collisions with stored rows
// roll back the whole batch.
func (s *store) BulkInsert(
	ctx context.Context,
	customers []domain.Customer,
	transactions []domain.Transaction,
) error {
	if err := checkUniqueIDs("customer", len(customers), func(i int) string { return customers[i].ID }); err != nil {
		return err
	}
	if err := checkUniqueIDs("transaction", len(transactions), func(i int) string { return transactions[i].ID }); err != nil {
		return err
	}

	customerRows := make([]Customer, len(customers))
	for i, c := range customers {
		customerRows[i] = customerToModel(c)
	}
	transactionRows := make([]Transaction, len(transactions))
	for i, t := range transactions {
		transactionRows[i] = transactionToModel(t)
	}

	return WrapError(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if len(customerRows) > 0 {
				if err := tx.CreateInBatches(customerRows, s.batchSize).Error; err != nil {
					return fmt.Errorf("insert customers: %w", err)
				}
			}
			if len(transactionRows) > 0 {
				if err := tx.CreateInBatches(transactionRows, s.batchSize).Error; err != nil {
					return fmt.Errorf("insert transactions: %w", err)
				}
			}
			return nil
		})
	})
}

// Ping implements repository.Store.
func (s *store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func checkUniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		key := id(i)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s %s appears more than once", domain.ErrDuplicateID, kind, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
