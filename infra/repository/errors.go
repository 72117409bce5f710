package repository

import (
	"errors"

	"github.com/amirasaad/bankdash/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors so database
// details stay inside the infrastructure layer. Unmapped errors are returned as is.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateID
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	}
	return err
}

// WrapError runs a GORM operation and maps its error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(rows).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
