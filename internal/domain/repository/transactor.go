package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor hands usecases their database handle. Everything fn does on tx
// is committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	DB(ctx context.Context) *gorm.DB
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
