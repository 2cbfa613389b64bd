package postgres

import (
	"context"

	"gamehub/internal/domain/repository"
	"gamehub/internal/errors"

	"gorm.io/gorm"
)

type storeHealth struct {
	db *gorm.DB
}

// NewStoreHealth exposes a connectivity probe over the shared pool.
func NewStoreHealth(db *gorm.DB) repository.StoreHealth {
	return &storeHealth{db: db}
}

func (h *storeHealth) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}
