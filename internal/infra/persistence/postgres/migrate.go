package postgres

import (
	"context"

	"peeko/internal/errors"
	"peeko/internal/infra/persistence/model"

	"gorm.io/gorm"
)

func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	return nil
}
