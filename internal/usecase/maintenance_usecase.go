package usecase

import (
	"context"

	"peeko/internal/domain/entity"
)

// MaintenanceUsecase repairs cross-record invariants left behind by interrupted writes.
type MaintenanceUsecase interface {
	Reconcile(ctx context.Context) (*entity.ReconcileReport, error)
}
