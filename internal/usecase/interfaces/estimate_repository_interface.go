package interfaces

import (
	"context"

	"aquashield/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - create an estimate once at save time
//   - fetch by id and list a user's estimates newest-first
//   - apply partial edits (materials, manual entries, status) that carry
//     the re-derived subtotals alongside the edited list

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error)
	UpdateMaterialsByID(ctx context.Context, id string, materials []entities.MaterialLine, materialsSubtotal, grandTotal float64) (entities.Estimate, error)
	UpdateManualEntriesByID(ctx context.Context, id string, entries []entities.ManualEntry, manualSubtotal, grandTotal float64) (entities.Estimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
}
