package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"aquashield/internal/domain/entities"
	"aquashield/internal/domain/pricing"
	"aquashield/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidLaborRate  = errors.New("invalid labor rate")
	ErrInvalidStatus     = errors.New("invalid estimate status")
)

// CreateEstimateInput groups everything collected before save time: the
// project intake, the (possibly raw) analysis result, uploaded file URLs
// and any manual line items typed alongside.
type CreateEstimateInput struct {
	Project       entities.ProjectConfig
	Analysis      entities.AnalysisResult
	ManualEntries []entities.ManualEntry
	BlueprintURL  string
	PhotoURLs     []string
}

// EstimateStats are the dashboard aggregates for one user.
type EstimateStats struct {
	TotalEstimates int     `json:"total_estimates"`
	TotalValue     float64 `json:"total_value"`
	Drafts         int     `json:"drafts"`
	Pending        int     `json:"pending"`
	Approved       int     `json:"approved"`
}

// IEstimateUseCase exposes the estimate operations.
//
// Every operation is scoped to the owning user: estimates belonging to
// someone else behave exactly like missing ones.

type IEstimateUseCase interface {
	Create(ctx context.Context, userID string, input CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, userID, id string) (entities.Estimate, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Estimate, error)
	Stats(ctx context.Context, userID string) (EstimateStats, error)
	UpdateMaterials(ctx context.Context, userID, id string, materials []entities.MaterialLine) (entities.Estimate, error)
	UpdateManualEntries(ctx context.Context, userID, id string, entries []entities.ManualEntry) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, userID, id string, status entities.EstimateStatus) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

// Create normalizes the analysis, runs the pricing engine, derives the
// three subtotals and persists the flat estimate record.
//
// The AI subtotal falls back to the engine's total estimate when the
// provider did not price the work itself.
func (u *EstimateUseCase) Create(ctx context.Context, userID string, input CreateEstimateInput) (entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Estimate{}, ErrInvalidUserID
	}
	if input.Project.LaborRate <= 0 {
		return entities.Estimate{}, ErrInvalidLaborRate
	}

	analysis := pricing.NormalizeAnalysis(input.Analysis)
	breakdown := pricing.ComputeEstimate(input.Project, analysis)

	aiSubtotal := analysis.AIAnalysisSubtotal
	if aiSubtotal <= 0 {
		aiSubtotal = breakdown.TotalEstimate
	}

	manual := input.ManualEntries
	if manual == nil {
		manual = []entities.ManualEntry{}
	}
	totals := pricing.ComputeTotals(manual, analysis.Materials, aiSubtotal)

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:                    uuid.NewString(),
		UserID:                userID,
		Project:               input.Project,
		BlueprintURL:          input.BlueprintURL,
		PhotoURLs:             input.PhotoURLs,
		Analysis:              analysis,
		Breakdown:             breakdown,
		Materials:             analysis.Materials,
		ManualEntries:         manual,
		AISubtotal:            totals.AISubtotal,
		MaterialsSubtotal:     totals.MaterialsSubtotal,
		ManualEntriesSubtotal: totals.ManualEntriesSubtotal,
		GrandTotal:            totals.GrandTotal,
		Status:                entities.EstimateStatusDraft,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, userID, id string) (entities.Estimate, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *EstimateUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *EstimateUseCase) Stats(ctx context.Context, userID string) (EstimateStats, error) {
	list, err := u.ListByUser(ctx, userID)
	if err != nil {
		return EstimateStats{}, err
	}

	stats := EstimateStats{TotalEstimates: len(list)}
	for _, e := range list {
		stats.TotalValue += e.GrandTotal
		switch e.Status {
		case entities.EstimateStatusDraft:
			stats.Drafts++
		case entities.EstimateStatusPendingReview, entities.EstimateStatusSent:
			stats.Pending++
		case entities.EstimateStatusApproved:
			stats.Approved++
		}
	}
	return stats, nil
}

// UpdateMaterials replaces the saved material lines. Each line is
// reconciled (total = qty * unit price) and the materials subtotal plus the
// grand total are re-derived; the other two buckets are untouched.
func (u *EstimateUseCase) UpdateMaterials(ctx context.Context, userID, id string, materials []entities.MaterialLine) (entities.Estimate, error) {
	existing, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	reconciled := pricing.ReconcileMaterials(materials)
	totals := pricing.ComputeTotals(existing.ManualEntries, reconciled, existing.AISubtotal)

	updated, err := u.repo.UpdateMaterialsByID(ctx, existing.ID, reconciled, totals.MaterialsSubtotal, totals.GrandTotal)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// UpdateManualEntries replaces the manual line items and re-derives the
// manual subtotal and grand total.
func (u *EstimateUseCase) UpdateManualEntries(ctx context.Context, userID, id string, entries []entities.ManualEntry) (entities.Estimate, error) {
	existing, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	if entries == nil {
		entries = []entities.ManualEntry{}
	}
	totals := pricing.ComputeTotals(entries, existing.Materials, existing.AISubtotal)

	updated, err := u.repo.UpdateManualEntriesByID(ctx, existing.ID, entries, totals.ManualEntriesSubtotal, totals.GrandTotal)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, userID, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	switch status {
	case entities.EstimateStatusDraft, entities.EstimateStatusPendingReview,
		entities.EstimateStatusSent, entities.EstimateStatusApproved, entities.EstimateStatusRejected:
	default:
		return entities.Estimate{}, ErrInvalidStatus
	}

	existing, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	updated, err := u.repo.UpdateStatusByID(ctx, existing.ID, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) getOwned(ctx context.Context, userID, id string) (entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Estimate{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" || e.UserID != userID {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
