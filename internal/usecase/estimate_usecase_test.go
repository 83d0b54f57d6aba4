package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"aquashield/internal/domain/entities"
	mock_interfaces "aquashield/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func baselineInput() CreateEstimateInput {
	return CreateEstimateInput{
		Project: entities.ProjectConfig{
			ProjectType:      entities.ProjectTypeFlatRoof,
			Material:         entities.MaterialLiquidMembrane,
			AccessConditions: entities.AccessEasy,
			UrgencyLevel:     entities.UrgencyStandard,
			LaborRate:        65,
		},
		Analysis: entities.AnalysisResult{
			EstimatedArea:   1000,
			ComplexityScore: 5,
			LaborHours:      50,
		},
	}
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Create(context.Background(), "   ", baselineInput())
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid labor rate", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		input := baselineInput()
		input.Project.LaborRate = 0
		_, err := uc.Create(context.Background(), "user-1", input)
		if !errors.Is(err, ErrInvalidLaborRate) {
			t.Fatalf("expected ErrInvalidLaborRate, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.Create(context.Background(), "user-1", baselineInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success with computed breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.UserID != "user-1" || e.Status != entities.EstimateStatusDraft {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if math.Abs(e.Breakdown.TotalEstimate-11033.53125) > 1e-6 {
					t.Fatalf("unexpected total estimate: %v", e.Breakdown.TotalEstimate)
				}
				// no provider subtotal: ai bucket falls back to the engine total
				if e.AISubtotal != e.Breakdown.TotalEstimate {
					t.Fatalf("expected ai subtotal fallback, got %v", e.AISubtotal)
				}
				if e.GrandTotal != e.AISubtotal {
					t.Fatalf("expected grand total == ai subtotal with empty lists, got %v", e.GrandTotal)
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), " user-1 ", baselineInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("create sums all three buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		input := baselineInput()
		input.Analysis.AIAnalysisSubtotal = 15000
		input.Analysis.Materials = []entities.MaterialLine{
			{Name: "Primer", Quantity: 5, Unit: "gallons", UnitPrice: 45, TotalPrice: 225},
		}
		input.ManualEntries = []entities.ManualEntry{
			{Description: "Extra labor", Qty: 8, Unit: "hours", Cost: 85},
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.AISubtotal != 15000 {
					t.Fatalf("expected provider subtotal kept, got %v", e.AISubtotal)
				}
				if e.MaterialsSubtotal != 225 || e.ManualEntriesSubtotal != 680 {
					t.Fatalf("unexpected subtotals: %+v", e)
				}
				if e.GrandTotal != 15905 {
					t.Fatalf("expected 15905 grand total, got %v", e.GrandTotal)
				}
				return e, nil
			},
		)

		if _, err := uc.Create(context.Background(), "user-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.GetByID(context.Background(), "", "est-1")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid estimate id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.GetByID(context.Background(), "user-1", "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "user-1", "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "user-1", "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("other owner is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", UserID: "someone-else"}, nil)

		_, err := uc.GetByID(context.Background(), "user-1", "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		expected := entities.Estimate{ID: "est-1", UserID: "user-1"}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(expected, nil)

		res, err := uc.GetByID(context.Background(), " user-1 ", " est-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "est-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestEstimateUseCase_ListAndStats(t *testing.T) {
	t.Run("list invalid user", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.ListByUser(context.Background(), " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("stats aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Estimate{
			{ID: "a", GrandTotal: 1000, Status: entities.EstimateStatusDraft},
			{ID: "b", GrandTotal: 2500, Status: entities.EstimateStatusSent},
			{ID: "c", GrandTotal: 500, Status: entities.EstimateStatusPendingReview},
			{ID: "d", GrandTotal: 4000, Status: entities.EstimateStatusApproved},
		}, nil)

		stats, err := uc.Stats(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalEstimates != 4 || stats.TotalValue != 8000 {
			t.Fatalf("unexpected totals: %+v", stats)
		}
		if stats.Drafts != 1 || stats.Pending != 2 || stats.Approved != 1 {
			t.Fatalf("unexpected counters: %+v", stats)
		}
	})
}

func TestEstimateUseCase_UpdateMaterials(t *testing.T) {
	existing := entities.Estimate{
		ID:                    "est-1",
		UserID:                "user-1",
		AISubtotal:            1000,
		ManualEntries:         []entities.ManualEntry{{Description: "x", Qty: 5, Cost: 10}},
		ManualEntriesSubtotal: 50,
	}

	t.Run("rederives subtotals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().UpdateMaterialsByID(gomock.Any(), "est-1", gomock.Any(), 20.0, 1070.0).DoAndReturn(
			func(_ context.Context, id string, materials []entities.MaterialLine, materialsSubtotal, grandTotal float64) (entities.Estimate, error) {
				if len(materials) != 1 || materials[0].TotalPrice != 20 {
					t.Fatalf("expected reconciled line, got %+v", materials)
				}
				updated := existing
				updated.Materials = materials
				updated.MaterialsSubtotal = materialsSubtotal
				updated.GrandTotal = grandTotal
				return updated, nil
			},
		)

		res, err := uc.UpdateMaterials(context.Background(), "user-1", "est-1", []entities.MaterialLine{
			{Name: "Sealant", Quantity: 10, Unit: "tubes", UnitPrice: 2},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GrandTotal != 1070 {
			t.Fatalf("expected 1070 grand total, got %v", res.GrandTotal)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.UpdateMaterials(context.Background(), "user-1", "est-1", nil)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("repo update error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().UpdateMaterialsByID(gomock.Any(), "est-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.UpdateMaterials(context.Background(), "user-1", "est-1", nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateManualEntries(t *testing.T) {
	existing := entities.Estimate{
		ID:                "est-1",
		UserID:            "user-1",
		AISubtotal:        2000,
		Materials:         []entities.MaterialLine{{Name: "Primer", Quantity: 2, UnitPrice: 50, TotalPrice: 100}},
		MaterialsSubtotal: 100,
	}

	t.Run("rederives manual bucket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().UpdateManualEntriesByID(gomock.Any(), "est-1", gomock.Any(), 1930.0, 4030.0).Return(entities.Estimate{ID: "est-1", UserID: "user-1", GrandTotal: 4030}, nil)

		res, err := uc.UpdateManualEntries(context.Background(), "user-1", "est-1", []entities.ManualEntry{
			{Description: "Extra membrane", Qty: 500, Unit: "sq ft", Cost: 2.50},
			{Description: "Extra labor", Qty: 8, Unit: "hours", Cost: 85},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GrandTotal != 4030 {
			t.Fatalf("expected 4030, got %v", res.GrandTotal)
		}
	})

	t.Run("clearing entries leaves other buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().UpdateManualEntriesByID(gomock.Any(), "est-1", gomock.Len(0), 0.0, 2100.0).Return(entities.Estimate{ID: "est-1", UserID: "user-1", GrandTotal: 2100}, nil)

		if _, err := uc.UpdateManualEntries(context.Background(), "user-1", "est-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "user-1", "est-1", "archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", UserID: "user-1"}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.EstimateStatusSent).Return(entities.Estimate{ID: "est-1", UserID: "user-1", Status: entities.EstimateStatusSent}, nil)

		res, err := uc.UpdateStatus(context.Background(), "user-1", "est-1", entities.EstimateStatusSent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusSent {
			t.Fatalf("expected sent, got %s", res.Status)
		}
	})

	t.Run("not found after update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", UserID: "user-1"}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.EstimateStatusApproved).Return(entities.Estimate{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "user-1", "est-1", entities.EstimateStatusApproved)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
