package response

import (
	"testing"
	"time"

	"aquashield/internal/domain/entities"
	"aquashield/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:     "est-1",
		UserID: "user-1",
		Project: entities.ProjectConfig{
			ProjectType: entities.ProjectTypeFlatRoof,
			Material:    entities.MaterialLiquidMembrane,
			LaborRate:   65,
		},
		Breakdown: entities.Breakdown{TotalEstimate: 11033.53},
		Materials: []entities.MaterialLine{
			{Name: "Primer", Quantity: 13, Unit: "gallons", UnitPrice: 45, TotalPrice: 585},
		},
		ManualEntries:         []entities.ManualEntry{{Description: "Extra labor", Qty: 8, Cost: 85}},
		AISubtotal:            23750,
		MaterialsSubtotal:     585,
		ManualEntriesSubtotal: 680,
		GrandTotal:            25015,
		Status:                entities.EstimateStatusDraft,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	resp := FromEstimate(e)

	if resp.ID != "est-1" || resp.Status != "draft" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Project.ProjectType != "flat_roof" || resp.Project.Material != "liquid_membrane" {
		t.Fatalf("unexpected project: %+v", resp.Project)
	}
	if resp.Breakdown.TotalEstimate != 11033.53 {
		t.Fatalf("unexpected breakdown: %+v", resp.Breakdown)
	}
	if len(resp.Materials) != 1 || resp.Materials[0].TotalPrice != 585 {
		t.Fatalf("unexpected materials: %+v", resp.Materials)
	}
	if resp.GrandTotal != 25015 {
		t.Fatalf("unexpected grand total: %v", resp.GrandTotal)
	}
}

func TestFromEstimates(t *testing.T) {
	resp := FromEstimates([]entities.Estimate{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	if resp.Count != 3 || len(resp.Estimates) != 3 {
		t.Fatalf("unexpected list response: %+v", resp)
	}

	empty := FromEstimates(nil)
	if empty.Count != 0 || empty.Estimates == nil {
		t.Fatalf("expected empty non-nil list, got %+v", empty)
	}
}

func TestFromStats(t *testing.T) {
	resp := FromStats(usecase.EstimateStats{TotalEstimates: 4, TotalValue: 8000, Drafts: 1, Pending: 2, Approved: 1})
	if resp.TotalEstimates != 4 || resp.TotalValue != 8000 || resp.Pending != 2 {
		t.Fatalf("unexpected stats response: %+v", resp)
	}
}
