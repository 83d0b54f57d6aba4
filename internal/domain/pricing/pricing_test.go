package pricing

import (
	"math"
	"testing"

	"aquashield/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func flatRoofProject() entities.ProjectConfig {
	return entities.ProjectConfig{
		ProjectType:      entities.ProjectTypeFlatRoof,
		BuildingType:     "office",
		Material:         entities.MaterialLiquidMembrane,
		AccessConditions: entities.AccessEasy,
		UrgencyLevel:     entities.UrgencyStandard,
		LaborRate:        65,
	}
}

func TestComputeEstimate_FlatRoofBaseline(t *testing.T) {
	analysis := entities.AnalysisResult{
		EstimatedArea:   1000,
		ComplexityScore: 5,
		LaborHours:      50,
	}

	b := ComputeEstimate(flatRoofProject(), analysis)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"analyzed area", b.AnalyzedArea, 1000},
		{"adjusted hours", b.LaborHours, 50},
		{"labor cost", b.LaborCost, 3250},
		{"material cost", b.MaterialCost, 3500},
		{"equipment cost", b.EquipmentCost, 1500},
		{"mobilization cost", b.MobilizationCost, 675},
		{"contingency amount", b.ContingencyAmount, 669.375},
		{"markup amount", b.MarkupAmount, 1439.15625},
		{"total estimate", b.TotalEstimate, 11033.53125},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestComputeEstimate_HighComplexityEmergency(t *testing.T) {
	project := flatRoofProject()
	project.AccessConditions = entities.AccessHighElevation
	project.UrgencyLevel = entities.UrgencyEmergency

	analysis := entities.AnalysisResult{
		EstimatedArea:   1000,
		ComplexityScore: 9,
		LaborHours:      50,
	}

	b := ComputeEstimate(project, analysis)

	// access x2.0, complexity multiplier 1.4 => 50 * 2.0 * 1.4 = 140h
	if !almostEqual(b.LaborHours, 140) {
		t.Fatalf("expected 140 adjusted hours, got %v", b.LaborHours)
	}
	if !almostEqual(b.LaborCost, 9100) {
		t.Fatalf("expected 9100 labor cost, got %v", b.LaborCost)
	}
	if !almostEqual(b.EquipmentCost, 2800) {
		t.Fatalf("expected 2800 equipment cost, got %v", b.EquipmentCost)
	}
	if !almostEqual(b.MaterialCost, 3500) {
		t.Fatalf("expected 3500 material cost, got %v", b.MaterialCost)
	}
	if !almostEqual(b.MobilizationCost, 1260) {
		t.Fatalf("expected 1260 mobilization cost, got %v", b.MobilizationCost)
	}
	if !almostEqual(b.ContingencyAmount, 1582.70) {
		t.Fatalf("expected 1582.70 contingency, got %v", b.ContingencyAmount)
	}
	// markup rate 0.15 + (1.8-1)*0.05 = 0.19 on subtotal+contingency
	if !almostEqual(b.MarkupAmount, 3466.113) {
		t.Fatalf("expected 3466.113 markup, got %v", b.MarkupAmount)
	}
	if !almostEqual(b.TotalEstimate, 21708.813) {
		t.Fatalf("expected 21708.813 total, got %v", b.TotalEstimate)
	}
}

func TestComputeEstimate_EmptyAnalysisDefaults(t *testing.T) {
	b := ComputeEstimate(flatRoofProject(), entities.AnalysisResult{})

	if b.AnalyzedArea != DefaultArea {
		t.Fatalf("expected default area %v, got %v", DefaultArea, b.AnalyzedArea)
	}
	if b.ComplexityScore != DefaultComplexity {
		t.Fatalf("expected default complexity %v, got %v", DefaultComplexity, b.ComplexityScore)
	}
	// default hours = area * 0.05 = 50, easy access, neutral complexity
	if !almostEqual(b.LaborHours, 50) {
		t.Fatalf("expected 50 default hours, got %v", b.LaborHours)
	}
	if b.TotalEstimate <= 0 {
		t.Fatalf("expected positive total, got %v", b.TotalEstimate)
	}
}

func TestComputeEstimate_MalformedNumbersNeverPanic(t *testing.T) {
	project := flatRoofProject()
	project.LaborRate = math.NaN()

	analysis := entities.AnalysisResult{
		EstimatedArea:   math.Inf(1),
		ComplexityScore: -3,
		LaborHours:      math.NaN(),
	}

	b := ComputeEstimate(project, analysis)
	if b.AnalyzedArea != DefaultArea || b.ComplexityScore != DefaultComplexity {
		t.Fatalf("expected defaults, got %+v", b)
	}
	if math.IsNaN(b.TotalEstimate) || math.IsInf(b.TotalEstimate, 0) {
		t.Fatalf("expected finite total, got %v", b.TotalEstimate)
	}
}

func TestComputeEstimate_UnrecognizedKeysFallBack(t *testing.T) {
	project := flatRoofProject()
	project.Material = "unobtanium_coating"
	project.AccessConditions = "zipline"
	project.UrgencyLevel = "yesterday"

	analysis := entities.AnalysisResult{EstimatedArea: 1000, ComplexityScore: 5, LaborHours: 50}
	b := ComputeEstimate(project, analysis)

	// default material rate 4.00, multipliers 1.0
	if !almostEqual(b.MaterialCost, 4000) {
		t.Fatalf("expected 4000 material cost, got %v", b.MaterialCost)
	}
	if !almostEqual(b.LaborHours, 50) {
		t.Fatalf("expected 50 hours, got %v", b.LaborHours)
	}
}

func TestComputeEstimate_UrgencyDoesNotScaleHours(t *testing.T) {
	analysis := entities.AnalysisResult{EstimatedArea: 1000, ComplexityScore: 5, LaborHours: 50}

	standard := ComputeEstimate(flatRoofProject(), analysis)

	project := flatRoofProject()
	project.UrgencyLevel = entities.UrgencyEmergency
	emergency := ComputeEstimate(project, analysis)

	if standard.LaborHours != emergency.LaborHours {
		t.Fatalf("urgency must not change hours: %v vs %v", standard.LaborHours, emergency.LaborHours)
	}
	if standard.LaborCost != emergency.LaborCost {
		t.Fatalf("urgency must not change labor cost: %v vs %v", standard.LaborCost, emergency.LaborCost)
	}
	if emergency.MarkupAmount <= standard.MarkupAmount {
		t.Fatalf("emergency markup should exceed standard: %v vs %v", emergency.MarkupAmount, standard.MarkupAmount)
	}
}

func TestComputeTotals(t *testing.T) {
	manual := []entities.ManualEntry{
		{Description: "Extra waterproofing membrane", Qty: 500, Unit: "sq ft", Cost: 2.50},
		{Description: "Additional labor", Qty: 8, Unit: "hours", Cost: 85},
	}
	materials := []entities.MaterialLine{
		{Name: "Primer", Quantity: 5, Unit: "gallons", UnitPrice: 45, TotalPrice: 225},
		{Name: "Sealant", Quantity: 10, Unit: "tubes", UnitPrice: 15, TotalPrice: 150},
	}

	t.Run("all buckets", func(t *testing.T) {
		got := ComputeTotals(manual, materials, 15000)
		if !almostEqual(got.ManualEntriesSubtotal, 1930) {
			t.Fatalf("expected 1930 manual subtotal, got %v", got.ManualEntriesSubtotal)
		}
		if !almostEqual(got.MaterialsSubtotal, 375) {
			t.Fatalf("expected 375 materials subtotal, got %v", got.MaterialsSubtotal)
		}
		if !almostEqual(got.GrandTotal, 17305) {
			t.Fatalf("expected 17305 grand total, got %v", got.GrandTotal)
		}
	})

	t.Run("both lists empty", func(t *testing.T) {
		got := ComputeTotals(nil, nil, 12000)
		if got.GrandTotal != 12000 {
			t.Fatalf("expected grand total == ai subtotal, got %v", got.GrandTotal)
		}
	})

	t.Run("malformed entries count as zero", func(t *testing.T) {
		got := ComputeTotals(
			[]entities.ManualEntry{{Qty: math.NaN(), Cost: 10}},
			[]entities.MaterialLine{{TotalPrice: math.Inf(1)}},
			100,
		)
		if got.GrandTotal != 100 {
			t.Fatalf("expected 100, got %v", got.GrandTotal)
		}
	})
}

func TestReconcileMaterials(t *testing.T) {
	t.Run("unit price derived from total", func(t *testing.T) {
		out := ReconcileMaterials([]entities.MaterialLine{
			{Name: "Membrane", Quantity: 100, Unit: "sq ft", TotalPrice: 450},
		})
		if !almostEqual(out[0].UnitPrice, 4.5) {
			t.Fatalf("expected 4.5 unit price, got %v", out[0].UnitPrice)
		}
		if !almostEqual(out[0].TotalPrice, 450) {
			t.Fatalf("expected 450 total, got %v", out[0].TotalPrice)
		}
	})

	t.Run("inconsistent total recomputed", func(t *testing.T) {
		out := ReconcileMaterials([]entities.MaterialLine{
			{Name: "Primer", Quantity: 10, Unit: "gallons", UnitPrice: 45, TotalPrice: 9999},
		})
		if !almostEqual(out[0].TotalPrice, 450) {
			t.Fatalf("expected reconciled 450 total, got %v", out[0].TotalPrice)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		out := ReconcileMaterials([]entities.MaterialLine{{}})
		m := out[0]
		if m.Name != "Unknown Material" || m.Unit != "units" {
			t.Fatalf("unexpected defaults: %+v", m)
		}
		if m.Quantity != 1 || m.UnitPrice != 0 || m.TotalPrice != 0 {
			t.Fatalf("unexpected numeric defaults: %+v", m)
		}
	})
}

func TestNormalizeAnalysis(t *testing.T) {
	got := NormalizeAnalysis(entities.AnalysisResult{})

	if got.EstimatedArea != DefaultArea || got.ComplexityScore != DefaultComplexity {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if !almostEqual(got.LaborHours, DefaultArea*DefaultHoursPerSqFt) {
		t.Fatalf("expected default hours, got %v", got.LaborHours)
	}
	if got.SpecialConsiderations == nil || got.Challenges == nil || got.EquipmentNeeded == nil || got.Recommendations == nil {
		t.Fatalf("narrative lists must never be nil: %+v", got)
	}
	if got.Materials == nil {
		t.Fatalf("materials must never be nil")
	}
}
