// Package pricing implements the estimate pricing engine: a pure,
// deterministic transformation from project configuration and AI-derived
// measurements into an itemized cost breakdown.
//
// The engine performs no I/O and never fails. Missing or malformed numeric
// inputs are coerced to documented defaults, and lookups against the rate
// tables fall back to a default rate/multiplier for unrecognized keys.
package pricing

import (
	"math"

	"aquashield/internal/domain/entities"
)

// Defaults substituted when the analysis omits a numeric field.
const (
	DefaultArea         = 1000.0
	DefaultComplexity   = 5.0
	DefaultHoursPerSqFt = 0.05

	defaultMaterialRate = 4.00
	mobilizationRate    = 0.10
)

// materialRates is the fixed $/sq ft table per waterproofing system.
var materialRates = map[entities.Material]float64{
	entities.MaterialLiquidMembrane:    3.50,
	entities.MaterialHotAppliedAsphalt: 4.25,
	entities.MaterialSheetMembrane:     5.00,
	entities.MaterialBentonite:         2.75,
	entities.MaterialCrystalline:       6.50,
	entities.MaterialEpoxyInjection:    8.00,
	entities.MaterialPolyurethane:      7.25,
	entities.MaterialModifiedBitumen:   4.50,
}

// accessMultipliers scale labor hours and equipment cost.
var accessMultipliers = map[entities.AccessCondition]float64{
	entities.AccessEasy:            1.0,
	entities.AccessRestricted:      1.3,
	entities.AccessLiftScaffolding: 1.6,
	entities.AccessConfinedSpace:   1.8,
	entities.AccessHighElevation:   2.0,
}

// urgencyMultipliers feed the markup rate only; hours are never scaled by
// urgency.
var urgencyMultipliers = map[entities.UrgencyLevel]float64{
	entities.UrgencyStandard:  1.0,
	entities.UrgencyRush:      1.4,
	entities.UrgencyEmergency: 1.8,
}

// MaterialRate returns the $/sq ft rate for a material, or the default rate
// for unrecognized values.
func MaterialRate(m entities.Material) float64 {
	if r, ok := materialRates[m]; ok {
		return r
	}
	return defaultMaterialRate
}

// AccessMultiplier returns the labor/equipment multiplier for an access
// condition, 1.0 for unrecognized values.
func AccessMultiplier(a entities.AccessCondition) float64 {
	if m, ok := accessMultipliers[a]; ok {
		return m
	}
	return 1.0
}

// UrgencyMultiplier returns the urgency multiplier, 1.0 for unrecognized
// values.
func UrgencyMultiplier(u entities.UrgencyLevel) float64 {
	if m, ok := urgencyMultipliers[u]; ok {
		return m
	}
	return 1.0
}

// ComputeEstimate derives the full cost breakdown from the project intake
// and the AI analysis. Pure and deterministic: identical inputs always
// produce identical output.
//
// Urgency affects only the markup rate; mobilization is a flat 10% of
// labor+material regardless of any other factor.
func ComputeEstimate(project entities.ProjectConfig, analysis entities.AnalysisResult) entities.Breakdown {
	area := coerce(analysis.EstimatedArea, DefaultArea)
	complexity := coerce(analysis.ComplexityScore, DefaultComplexity)
	baseHours := coerce(analysis.LaborHours, area*DefaultHoursPerSqFt)

	accessMultiplier := AccessMultiplier(project.AccessConditions)
	urgencyMultiplier := UrgencyMultiplier(project.UrgencyLevel)
	complexityMultiplier := 1 + (complexity-5)*0.1

	adjustedHours := baseHours * accessMultiplier * complexityMultiplier

	laborCost := adjustedHours * sanitize(project.LaborRate)
	materialCost := area * MaterialRate(project.Material)
	equipmentCost := area*(accessMultiplier*0.5) + complexity*200
	mobilizationCost := (laborCost + materialCost) * mobilizationRate

	subtotal := laborCost + materialCost + equipmentCost + mobilizationCost

	contingencyRate := 0.05 + complexity*0.005
	contingencyAmount := subtotal * contingencyRate

	markupRate := 0.15 + (urgencyMultiplier-1)*0.05
	markupAmount := (subtotal + contingencyAmount) * markupRate

	return entities.Breakdown{
		AnalyzedArea:      area,
		ComplexityScore:   complexity,
		LaborHours:        adjustedHours,
		LaborCost:         laborCost,
		MaterialCost:      materialCost,
		EquipmentCost:     equipmentCost,
		MobilizationCost:  mobilizationCost,
		ContingencyAmount: contingencyAmount,
		MarkupAmount:      markupAmount,
		TotalEstimate:     subtotal + contingencyAmount + markupAmount,
	}
}

// Totals are the three independent cost buckets rolled into the grand
// total. The buckets are commutative and mutually exclusive, so any single
// edit can recompute its own bucket without touching the others.
type Totals struct {
	AISubtotal            float64 `json:"ai_subtotal"`
	MaterialsSubtotal     float64 `json:"materials_subtotal"`
	ManualEntriesSubtotal float64 `json:"manual_entries_subtotal"`
	GrandTotal            float64 `json:"grand_total"`
}

// ComputeTotals sums the three cost buckets. Each manual entry contributes
// qty*cost, each material line its total price; malformed numbers count as
// zero.
func ComputeTotals(manual []entities.ManualEntry, materials []entities.MaterialLine, aiSubtotal float64) Totals {
	t := Totals{AISubtotal: sanitize(aiSubtotal)}
	for _, e := range manual {
		t.ManualEntriesSubtotal += sanitize(e.Qty) * sanitize(e.Cost)
	}
	for _, m := range materials {
		t.MaterialsSubtotal += sanitize(m.TotalPrice)
	}
	t.GrandTotal = t.AISubtotal + t.MaterialsSubtotal + t.ManualEntriesSubtotal
	return t
}

// ReconcileMaterials normalizes AI-supplied or user-edited material lines:
// quantity defaults to 1, the unit price is derived from the total when
// absent, and the total is recomputed whenever it is absent or inconsistent
// with quantity*unit price.
func ReconcileMaterials(lines []entities.MaterialLine) []entities.MaterialLine {
	out := make([]entities.MaterialLine, 0, len(lines))
	for _, l := range lines {
		qty := coerce(l.Quantity, 1)
		unitPrice := sanitize(l.UnitPrice)
		totalPrice := sanitize(l.TotalPrice)

		if unitPrice <= 0 && totalPrice > 0 && qty > 0 {
			unitPrice = totalPrice / qty
		}
		if totalPrice <= 0 || math.Abs(totalPrice-unitPrice*qty) > 1e-9 {
			totalPrice = unitPrice * qty
		}

		name := l.Name
		if name == "" {
			name = "Unknown Material"
		}
		unit := l.Unit
		if unit == "" {
			unit = "units"
		}

		out = append(out, entities.MaterialLine{
			Name:       name,
			Quantity:   qty,
			Unit:       unit,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
		})
	}
	return out
}

// NormalizeAnalysis coerces a raw provider result into the single analysis
// shape the rest of the system consumes: numeric defaults applied, material
// lines reconciled, narrative lists never nil.
func NormalizeAnalysis(a entities.AnalysisResult) entities.AnalysisResult {
	area := coerce(a.EstimatedArea, DefaultArea)
	a.EstimatedArea = area
	a.ComplexityScore = coerce(a.ComplexityScore, DefaultComplexity)
	a.LaborHours = coerce(a.LaborHours, area*DefaultHoursPerSqFt)
	a.AIAnalysisSubtotal = sanitize(a.AIAnalysisSubtotal)
	a.Materials = ReconcileMaterials(a.Materials)

	if a.SpecialConsiderations == nil {
		a.SpecialConsiderations = []string{}
	}
	if a.Challenges == nil {
		a.Challenges = []string{}
	}
	if a.EquipmentNeeded == nil {
		a.EquipmentNeeded = []string{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	return a
}

// coerce replaces non-finite or non-positive values with a default.
func coerce(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return def
	}
	return v
}

// sanitize replaces non-finite values with zero but keeps zero itself.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
