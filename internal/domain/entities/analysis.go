package entities

// MaterialLine is one AI-suggested (and later user-editable) material line
// item. TotalPrice is kept consistent with Quantity*UnitPrice by the pricing
// package whenever a line is ingested or edited.
type MaterialLine struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// ManualEntry is a user-typed ad-hoc line item added outside the AI
// materials list. Its contribution to the grand total is Qty*Cost.
type ManualEntry struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Unit        string  `json:"unit"`
	Cost        float64 `json:"cost"`
}

// AnalysisResult is the normalized output of the AI analysis provider (or
// its deterministic mock).
//
// Numeric fields may come back zero/absent from the provider; the pricing
// package substitutes the documented defaults (area 1000, complexity 5,
// labor hours area*0.05) rather than erroring.
//
// AIAnalysisSubtotal is the provider's own labor/equipment/overhead cost
// figure. When the provider gives none, the computed total estimate is used
// in its place (backward-compatible field).
type AnalysisResult struct {
	EstimatedArea         float64        `json:"estimated_area"`
	ComplexityScore       float64        `json:"complexity_score"`
	LaborHours            float64        `json:"labor_hours"`
	SpecialConsiderations []string       `json:"special_considerations"`
	Challenges            []string       `json:"challenges"`
	EquipmentNeeded       []string       `json:"equipment_needed"`
	Recommendations       []string       `json:"recommendations"`
	Materials             []MaterialLine `json:"materials"`
	AIAnalysisSubtotal    float64        `json:"ai_analysis_subtotal"`
}
