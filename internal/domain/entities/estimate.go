package entities

import "time"

// EstimateStatus represents the lifecycle of a saved estimate.
//
// Domain notes:
//   - An estimate is created as draft and moves forward as the contractor
//     reviews and sends it to the client.
//   - Status never affects pricing; it only drives list filtering and the
//     dashboard counters.

type EstimateStatus string

const (
	EstimateStatusDraft         EstimateStatus = "draft"
	EstimateStatusPendingReview EstimateStatus = "pending_review"
	EstimateStatusSent          EstimateStatus = "sent"
	EstimateStatusApproved      EstimateStatus = "approved"
	EstimateStatusRejected      EstimateStatus = "rejected"
)

// Breakdown is the itemized output of the pricing engine. Every
// intermediate cost is preserved because each is displayed and edited
// independently downstream.
//
// Invariant: TotalEstimate = LaborCost + MaterialCost + EquipmentCost +
// MobilizationCost + ContingencyAmount + MarkupAmount.
type Breakdown struct {
	AnalyzedArea      float64 `json:"analyzed_area"`
	ComplexityScore   float64 `json:"complexity_score"`
	LaborHours        float64 `json:"labor_hours"`
	LaborCost         float64 `json:"labor_cost"`
	MaterialCost      float64 `json:"material_cost"`
	EquipmentCost     float64 `json:"equipment_cost"`
	MobilizationCost  float64 `json:"mobilization_cost"`
	ContingencyAmount float64 `json:"contingency_amount"`
	MarkupAmount      float64 `json:"markup_amount"`
	TotalEstimate     float64 `json:"total_estimate"`
}

// Estimate is the persisted, user-owned cost projection for a single
// waterproofing project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, range key created_at
//
// Cost buckets:
//   - AISubtotal, MaterialsSubtotal and ManualEntriesSubtotal are additive
//     and mutually exclusive; GrandTotal is always their sum.
//   - Editing materials or manual entries after save re-derives the
//     affected subtotal and GrandTotal; the breakdown itself is untouched.

type Estimate struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Project      ProjectConfig `json:"project"`
	BlueprintURL string        `json:"blueprint_url,omitempty"`
	PhotoURLs    []string      `json:"photo_urls,omitempty"`

	Analysis  AnalysisResult `json:"ai_analysis"`
	Breakdown Breakdown      `json:"breakdown"`

	Materials     []MaterialLine `json:"materials"`
	ManualEntries []ManualEntry  `json:"manual_entries"`

	AISubtotal            float64 `json:"ai_subtotal"`
	MaterialsSubtotal     float64 `json:"materials_subtotal"`
	ManualEntriesSubtotal float64 `json:"manual_entries_subtotal"`
	GrandTotal            float64 `json:"grand_total"`

	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
