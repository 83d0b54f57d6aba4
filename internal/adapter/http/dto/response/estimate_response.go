package response

import (
	"time"

	"aquashield/internal/domain/entities"
	"aquashield/internal/usecase"
)

type ProjectConfigResponse struct {
	ProjectType      string  `json:"project_type"`
	BuildingType     string  `json:"building_type"`
	Material         string  `json:"waterproofing_material"`
	AccessConditions string  `json:"access_conditions"`
	UrgencyLevel     string  `json:"urgency_level"`
	LaborRate        float64 `json:"labor_rate"`
	ZipCode          string  `json:"zip_code"`
	ClientName       string  `json:"client_name"`
	ProjectName      string  `json:"project_name"`
	Notes            string  `json:"notes"`
}

type MaterialLineResponse struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type ManualEntryResponse struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Unit        string  `json:"unit"`
	Cost        float64 `json:"cost"`
}

type BreakdownResponse struct {
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

type EstimateResponse struct {
	ID                    string                 `json:"id"`
	UserID                string                 `json:"user_id"`
	Project               ProjectConfigResponse  `json:"project"`
	BlueprintURL          string                 `json:"blueprint_url,omitempty"`
	PhotoURLs             []string               `json:"photo_urls,omitempty"`
	Analysis              AnalysisResponse       `json:"ai_analysis"`
	Breakdown             BreakdownResponse      `json:"breakdown"`
	Materials             []MaterialLineResponse `json:"materials"`
	ManualEntries         []ManualEntryResponse  `json:"manual_entries"`
	AISubtotal            float64                `json:"ai_subtotal"`
	MaterialsSubtotal     float64                `json:"materials_subtotal"`
	ManualEntriesSubtotal float64                `json:"manual_entries_subtotal"`
	GrandTotal            float64                `json:"grand_total"`
	Status                string                 `json:"status"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

type EstimateListResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
	Count     int                `json:"count"`
}

type StatsResponse struct {
	TotalEstimates int     `json:"total_estimates"`
	TotalValue     float64 `json:"total_value"`
	Drafts         int     `json:"drafts"`
	Pending        int     `json:"pending"`
	Approved       int     `json:"approved"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:     e.ID,
		UserID: e.UserID,
		Project: ProjectConfigResponse{
			ProjectType:      string(e.Project.ProjectType),
			BuildingType:     e.Project.BuildingType,
			Material:         string(e.Project.Material),
			AccessConditions: string(e.Project.AccessConditions),
			UrgencyLevel:     string(e.Project.UrgencyLevel),
			LaborRate:        e.Project.LaborRate,
			ZipCode:          e.Project.ZipCode,
			ClientName:       e.Project.ClientName,
			ProjectName:      e.Project.ProjectName,
			Notes:            e.Project.Notes,
		},
		BlueprintURL: e.BlueprintURL,
		PhotoURLs:    e.PhotoURLs,
		Analysis:     FromAnalysis(e.Analysis),
		Breakdown: BreakdownResponse{
			AnalyzedArea:      e.Breakdown.AnalyzedArea,
			ComplexityScore:   e.Breakdown.ComplexityScore,
			LaborHours:        e.Breakdown.LaborHours,
			LaborCost:         e.Breakdown.LaborCost,
			MaterialCost:      e.Breakdown.MaterialCost,
			EquipmentCost:     e.Breakdown.EquipmentCost,
			MobilizationCost:  e.Breakdown.MobilizationCost,
			ContingencyAmount: e.Breakdown.ContingencyAmount,
			MarkupAmount:      e.Breakdown.MarkupAmount,
			TotalEstimate:     e.Breakdown.TotalEstimate,
		},
		Materials:             fromMaterialLines(e.Materials),
		ManualEntries:         fromManualEntries(e.ManualEntries),
		AISubtotal:            e.AISubtotal,
		MaterialsSubtotal:     e.MaterialsSubtotal,
		ManualEntriesSubtotal: e.ManualEntriesSubtotal,
		GrandTotal:            e.GrandTotal,
		Status:                string(e.Status),
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) EstimateListResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return EstimateListResponse{Estimates: out, Count: len(out)}
}

func FromStats(s usecase.EstimateStats) StatsResponse {
	return StatsResponse{
		TotalEstimates: s.TotalEstimates,
		TotalValue:     s.TotalValue,
		Drafts:         s.Drafts,
		Pending:        s.Pending,
		Approved:       s.Approved,
	}
}

func fromMaterialLines(lines []entities.MaterialLine) []MaterialLineResponse {
	out := make([]MaterialLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, MaterialLineResponse{
			Name:       l.Name,
			Quantity:   l.Quantity,
			Unit:       l.Unit,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		})
	}
	return out
}

func fromManualEntries(entries []entities.ManualEntry) []ManualEntryResponse {
	out := make([]ManualEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ManualEntryResponse{
			Description: e.Description,
			Qty:         e.Qty,
			Unit:        e.Unit,
			Cost:        e.Cost,
		})
	}
	return out
}
