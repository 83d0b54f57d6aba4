package request

import (
	"aquashield/internal/domain/entities"
	"aquashield/internal/usecase"
)

type ProjectConfigRequest struct {
	ProjectType      string  `json:"project_type" binding:"required"`
	BuildingType     string  `json:"building_type"`
	Material         string  `json:"waterproofing_material"`
	AccessConditions string  `json:"access_conditions"`
	UrgencyLevel     string  `json:"urgency_level"`
	LaborRate        float64 `json:"labor_rate" binding:"required"`
	ZipCode          string  `json:"zip_code"`
	ClientName       string  `json:"client_name"`
	ProjectName      string  `json:"project_name"`
	Notes            string  `json:"notes"`
}

type MaterialLineRequest struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type ManualEntryRequest struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Unit        string  `json:"unit"`
	Cost        float64 `json:"cost"`
}

type AnalysisResultRequest struct {
	EstimatedArea         float64               `json:"estimated_area"`
	ComplexityScore       float64               `json:"complexity_score"`
	LaborHours            float64               `json:"labor_hours"`
	SpecialConsiderations []string              `json:"special_considerations"`
	Challenges            []string              `json:"challenges"`
	EquipmentNeeded       []string              `json:"equipment_needed"`
	Recommendations       []string              `json:"recommendations"`
	Materials             []MaterialLineRequest `json:"materials"`
	AIAnalysisSubtotal    float64               `json:"ai_analysis_subtotal"`
}

// CreateEstimateRequest is the save-time payload: the intake form plus the
// analysis the client already ran (or an empty one when skipping analysis).
type CreateEstimateRequest struct {
	Project       ProjectConfigRequest  `json:"project" binding:"required"`
	Analysis      AnalysisResultRequest `json:"ai_analysis"`
	ManualEntries []ManualEntryRequest  `json:"manual_entries"`
	BlueprintURL  string                `json:"blueprint_url"`
	PhotoURLs     []string              `json:"photo_urls"`
}

type UpdateMaterialsRequest struct {
	Materials []MaterialLineRequest `json:"materials"`
}

type UpdateManualEntriesRequest struct {
	ManualEntries []ManualEntryRequest `json:"manual_entries"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ProjectConfigRequest) ToEntity() entities.ProjectConfig {
	return entities.ProjectConfig{
		ProjectType:      entities.ProjectType(r.ProjectType),
		BuildingType:     r.BuildingType,
		Material:         entities.Material(r.Material),
		AccessConditions: entities.AccessCondition(r.AccessConditions),
		UrgencyLevel:     entities.UrgencyLevel(r.UrgencyLevel),
		LaborRate:        r.LaborRate,
		ZipCode:          r.ZipCode,
		ClientName:       r.ClientName,
		ProjectName:      r.ProjectName,
		Notes:            r.Notes,
	}
}

func (r AnalysisResultRequest) ToEntity() entities.AnalysisResult {
	return entities.AnalysisResult{
		EstimatedArea:         r.EstimatedArea,
		ComplexityScore:       r.ComplexityScore,
		LaborHours:            r.LaborHours,
		SpecialConsiderations: r.SpecialConsiderations,
		Challenges:            r.Challenges,
		EquipmentNeeded:       r.EquipmentNeeded,
		Recommendations:       r.Recommendations,
		Materials:             ToMaterialLines(r.Materials),
		AIAnalysisSubtotal:    r.AIAnalysisSubtotal,
	}
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		Project:       r.Project.ToEntity(),
		Analysis:      r.Analysis.ToEntity(),
		ManualEntries: ToManualEntries(r.ManualEntries),
		BlueprintURL:  r.BlueprintURL,
		PhotoURLs:     r.PhotoURLs,
	}
}

func ToMaterialLines(lines []MaterialLineRequest) []entities.MaterialLine {
	out := make([]entities.MaterialLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.MaterialLine{
			Name:       l.Name,
			Quantity:   l.Quantity,
			Unit:       l.Unit,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		})
	}
	return out
}

func ToManualEntries(entries []ManualEntryRequest) []entities.ManualEntry {
	out := make([]entities.ManualEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entities.ManualEntry{
			Description: e.Description,
			Qty:         e.Qty,
			Unit:        e.Unit,
			Cost:        e.Cost,
		})
	}
	return out
}
