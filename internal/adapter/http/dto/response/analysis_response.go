package response

import "aquashield/internal/domain/entities"

type AnalysisResponse struct {
	EstimatedArea         float64                `json:"estimated_area"`
	ComplexityScore       float64                `json:"complexity_score"`
	LaborHours            float64                `json:"labor_hours"`
	SpecialConsiderations []string               `json:"special_considerations"`
	Challenges            []string               `json:"challenges"`
	EquipmentNeeded       []string               `json:"equipment_needed"`
	Recommendations       []string               `json:"recommendations"`
	Materials             []MaterialLineResponse `json:"materials"`
	AIAnalysisSubtotal    float64                `json:"ai_analysis_subtotal"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func FromAnalysis(a entities.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		EstimatedArea:         a.EstimatedArea,
		ComplexityScore:       a.ComplexityScore,
		LaborHours:            a.LaborHours,
		SpecialConsiderations: a.SpecialConsiderations,
		Challenges:            a.Challenges,
		EquipmentNeeded:       a.EquipmentNeeded,
		Recommendations:       a.Recommendations,
		Materials:             fromMaterialLines(a.Materials),
		AIAnalysisSubtotal:    a.AIAnalysisSubtotal,
	}
}
