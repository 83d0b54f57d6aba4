package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"aquashield/internal/domain/entities"
	"aquashield/internal/usecase/interfaces"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")
var ErrOpenAIGatewayNotConfigured = errors.New("openai gateway not configured")
var ErrEmptyCompletion = errors.New("empty completion from provider")

const (
	defaultOpenAIModel   = "gpt-4o"
	openAICompletionsURL = "https://api.openai.com/v1/chat/completions"

	analysisSystemPrompt = `You are an expert waterproofing project estimator. Your job is to analyze project details and uploaded images to estimate square footage, labor hours, complexity, and special considerations.

Return your response as a JSON object with the following structure:
{
  "estimated_area": number (square feet),
  "complexity_score": number (1-10 scale),
  "labor_hours": number,
  "special_considerations": array of strings,
  "challenges": array of strings,
  "equipment_needed": array of strings,
  "recommendations": array of strings,
  "ai_analysis_subtotal": number (total cost for labor, equipment, overhead),
  "materials": array of objects with structure {"name": string, "quantity": number, "unit": string, "unit_price": number, "total_price": number}
}`

	chatSystemPrompt = "You are an expert waterproofing consultant. Provide clear, helpful responses about waterproofing topics."
)

// OpenAIGateway implements the analysis provider against the OpenAI chat
// completions API.
//
// Mock mode (ANALYSIS_PROVIDER_MOCK/OPENAI_MOCK) returns deterministic
// results derived from the project description, so the whole estimate flow
// works offline and in CI without an API key.

type OpenAIGateway struct {
	apiKey     string
	model      string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IAnalysisProvider = (*OpenAIGateway)(nil)

func NewOpenAIGateway(apiKey string) (*OpenAIGateway, error) {
	if isAnalysisGatewayMockEnabled() {
		log.Printf("[analysis][gateway] mock mode enabled")
		return &OpenAIGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[analysis][gateway] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}

	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = defaultOpenAIModel
	}
	log.Printf("[analysis][gateway] OpenAI client initialized model=%s", model)

	return &OpenAIGateway{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []wireMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// wireMessage.Content is either a plain string or a list of content parts
// (text plus image_url entries) for vision requests.
type wireMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *imageURLPart `json:"image_url,omitempty"`
}

type imageURLPart struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type analysisPayload struct {
	EstimatedArea         float64 `json:"estimated_area"`
	AreaSqFt              float64 `json:"area_sq_ft"`
	ComplexityScore       float64 `json:"complexity_score"`
	LaborHours            float64 `json:"labor_hours"`
	SpecialConsiderations []string `json:"special_considerations"`
	Challenges            []string `json:"challenges"`
	EquipmentNeeded       []string `json:"equipment_needed"`
	Recommendations       []string `json:"recommendations"`
	AIAnalysisSubtotal    float64  `json:"ai_analysis_subtotal"`
	Materials             []struct {
		Name       string  `json:"name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	} `json:"materials"`
}

func (g *OpenAIGateway) AnalyzeProject(ctx context.Context, req interfaces.AnalysisRequest) (entities.AnalysisResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[analysis][gateway] mock analyze start images=%d", len(req.ImageURLs))
		return mockAnalysis(req.Description), nil
	}
	if g == nil || g.httpClient == nil {
		log.Printf("[analysis][gateway] gateway not configured")
		return entities.AnalysisResult{}, ErrOpenAIGatewayNotConfigured
	}

	userParts := []contentPart{{Type: "text", Text: analysisUserText(req.Description)}}
	for _, u := range req.ImageURLs {
		userParts = append(userParts, contentPart{
			Type:     "image_url",
			ImageURL: &imageURLPart{URL: u, Detail: "high"},
		})
	}

	body := chatCompletionRequest{
		Model: g.model,
		Messages: []wireMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: userParts},
		},
		Temperature:    0.2,
		MaxTokens:      800,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	log.Printf("[analysis][gateway] analyze start images=%d", len(req.ImageURLs))
	content, err := g.complete(ctx, body)
	if err != nil {
		log.Printf("[analysis][gateway] analyze failed err=%v", err)
		return entities.AnalysisResult{}, err
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		log.Printf("[analysis][gateway] completion unmarshal failed err=%v", err)
		return entities.AnalysisResult{}, err
	}

	result := payloadToResult(payload)
	log.Printf("[analysis][gateway] analyze success area=%.0f complexity=%.1f materials=%d",
		result.EstimatedArea, result.ComplexityScore, len(result.Materials))
	return result, nil
}

func (g *OpenAIGateway) Chat(ctx context.Context, messages []interfaces.ChatMessage) (string, error) {
	if g != nil && g.mockMode {
		return "I'm a waterproofing expert assistant. For a full AI experience, please configure your OpenAI API key. I can help with general waterproofing questions, material selection, and best practices.", nil
	}
	if g == nil || g.httpClient == nil {
		return "", ErrOpenAIGatewayNotConfigured
	}

	wire := make([]wireMessage, 0, len(messages)+1)
	wire = append(wire, wireMessage{Role: "system", Content: chatSystemPrompt})
	for _, m := range messages {
		wire = append(wire, wireMessage{Role: m.Role, Content: m.Content})
	}

	return g.complete(ctx, chatCompletionRequest{
		Model:       g.model,
		Messages:    wire,
		Temperature: 0.2,
		MaxTokens:   500,
	})
}

func (g *OpenAIGateway) complete(ctx context.Context, body chatCompletionRequest) (string, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openAICompletionsURL, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai api error: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return parsed.Choices[0].Message.Content, nil
}

func analysisUserText(description string) string {
	return fmt.Sprintf(`Project Description:
%s

Analyze the project details and any uploaded image/blueprint and return a JSON response with the required fields for waterproofing estimation, including:

1. A detailed materials list with realistic quantities, units, and current market prices
2. Each material must include: name, quantity, unit, unit_price, and total_price
3. Use specific material names (e.g., "Modified Bitumen Membrane", "EPDM Primer")
4. Provide accurate unit prices based on current market rates for waterproofing materials
5. Calculate total_price = quantity * unit_price for each material
6. Include ai_analysis_subtotal covering labor, equipment, overhead (excluding materials)`, description)
}

func payloadToResult(p analysisPayload) entities.AnalysisResult {
	area := p.EstimatedArea
	if area == 0 {
		area = p.AreaSqFt
	}

	materials := make([]entities.MaterialLine, 0, len(p.Materials))
	for _, m := range p.Materials {
		materials = append(materials, entities.MaterialLine{
			Name:       m.Name,
			Quantity:   m.Quantity,
			Unit:       m.Unit,
			UnitPrice:  m.UnitPrice,
			TotalPrice: m.TotalPrice,
		})
	}

	return entities.AnalysisResult{
		EstimatedArea:         area,
		ComplexityScore:       p.ComplexityScore,
		LaborHours:            p.LaborHours,
		SpecialConsiderations: p.SpecialConsiderations,
		Challenges:            p.Challenges,
		EquipmentNeeded:       p.EquipmentNeeded,
		Recommendations:       p.Recommendations,
		AIAnalysisSubtotal:    p.AIAnalysisSubtotal,
		Materials:             materials,
	}
}

// mockAnalysis derives stable numbers from keywords in the description so
// demo estimates look plausible and repeat identically.
func mockAnalysis(description string) entities.AnalysisResult {
	d := strings.ToLower(description)

	area := 1000.0
	switch {
	case strings.Contains(d, "roof"):
		area = 2500
	case strings.Contains(d, "foundation"):
		area = 800
	case strings.Contains(d, "deck"):
		area = 1200
	}

	complexity := 5.0
	switch {
	case strings.Contains(d, "high_elevation"):
		complexity = 8
	case strings.Contains(d, "confined_space"):
		complexity = 7
	case strings.Contains(d, "restricted"):
		complexity = 6
	}

	primerGallons := math.Ceil(area / 200)
	sealantTubes := math.Ceil(area / 100)

	return entities.AnalysisResult{
		EstimatedArea:   area,
		ComplexityScore: complexity,
		LaborHours:      math.Round(area*0.04 + complexity*5),
		SpecialConsiderations: []string{
			"Mock analysis - Configure OpenAI API key for AI-powered estimates",
			"Standard surface preparation required",
			"Weather conditions may affect timeline",
		},
		Challenges: []string{
			"Demo mode - Real AI analysis available with API key",
			"Access coordination with other trades",
		},
		EquipmentNeeded: []string{
			"Standard waterproofing tools",
			"Safety equipment",
			"Surface preparation equipment",
		},
		Recommendations: []string{
			"Add OpenAI API key to .env file for intelligent analysis",
			"Upload clear blueprints for accurate estimates",
			"Consider weather protection during application",
		},
		AIAnalysisSubtotal: area*8.5 + complexity*500,
		Materials: []entities.MaterialLine{
			{Name: "Modified Bitumen Membrane", Quantity: area, Unit: "square feet", UnitPrice: 1.5, TotalPrice: area * 1.5},
			{Name: "Primer", Quantity: primerGallons, Unit: "gallons", UnitPrice: 45, TotalPrice: primerGallons * 45},
			{Name: "Polyurethane Sealant", Quantity: sealantTubes, Unit: "tubes", UnitPrice: 15, TotalPrice: sealantTubes * 15},
		},
	}
}

func isAnalysisGatewayMockEnabled() bool {
	for _, key := range []string{"ANALYSIS_PROVIDER_MOCK", "OPENAI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
