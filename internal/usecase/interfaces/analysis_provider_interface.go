package interfaces

import (
	"context"

	"aquashield/internal/domain/entities"
)

// AnalysisRequest is the provider input: the assembled project description
// plus any uploaded blueprint/photo URLs for multimodal analysis.
type AnalysisRequest struct {
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

// ChatMessage is one turn of the freeform assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// IAnalysisProvider abstracts the hosted language-model API (e.g. OpenAI).
//
// Implementations may run in mock mode and synthesize a deterministic
// result; callers cannot tell the difference, and the pricing engine never
// does. AnalyzeProject results are expected raw: the usecase normalizes
// them through the pricing package before anything else sees them.
type IAnalysisProvider interface {
	AnalyzeProject(ctx context.Context, req AnalysisRequest) (entities.AnalysisResult, error)
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
}
