package request

// AnalyzeRequest triggers an AI analysis before the estimate is saved. The
// project block mirrors the intake form; image URLs come from prior uploads.
type AnalyzeRequest struct {
	Project   ProjectConfigRequest `json:"project" binding:"required"`
	ImageURLs []string             `json:"image_urls"`
}

type ChatMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []ChatMessageRequest `json:"history"`
}
