package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"aquashield/internal/domain/entities"
	"aquashield/internal/domain/pricing"
	"aquashield/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAnalysisNotConfigured = errors.New("analysis provider not configured")
	ErrStorageNotConfigured  = errors.New("file storage not configured")
	ErrEmptyChatMessage      = errors.New("empty chat message")
	ErrInvalidUpload         = errors.New("invalid upload")
)

// IAnalysisUseCase wraps the AI provider and file storage collaborators.
//
// AnalyzeProject assembles the project description, invokes the provider
// (real or mock) and returns the normalized analysis; the caller feeds it
// to the pricing engine. Ask is the freeform waterproofing assistant.

type IAnalysisUseCase interface {
	AnalyzeProject(ctx context.Context, project entities.ProjectConfig, imageURLs []string) (entities.AnalysisResult, error)
	Ask(ctx context.Context, message string, history []interfaces.ChatMessage) (string, error)
	UploadFile(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

type AnalysisUseCase struct {
	provider interfaces.IAnalysisProvider
	storage  interfaces.IFileStorage
}

var _ IAnalysisUseCase = (*AnalysisUseCase)(nil)

func NewAnalysisUseCase(provider interfaces.IAnalysisProvider, storage interfaces.IFileStorage) *AnalysisUseCase {
	return &AnalysisUseCase{provider: provider, storage: storage}
}

func (u *AnalysisUseCase) AnalyzeProject(ctx context.Context, project entities.ProjectConfig, imageURLs []string) (entities.AnalysisResult, error) {
	if u.provider == nil {
		return entities.AnalysisResult{}, ErrAnalysisNotConfigured
	}

	req := interfaces.AnalysisRequest{
		Description: buildProjectDescription(project, len(imageURLs)),
		ImageURLs:   imageURLs,
	}

	log.Printf("[analysis][usecase] analyze start project_type=%s images=%d", project.ProjectType, len(imageURLs))
	raw, err := u.provider.AnalyzeProject(ctx, req)
	if err != nil {
		log.Printf("[analysis][usecase] provider failed err=%v", err)
		return entities.AnalysisResult{}, err
	}

	normalized := pricing.NormalizeAnalysis(raw)
	log.Printf("[analysis][usecase] analyze done area=%.0f complexity=%.1f hours=%.1f materials=%d",
		normalized.EstimatedArea, normalized.ComplexityScore, normalized.LaborHours, len(normalized.Materials))
	return normalized, nil
}

func (u *AnalysisUseCase) Ask(ctx context.Context, message string, history []interfaces.ChatMessage) (string, error) {
	if u.provider == nil {
		return "", ErrAnalysisNotConfigured
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyChatMessage
	}

	messages := make([]interfaces.ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, interfaces.ChatMessage{Role: "user", Content: message})

	return u.provider.Chat(ctx, messages)
}

// UploadFile stores a blueprint/photo and returns its public URL. Object
// keys are random with the original extension preserved.
func (u *AnalysisUseCase) UploadFile(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if u.storage == nil {
		return "", ErrStorageNotConfigured
	}
	if body == nil {
		return "", ErrInvalidUpload
	}

	key := "uploads/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
	url, err := u.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		log.Printf("[analysis][usecase] upload failed key=%s err=%v", key, err)
		return "", err
	}
	log.Printf("[analysis][usecase] upload done key=%s", key)
	return url, nil
}

// buildProjectDescription turns the intake form into the analysis prompt
// body sent to the provider.
func buildProjectDescription(p entities.ProjectConfig, imageCount int) string {
	var b strings.Builder
	b.WriteString("Analyze this waterproofing project for commercial estimation:\n\n")
	b.WriteString("Project Details:\n")
	fmt.Fprintf(&b, "- Type: %s\n", p.ProjectType)
	fmt.Fprintf(&b, "- Building: %s\n", p.BuildingType)
	fmt.Fprintf(&b, "- Material: %s\n", p.Material)
	fmt.Fprintf(&b, "- Access: %s\n", p.AccessConditions)
	fmt.Fprintf(&b, "- Urgency: %s\n", p.UrgencyLevel)
	fmt.Fprintf(&b, "- Location: %s\n", p.ZipCode)
	if p.Notes != "" {
		fmt.Fprintf(&b, "- Notes: %s\n", p.Notes)
	}
	if imageCount > 0 {
		fmt.Fprintf(&b, "\n%d blueprint/site image(s) have been uploaded for analysis.\n", imageCount)
	}
	b.WriteString("\nConsider surface preparation, detail work complexity (corners, penetrations, joints), ")
	b.WriteString("access challenges and staging needs, weather protection, and quality control requirements.")
	return b.String()
}
