package handlers

import (
	"errors"
	"net/http"

	request "aquashield/internal/adapter/http/dto/request"
	response "aquashield/internal/adapter/http/dto/response"
	"aquashield/internal/usecase"
	"aquashield/internal/usecase/interfaces"
	"aquashield/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAnalysisPayload = pkg.NewDomainErrorSimple("INVALID_ANALYSIS_INPUT", "Invalid analysis payload", http.StatusBadRequest)
	errInvalidUploadPayload   = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Invalid upload", http.StatusBadRequest)
)

// AnalysisHandler handles AI analysis, the waterproofing assistant chat and
// blueprint/photo uploads.

type AnalysisHandler struct {
	usecase usecase.IAnalysisUseCase
}

func NewAnalysisHandler(uc usecase.IAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

// AnalyzeProject runs the AI analysis for the intake form and optional
// uploaded images. The result is returned for review; nothing is persisted
// until the estimate is saved.
func (h *AnalysisHandler) AnalyzeProject(c *gin.Context) {
	if _, ok := contextUserID(c); !ok {
		return
	}

	var payload request.AnalyzeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.AnalyzeProject(c.Request.Context(), payload.Project.ToEntity(), payload.ImageURLs)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAnalysis(result))
}

// Chat relays one assistant turn, carrying prior history from the client.
func (h *AnalysisHandler) Chat(c *gin.Context) {
	if _, ok := contextUserID(c); !ok {
		return
	}

	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}

	history := make([]interfaces.ChatMessage, 0, len(payload.History))
	for _, m := range payload.History {
		history = append(history, interfaces.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := h.usecase.Ask(c.Request.Context(), payload.Message, history)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{Reply: reply})
}

// Upload stores one multipart file (field "file") and returns its public URL.
func (h *AnalysisHandler) Upload(c *gin.Context) {
	if _, ok := contextUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}
	defer f.Close()

	url, err := h.usecase.UploadFile(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{URL: url})
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyChatMessage), errors.Is(err, usecase.ErrInvalidUpload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAnalysisNotConfigured), errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Service not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
