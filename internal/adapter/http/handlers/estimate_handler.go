package handlers

import (
	"errors"
	"net/http"

	request "aquashield/internal/adapter/http/dto/request"
	response "aquashield/internal/adapter/http/dto/response"
	"aquashield/internal/domain/entities"
	"aquashield/internal/usecase"
	"aquashield/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where the auth middleware stores the authenticated
// user id for handlers.
const ContextUserIDKey = "user_id"

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errUnauthorized           = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// EstimateHandler handles HTTP requests for waterproofing cost estimates.
//
// All endpoints require authentication; the estimate operations are scoped
// to the user id placed in the context by the auth middleware.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate saves a priced estimate from the intake form plus the
// analysis the client ran beforehand.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), userID, payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	estimate, err := h.usecase.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListEstimates returns the user's estimates newest-first.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	list, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetStats returns the dashboard aggregates for the user.
func (h *EstimateHandler) GetStats(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), userID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}

// UpdateMaterials replaces the estimate's material lines and returns the
// record with re-derived subtotals.
func (h *EstimateHandler) UpdateMaterials(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var payload request.UpdateMaterialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateMaterials(c.Request.Context(), userID, c.Param("id"), request.ToMaterialLines(payload.Materials))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateManualEntries replaces the estimate's manual line items.
func (h *EstimateHandler) UpdateManualEntries(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var payload request.UpdateManualEntriesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateManualEntries(c.Request.Context(), userID, c.Param("id"), request.ToManualEntries(payload.ManualEntries))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), userID, c.Param("id"), entities.EstimateStatus(payload.Status))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func contextUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserIDKey)
	if userID == "" {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return "", false
	}
	return userID, true
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidLaborRate), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
