package routes

import (
	"aquashield/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathAnalysis  = "/analysis"
	PathUploads   = "/uploads"
	PathChat      = "/chat"
	PathAuth      = "/auth"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/stats", estimateHandler.GetStats)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/materials", estimateHandler.UpdateMaterials)
		estimates.PATCH("/:id/manual-entries", estimateHandler.UpdateManualEntries)
		estimates.PATCH("/:id/status", estimateHandler.UpdateStatus)
	}
}

func addAnalysisRoutes(rg *gin.RouterGroup, analysisHandler *handlers.AnalysisHandler) {
	rg.POST(PathAnalysis, analysisHandler.AnalyzeProject)
	rg.POST(PathUploads, analysisHandler.Upload)
	rg.POST(PathChat, analysisHandler.Chat)
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}
