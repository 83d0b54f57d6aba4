package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "aquashield/docs" // This will be auto-generated
	"aquashield/internal/adapter/http/handlers"
	"aquashield/internal/adapter/http/middleware"
	repository2 "aquashield/internal/adapter/persistence/repository"
	"aquashield/internal/infrastructure/ai"
	"aquashield/internal/infrastructure/database"
	"aquashield/internal/infrastructure/storage"
	"aquashield/internal/infrastructure/token"
	"aquashield/internal/usecase"
	"aquashield/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	tokenManager, err := token.NewJWTManager()
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	var provider interfaces.IAnalysisProvider
	gateway, err := ai.NewOpenAIGateway(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Printf("OpenAI gateway not configured: %v", err)
	} else {
		provider = gateway
	}

	var fileStorage interfaces.IFileStorage
	s3Client, err := storage.NewS3Client(context.Background())
	if err != nil {
		log.Printf("File storage not configured: %v", err)
	} else {
		fileStorage = s3Client
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	analysisUseCase := usecase.NewAnalysisUseCase(provider, fileStorage)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	analysisHandler := handlers.NewAnalysisHandler(analysisUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	authed := v1.Group("")
	authed.Use(middleware.AuthRequired(tokenManager))
	addEstimateRoutes(authed, estimateHandler)
	addAnalysisRoutes(authed, analysisHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = splitOrigins(origins)
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
