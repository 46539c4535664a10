package v1

import (
	"net/http"

	"go-transfer-backend/config"
	"go-transfer-backend/internal/delivery/http/middleware"
	"go-transfer-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactRequestUC  domain.ContactRequestUsecase
	TransferRequestUC domain.TransferRequestUsecase
	Config            *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	// Prometheus scrape endpoint, outside the versioned API
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes - the website submits both forms without auth
	NewContactRequestHandler(v1, deps.ContactRequestUC)
	NewTransferRequestHandler(v1, deps.TransferRequestUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
