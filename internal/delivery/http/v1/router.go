package v1

import (
	"net/http"

	"go-contact-manager/config"
	"go-contact-manager/internal/delivery/http/middleware"
	"go-contact-manager/internal/delivery/http/response"
	"go-contact-manager/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ImportUC  domain.ImportUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewContactHandler(v1, deps.ContactUC)

	// Uploads get their own rate limit budget
	importLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(
		deps.Config.ImportRateLimit, deps.Config.ImportRateWindow,
	))
	NewImportHandler(v1, deps.ImportUC, importLimiter)

	return r
}
