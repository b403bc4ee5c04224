package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-admin-api/internal/client"
	"content-admin-api/internal/database"
	"content-admin-api/internal/handler"
	"content-admin-api/internal/metrics"
	"content-admin-api/internal/middleware"
	"content-admin-api/internal/repository"
	"content-admin-api/internal/service"
	"content-admin-api/internal/session"
)

// Config carries the dependencies the router wires into handlers.
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins string
	Metrics        *metrics.Metrics
	S3Client       *client.S3Client
	Cache          service.ContentCache
	Sessions       *session.Manager
}

// Setup builds the gin engine with all routes and middleware. Admin routes
// sit directly under the base path behind JWT auth; public site reads live
// under {basePath}/public without auth.
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	if cfg.Cache == nil {
		cfg.Cache = service.NewContentCache(nil, cfg.Logger)
	}

	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)
	uploadRepo := repository.NewUploadRepository(cfg.DB)

	categoryService := service.NewCategoryService(categoryRepo, projectRepo, cfg.Cache, cfg.Metrics, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, categoryRepo, cfg.Cache, cfg.Metrics, cfg.Logger)

	var storage service.ImageStorage
	if cfg.S3Client != nil {
		storage = cfg.S3Client
	}
	uploadService := service.NewImageUploadService(storage, uploadRepo, cfg.Metrics, cfg.Logger)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	projectHandler := handler.NewProjectHandler(projectService)
	contentHandler := handler.NewContentHandler(categoryService, projectService)
	sessionHandler := handler.NewSessionHandler(cfg.Sessions, uploadService)

	// Liveness stays 200 while the background connect retries; database
	// reachability is reported alongside
	healthCheck := func(c *gin.Context) {
		dbStatus := "down"
		if database.IsConnected() {
			dbStatus = "up"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": dbStatus})
	}
	metricsHandler := gin.WrapH(promhttp.Handler())

	// Root-level probes stay reachable regardless of the base path
	r.GET("/health", healthCheck)
	r.GET("/metrics", metricsHandler)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		api.GET("/health", healthCheck)
		api.GET("/metrics", metricsHandler)
	}
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := api.Group("/public")
	{
		public.GET("/homepage", contentHandler.GetHomepage)
		public.GET("/projects/featured", contentHandler.GetFeaturedProjects)
		public.GET("/categories/:slug", contentHandler.GetCategoryBySlug)
		public.GET("/projects/:slug", contentHandler.GetProjectBySlug)
	}

	admin := api.Group("", middleware.Auth(cfg.JWTSecret))
	{
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.GET("/categories", categoryHandler.ListCategories)
		admin.GET("/categories/:categoryId", categoryHandler.GetCategory)
		admin.PUT("/categories/:categoryId", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory)

		admin.POST("/projects", projectHandler.CreateProject)
		admin.GET("/projects", projectHandler.ListProjects)
		admin.GET("/projects/:projectId", projectHandler.GetProject)
		admin.GET("/projects/:projectId/related", projectHandler.GetRelatedProjects)
		admin.PUT("/projects/:projectId", projectHandler.UpdateProject)
		admin.DELETE("/projects/:projectId", projectHandler.DeleteProject)

		admin.POST("/sessions/categories/:categoryId", sessionHandler.CreateCategorySession)
		admin.POST("/sessions/projects/:projectId", sessionHandler.CreateProjectSession)
		admin.GET("/sessions/:sessionId", sessionHandler.GetSession)
		admin.DELETE("/sessions/:sessionId", sessionHandler.CloseSession)
		admin.PATCH("/sessions/:sessionId/field", sessionHandler.SetField)
		admin.POST("/sessions/:sessionId/list", sessionHandler.ApplyListOp)
		admin.POST("/sessions/:sessionId/related", sessionHandler.ApplyRelatedOp)
		admin.POST("/sessions/:sessionId/wizard/next", sessionHandler.WizardNext)
		admin.POST("/sessions/:sessionId/wizard/previous", sessionHandler.WizardPrevious)
		admin.POST("/sessions/:sessionId/wizard/step", sessionHandler.WizardGoToStep)
		admin.POST("/sessions/:sessionId/submit", sessionHandler.Submit)
		admin.POST("/sessions/:sessionId/upload", sessionHandler.UploadImage)

		admin.GET("/uploads/:uploadId", sessionHandler.GetUpload)
	}

	return r
}
