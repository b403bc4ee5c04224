// @title           Content Admin API
// @version         1.0
// @description     Marketing site content administration API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/content

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "content-admin-api/docs" // Swagger docs import

	"content-admin-api/internal/client"
	"content-admin-api/internal/config"
	"content-admin-api/internal/database"
	"content-admin-api/internal/job"
	"content-admin-api/internal/metrics"
	"content-admin-api/internal/repository"
	"content-admin-api/internal/router"
	"content-admin-api/internal/service"
	"content-admin-api/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Content Admin API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, logger)
	} else {
		database.SetDB(db)
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}
	defer func() {
		if current := database.GetDB(); current != nil {
			if err := database.Close(current); err != nil {
				logger.Warn("Failed to close database connection", zap.Error(err))
			}
		}
	}()

	// Initialize Redis; public content reads fall back to the database when
	// the cache is unavailable
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, content cache disabled", zap.Error(err))
	}

	// Initialize metrics
	m := metrics.New()
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		statsDone := database.StartDBStatsCollector(db, m)
		defer close(statsDone)
	}

	// Initialize S3 client
	var s3Client *client.S3Client
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3Client, err = client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, image uploads disabled", zap.Error(err))
		} else {
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, image uploads disabled")
	}

	// Initialize the site revalidation client
	var revalidator client.RevalidateClient
	if cfg.Site.BaseURL != "" {
		revalidator = client.NewRevalidateClient(cfg.Site.BaseURL, cfg.Site.RevalidateToken, cfg.Site.RequestTimeout, logger, m)
		logger.Info("Site revalidation client initialized", zap.String("site_url", cfg.Site.BaseURL))
	} else {
		revalidator = client.NewNoOpRevalidateClient()
		logger.Warn("Site base URL not configured, page revalidation disabled")
	}

	// Wire the edit session manager over the content store
	cache := service.NewContentCache(database.GetRedis(), logger)
	categoryRepo := repository.NewCategoryRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	var keys service.KeyResolver
	if s3Client != nil {
		keys = s3Client
	}
	store := service.NewContentStore(categoryRepo, projectRepo, uploadRepo, keys, cache, revalidator, logger)

	sessions := session.NewManager(store, store, cfg.Session.TTL, logger, m)
	sessions.StartPurgeLoop(cfg.Session.PurgeInterval)
	defer sessions.Stop()

	// Start the business metrics collector
	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	// Schedule the expired upload cleanup
	cronRunner := cron.New()
	if s3Client != nil {
		cleanup := job.NewCleanupJob(uploadRepo, s3Client, m, logger)
		if _, err := cronRunner.AddJob("@hourly", cleanup); err != nil {
			logger.Error("Failed to schedule upload cleanup job", zap.Error(err))
		} else {
			logger.Info("Upload cleanup job scheduled")
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        m,
		S3Client:       s3Client,
		Cache:          cache,
		Sessions:       sessions,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Content Admin API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
