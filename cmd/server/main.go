package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	academicapp "github.com/academia/backend/internal/application/academic"
	syncapp "github.com/academia/backend/internal/application/sync"
	"github.com/academia/backend/internal/infrastructure/config"
	"github.com/academia/backend/internal/infrastructure/lms"
	"github.com/academia/backend/internal/infrastructure/logger"
	"github.com/academia/backend/internal/infrastructure/messaging"
	"github.com/academia/backend/internal/infrastructure/persistence"
	"github.com/academia/backend/internal/interfaces/http/handler"
	"github.com/academia/backend/internal/interfaces/http/middleware"
	"github.com/academia/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting academia backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Initialize repositories
	courseRepo := persistence.NewGormCourseRepository(db.DB)
	personRepo := persistence.NewGormPersonRepository(db.DB)
	enrollmentRepo := persistence.NewGormEnrollmentRepository(db.DB)
	courseLinkRepo := persistence.NewGormCourseLinkRepository(db.DB)
	enrollmentLinkRepo := persistence.NewGormEnrollmentLinkRepository(db.DB)
	messagingGroupRepo := persistence.NewGormMessagingGroupRepository(db.DB)

	// Initialize LMS gateway adapters
	lmsClient, err := lms.NewClient(&lms.Config{
		BaseURL:           cfg.LMS.BaseURL,
		Token:             cfg.LMS.Token,
		TimeoutSeconds:    cfg.LMS.TimeoutSeconds,
		DefaultCategoryID: int(cfg.LMS.DefaultCategoryID),
	})
	if err != nil {
		log.Fatal("Failed to initialize LMS client", zap.Error(err))
	}
	lmsUsers := lms.NewUserService(lmsClient)
	lmsCourses := lms.NewCourseService(lmsClient)
	lmsEnrolments := lms.NewEnrollmentService(lmsClient)

	// Initialize messaging gateway. Missing credentials disable the
	// integration; group operations then degrade to no-ops.
	var messagingCfg *messaging.Config
	if cfg.Messaging.Enabled() {
		messagingCfg = &messaging.Config{
			APIBaseURL:     cfg.Messaging.BaseURL,
			BotToken:       cfg.Messaging.BotToken,
			TimeoutSeconds: cfg.Messaging.TimeoutSeconds,
		}
	} else {
		log.Warn("Messaging platform credentials not set, group synchronization disabled")
	}
	messagingGateway, err := messaging.NewGroupsAdapter(messagingCfg)
	if err != nil {
		log.Fatal("Failed to initialize messaging gateway", zap.Error(err))
	}

	// Initialize synchronization orchestrators
	courseSync := syncapp.NewCourseOrchestrator(
		courseRepo,
		courseLinkRepo,
		messagingGroupRepo,
		lmsCourses,
		messagingGateway,
		log,
	)
	enrollmentSync := syncapp.NewEnrollmentOrchestrator(
		enrollmentRepo,
		courseLinkRepo,
		enrollmentLinkRepo,
		lmsUsers,
		lmsCourses,
		lmsEnrolments,
		log,
	)

	// Initialize application services
	courseService := academicapp.NewCourseService(courseRepo, courseSync, log)
	personService := academicapp.NewPersonService(personRepo, log)
	enrollmentService := academicapp.NewEnrollmentService(
		enrollmentRepo,
		personRepo,
		courseRepo,
		enrollmentSync,
		log,
	)

	// Initialize handlers
	courseHandler := handler.NewCourseHandler(courseService)
	personHandler := handler.NewPersonHandler(personService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecurityHeaders())

	r := router.NewRouter(engine)
	r.Register(courseHandler).
		Register(personHandler).
		Register(enrollmentHandler)
	r.Setup()

	engine.GET("/health/db", healthHandler(db))

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports database connectivity
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
