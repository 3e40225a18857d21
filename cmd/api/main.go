// @title ExamDrill API
// @version 1.0
// @description Backend for the ExamDrill practice-exam application.
// @host localhost:5000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"examdrill/internal/adapter"
	"examdrill/internal/cache"
	"examdrill/internal/config"
	"examdrill/internal/database"
	"examdrill/internal/domain"
	"examdrill/internal/handler"
	"examdrill/internal/logger"
	"examdrill/internal/middleware"
	"examdrill/internal/repository"
	"examdrill/internal/service"

	_ "examdrill/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	examMetadataRepository := repository.NewExamMetadataDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)

	// Initialize Redis client. The titles cache is an optimization: the
	// server still works without it, so a missing Redis only degrades.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, titles cache disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	}

	// Initialize services
	taxonomyService := service.NewTaxonomyService(examMetadataRepository, cacheAdapter, cfg.Cache.TitlesTTL)
	questionService := service.NewQuestionService(questionRepository, examMetadataRepository)
	attemptService := service.NewAttemptService(attemptRepository)

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(questionService, taxonomyService)
	attemptHandler := handler.NewAttemptHandler(attemptService)
	validationMiddleware := middleware.NewValidationMiddleware()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	// Question routes. The static segments must register before the
	// examId wildcard or "titles" would resolve as an exam id.
	questionGroup := apiGroup.Group("/questions")
	questionGroup.Get("/titles", questionHandler.GetTitles)
	questionGroup.Get("/filtered", questionHandler.GetFilteredQuestions)
	questionGroup.Get("/stats/:examId", questionHandler.GetStats)
	questionGroup.Get("/metadata/:examId", questionHandler.GetMetadata)
	questionGroup.Get("/:examId", questionHandler.GetQuestions)
	questionGroup.Put("/flag", validationMiddleware.ValidateQuestionID(), questionHandler.FlagQuestion)
	questionGroup.Put("/unflag", validationMiddleware.ValidateQuestionID(), questionHandler.UnflagQuestion)
	questionGroup.Put("/markMissed", validationMiddleware.ValidateQuestionID(), questionHandler.MarkMissed)
	questionGroup.Put("/unmarkMissed", validationMiddleware.ValidateQuestionID(), questionHandler.UnmarkMissed)
	questionGroup.Put("/markAnswered", validationMiddleware.ValidateQuestionID(), questionHandler.MarkAnswered)

	// Attempt routes
	attemptGroup := apiGroup.Group("/attempts")
	attemptGroup.Post("/", attemptHandler.SaveAttempt)
	attemptGroup.Get("/", attemptHandler.GetAttempts)
	attemptGroup.Get("/title/:title", attemptHandler.GetAttemptsByTitle)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
