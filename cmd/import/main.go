package main

import (
	"context"
	"flag"
	"log"

	"examdrill/internal/adapter"
	"examdrill/internal/cache"
	"examdrill/internal/config"
	"examdrill/internal/database"
	"examdrill/internal/domain"
	"examdrill/internal/logger"
	"examdrill/internal/repository"
	"examdrill/internal/service"

	"go.uber.org/zap"
)

func main() {
	dataDir := flag.String("dir", "", "directory holding question bank JSON files (defaults to import.data_dir)")
	reset := flag.Bool("reset", false, "drop all questions, metadata and attempts instead of importing")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	examMetadataRepository := repository.NewExamMetadataDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)

	// Best-effort cache invalidation: an import from a box without Redis
	// still works, the server just serves the stale tree until its TTL.
	var cacheAdapter domain.Cache
	if redisClient, err := cache.NewRedisClient(cfg.Redis); err == nil {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Warn("Redis unavailable, skipping titles cache invalidation", zap.Error(err))
	}
	taxonomyService := service.NewTaxonomyService(examMetadataRepository, cacheAdapter, cfg.Cache.TitlesTTL)

	importService := service.NewImportService(questionRepository, examMetadataRepository, attemptRepository, taxonomyService)

	ctx := context.Background()
	if *reset {
		if err := importService.Reset(ctx); err != nil {
			appLogger.Fatal("Reset failed", zap.Error(err))
		}
		return
	}

	dir := *dataDir
	if dir == "" {
		dir = cfg.Import.DataDir
	}

	summary, err := importService.ImportDirectory(ctx, dir)
	if err != nil {
		appLogger.Fatal("Import failed", zap.Error(err))
	}
	appLogger.Info("Import finished",
		zap.Int("files", summary.FilesProcessed),
		zap.Int("titles", summary.TitlesDiscovered),
		zap.Int("questions", summary.QuestionsImported),
	)
}
