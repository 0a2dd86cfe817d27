package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukerupert/dokimi"
	"github.com/dukerupert/dokimi/internal/ai"
	"github.com/dukerupert/dokimi/internal/engine"
	"github.com/dukerupert/dokimi/internal/storage"
	"github.com/dukerupert/dokimi/postgres"
)

// Services holds all initialized application services.
type Services struct {
	DB              *postgres.DB
	Engine          *engine.Engine
	RetailerService dokimi.RetailerService
	ReportService   dokimi.ReportService
	FileStorage     dokimi.FileStorage
}

// initServices wires up all domain and external services.
func initServices(ctx context.Context, pool *pgxpool.Pool, cfg *Config, logger *slog.Logger) (*Services, error) {
	db := postgres.NewDB(pool)
	if err := bootstrapDatabase(ctx, db, logger); err != nil {
		return nil, fmt.Errorf("bootstrapping database: %w", err)
	}

	fileStorage, err := storage.NewFileStorage(ctx, logger, dokimi.StorageConfig{
		Provider:  cfg.StorageProvider,
		LocalPath: cfg.StorageLocalPath,
		LocalURL:  cfg.StorageLocalURL,
		S3Bucket:  cfg.StorageS3Bucket,
		S3Region:  cfg.StorageS3Region,
		S3BaseURL: cfg.StorageS3BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing file storage: %w", err)
	}

	// Remote analysis is optional. The capability is decided once here; the
	// engine never re-checks the environment per request.
	var remote ai.Service
	if cfg.AIAPIKey != "" {
		remote = ai.NewService(logger, ai.Config{
			APIKey:      cfg.AIAPIKey,
			Model:       cfg.AIModel,
			MaxTokens:   cfg.AIMaxTokens,
			Temperature: cfg.AITemperature,
		})
		logger.Info("remote analysis service initialized", slog.String("model", cfg.AIModel))
	}

	return &Services{
		DB:              db,
		Engine:          engine.NewEngine(logger, remote),
		RetailerService: db.RetailerService,
		ReportService:   db.ReportService,
		FileStorage:     fileStorage,
	}, nil
}
