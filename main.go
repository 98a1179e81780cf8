package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-admin/internal/blobstore"
	"employee-admin/internal/config"
	"employee-admin/internal/db"
	"employee-admin/internal/logger"
	"employee-admin/internal/router"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "employee-admin",
	}); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Get().Sync()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Get().Fatal("connect database", zap.Error(err))
	}
	defer pool.Close()

	blobs := blobstore.New(cfg.BlobUploadURL, cfg.BlobAPIKey)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	router.Setup(r, pool, blobs, cfg)

	logger.Get().Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatal("server error", zap.Error(err))
	}
}
