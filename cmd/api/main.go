package main

import (
	"context"
	"net/http"
	"time"

	"vet-clinic-api/internal/adapters/storage/postgres"
	"vet-clinic-api/internal/platform/config"
	"vet-clinic-api/internal/platform/logger"
	"vet-clinic-api/internal/router"

	"go.uber.org/zap"

	_ "vet-clinic-api/docs"
)

// @title Vet Clinic API
// @version 1.0
// @description Backend de gestión de clínica veterinaria: dueños, mascotas, veterinarios, citas y tratamientos.
// @BasePath /api
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	opts := router.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    log,
	}

	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal("opening postgres", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatal("ensuring schema", zap.Error(err))
		}
		cancel()

		opts.DB = db
		log.Info("using postgres storage")
	} else {
		log.Info("using in-memory storage (set DB_DSN for postgres)")
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}
