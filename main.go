package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"esculapi/marketplace/internal/api"
	"esculapi/marketplace/internal/config"
	"esculapi/marketplace/internal/database"
	"esculapi/marketplace/internal/migrations"
	"esculapi/marketplace/internal/search"
	"esculapi/marketplace/internal/seed"
	"esculapi/marketplace/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	st := store.New(db, logger, cfg.SearchLimit)
	coord := search.NewCoordinator(st, search.NewFallback(), logger, cfg.DebounceWindow)
	handler := api.New(coord, st, logger, cfg.BestOffersLimit)

	logger.Info("Esculapi catalog server starting", zap.String("port", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
