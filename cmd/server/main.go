package main

import (
	"flag"
	"log/slog"
	"os"

	"friction-log/internal/config"
	"friction-log/internal/handler"
	"friction-log/internal/logger"
	"friction-log/internal/model"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.FrictionItem{}, &model.Setting{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	r := handler.NewRouter(db, cfg)

	slog.Info("server starting", "addr", cfg.Addr(), "driver", cfg.Database.Driver)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
