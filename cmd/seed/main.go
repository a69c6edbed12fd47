// Command seed loads a sample set of friction items into the configured
// database for local development.
package main

import (
	"flag"
	"log/slog"
	"os"

	"friction-log/internal/config"
	"friction-log/internal/logger"
	"friction-log/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

var samples = []model.FrictionItem{
	{Title: "Tangled charging cables", Description: strPtr("Drawer full of unlabeled cables"), AnnoyanceLevel: 2, Category: "home", Status: model.StatusNotFixed},
	{Title: "Standup runs over 30 minutes", AnnoyanceLevel: 4, Category: "work", Status: model.StatusInProgress},
	{Title: "Password expiry every 30 days", AnnoyanceLevel: 5, Category: "digital", Status: model.StatusNotFixed, EncounterLimit: intPtr(3)},
	{Title: "Squeaky desk chair", AnnoyanceLevel: 1, Category: "home", Status: model.StatusNotFixed},
	{Title: "Skipping stretch breaks", AnnoyanceLevel: 3, Category: "health", Status: model.StatusNotFixed},
}

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

	var count int64
	if err := db.Model(&model.FrictionItem{}).Count(&count).Error; err != nil {
		slog.Error("count items failed", "err", err)
		os.Exit(1)
	}
	if count > 0 {
		slog.Info("database not empty, skipping seed", "items", count)
		return
	}

	if err := db.Create(&samples).Error; err != nil {
		slog.Error("seed failed", "err", err)
		os.Exit(1)
	}
	slog.Info("seeded sample items", "items", len(samples))
}
