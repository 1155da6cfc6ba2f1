package main

import (
	"context"
	"fmt"

	"github.com/MoodyMakai/WebDevForum/internal/config"
	"github.com/MoodyMakai/WebDevForum/internal/feed"
	"github.com/MoodyMakai/WebDevForum/internal/handler"
	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/server"
	"github.com/MoodyMakai/WebDevForum/internal/service"
	"github.com/MoodyMakai/WebDevForum/internal/store"
	"github.com/MoodyMakai/WebDevForum/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("forum-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	hub := feed.NewHub(log)

	services, err := service.NewServices(*storages, *cfg, hub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, hub, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(*storages, cfg.Workers, log)
	backgroundWorkers.Run()

	srv.RunServer()

	backgroundWorkers.Stop()
	hub.Close()

	if err := storages.DB.Close(); err != nil {
		log.Err(err).Msg("error closing database")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
