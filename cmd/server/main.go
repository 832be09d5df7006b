// Command server runs the bracket tool API, the SPA frontend listener and the
// report audit worker.
package main

import (
	"context"
	"fmt"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/handler"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/server"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/workers"
	"github.com/mep-tools/bracket-tool/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bracket-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("server", cfg.Server).Any("workers", cfg.Workers).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
