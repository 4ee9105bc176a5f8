package main

import (
	"fmt"

	"github.com/txgate/txgate/internal/codec"
	"github.com/txgate/txgate/internal/config"
	handler "github.com/txgate/txgate/internal/handler/http"
	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/server"
	"github.com/txgate/txgate/internal/service"
	"github.com/txgate/txgate/internal/txn"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("txgate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	directory := txn.NewMemoryDirectory(cfg.Txn.MaxTimeout, log)
	services := service.NewServices(directory, directory.XidOf, log)

	handlers := handler.NewHandler(services, codec.New(), log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
