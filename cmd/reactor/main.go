package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-channel-reactor/internal/adapter"
	"github.com/MKhiriev/go-channel-reactor/internal/client"
	"github.com/MKhiriev/go-channel-reactor/internal/config"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/service"
	"github.com/MKhiriev/go-channel-reactor/internal/store"
	"github.com/MKhiriev/go-channel-reactor/internal/tui"
	"github.com/MKhiriev/go-channel-reactor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("channel-reactor", cfg.LogLevel)

	gateway, err := adapter.NewHTTPChannelGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create channel gateway")
	}

	storages := store.NewStorages(cfg.Storage, log)
	services := service.NewServices(storages, gateway, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		if errors.Is(err, tui.ErrSetupAborted) {
			log.Warn().Msg("setup aborted before a credential was saved")
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("client run error")
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
