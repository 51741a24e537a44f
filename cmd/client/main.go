package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/client"
	"github.com/mitchellbreust/client-crawler/internal/config"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/internal/store"
	"github.com/mitchellbreust/client-crawler/internal/tui"
	"github.com/mitchellbreust/client-crawler/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, f := range buildInfo.Fields() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(f[0]), f[1])
	}

	log := logger.NewClientLogger("client-crawler")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages.TokenStore, serverAdapter, cfg.Workers, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}
	serverAdapter.OnUnauthorized(ui.Unauthorized)

	app, err := client.NewApp(services, storages, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
