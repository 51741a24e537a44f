package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/internal/store"
	"github.com/mitchellbreust/client-crawler/internal/tui"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, storages: storages, ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits. Background loops are stopped and local
// storage is closed before it returns.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	defer func() {
		a.services.Workers.StopAll()
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Str("func", "App.Run").Msg("close local storage")
		}
	}()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
