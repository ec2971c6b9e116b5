// Package app wires the service together: configuration, provider chain,
// forecast cache, locations store, and the REST server.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/classify"
	"github.com/ctrln3rd/lunara-watch/internal/interpret"
	"github.com/ctrln3rd/lunara-watch/internal/locations"
	"github.com/ctrln3rd/lunara-watch/internal/log"
	"github.com/ctrln3rd/lunara-watch/internal/manager"
	"github.com/ctrln3rd/lunara-watch/internal/providers"
	"github.com/ctrln3rd/lunara-watch/internal/server"
	"github.com/ctrln3rd/lunara-watch/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// buildProviders assembles the forecast provider chain in the configured
// order. Tomorrow.io only joins the chain when an API key is present.
func (a *App) buildProviders(cfg *config.ConfigData) []providers.Provider {
	openMeteo := providers.NewOpenMeteoClient(a.logger)

	if cfg.Providers.TomorrowIOAPIKey == "" {
		return []providers.Provider{openMeteo}
	}

	tomorrowIO := providers.NewTomorrowIOClient(cfg.Providers.TomorrowIOAPIKey, a.logger)
	if cfg.Providers.Primary == "tomorrowio" {
		return []providers.Provider{tomorrowIO, openMeteo}
	}
	return []providers.Provider{openMeteo, tomorrowIO}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %v", err)
	}

	store, err := locations.NewStore(cfg.Locations.DatabasePath, a.logger)
	if err != nil {
		return fmt.Errorf("error opening locations store: %v", err)
	}
	defer store.Close()

	var managerOpts []manager.Option
	if cfg.Cache.Dir != "" {
		managerOpts = append(managerOpts, manager.WithSnapshotDir(cfg.Cache.Dir))
	}
	if cfg.Cache.MaxAgeMinutes > 0 {
		managerOpts = append(managerOpts, manager.WithMaxAge(time.Duration(cfg.Cache.MaxAgeMinutes)*time.Minute))
	}
	mgr := manager.New(a.buildProviders(cfg), a.logger, managerOpts...)

	srv := server.New(server.Config{
		ListenAddr:  cfg.HTTP.ListenAddr,
		Classifier:  classify.NewRuleClassifier(a.logger),
		Interpreter: interpret.New(interpret.WithLogger(a.logger)),
		Manager:     mgr,
		Locations:   store,
		Logger:      a.logger,
	})

	serverErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		serverErr <- srv.Start(ctx)
	}()

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("REST server error: %v", err)
		}
	}

	cancel()
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
