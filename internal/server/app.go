// Package server wires the storage, services and both transports of the
// inventory server and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/infrakeeper/internal/cryptox"
	"github.com/dmitrijs2005/infrakeeper/internal/inventory"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/server/config"
	"github.com/dmitrijs2005/infrakeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/infrakeeper/internal/server/metrics"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/infrakeeper/internal/server/services"

	gs "github.com/dmitrijs2005/infrakeeper/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        repomanager.RepositoryManager
	metrics      *metrics.Metrics
	operators    *services.OperatorService
	associations *services.AssociationService
	dashboard    *services.DashboardService
	exports      *services.ExportService
}

// NewApp opens storage, applies migrations, seeds the admin operator and
// builds the services. Nothing listens until Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	sealer, err := cryptox.NewSealer(c.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("sealer init error: %w", err)
	}

	repos, err := repomanager.New(c.DatabaseDSN, sealer, logger)
	if err != nil {
		return nil, err
	}
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	catalog := inventory.DefaultCatalog()
	if c.InventoryFile != "" {
		catalog, err = inventory.LoadFile(c.InventoryFile)
		if err != nil {
			_ = repos.Close()
			return nil, err
		}
	}

	m := metrics.New()
	ops := services.NewOperatorService(repos, logger, c)
	if err := ops.EnsureOperator(ctx, c.AdminUser, c.AdminPassword); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("admin seed error: %w", err)
	}

	assoc := services.NewAssociationService(repos, logger, m)
	dash := services.NewDashboardService(catalog, assoc, c.SummaryCacheTTL, logger)
	assoc.AddRecorder(dash)

	return &App{
		config:       c,
		logger:       logger,
		repos:        repos,
		metrics:      m,
		operators:    ops,
		associations: assoc,
		dashboard:    dash,
		exports:      services.NewExportService(catalog, repos, c, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.operators, app.dashboard, app.associations, app.metrics)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.operators, app.dashboard, app.associations, app.exports, app.metrics)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves gRPC and HTTP until ctx is cancelled, a signal arrives or
// either transport fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "Error closing storage", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
