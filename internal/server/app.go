// Package server wires the wheel server together: it loads the catalog,
// builds the session store and its metrics, and runs the gRPC and HTTP
// surfaces until a signal or a failure stops them.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/wheel/internal/catalog"
	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/logging"
	"github.com/dmitrijs2005/wheel/internal/metrics"
	"github.com/dmitrijs2005/wheel/internal/server/config"
	"github.com/dmitrijs2005/wheel/internal/server/rest"

	gs "github.com/dmitrijs2005/wheel/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   *garage.Store
	metrics *metrics.Collector
}

// NewApp builds the application from c, logging to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {

	logger, err := logging.New(c.LogBackend, c.LogFormat, out)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	src, err := catalog.New(ctx, c.CatalogOptions())
	if err != nil {
		return nil, fmt.Errorf("catalog init error: %w", err)
	}

	cars, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog load error: %w", err)
	}
	logger.Info(ctx, "Catalog loaded", "source", c.CatalogSource, "cars", len(cars))

	m := metrics.NewCollector()

	store, err := garage.NewStore(cars, garage.WithBudget(c.InitialBudget), garage.WithObserver(m))
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}
	m.SetDeckSize(len(store.CarsForSwiping()))

	return &App{config: c, logger: logger, store: store, metrics: m}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.store, app.metrics)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := rest.NewRouter(app.store, app.logger, app.metrics, app.config.AllowedOrigins)
	s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, router.Setup(), app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", err)
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives, or
// either server fails. It returns once both servers have stopped.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

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

	app.logger.Info(ctx, "App stopped")
}
