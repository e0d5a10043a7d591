package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"RiverSight/pkg/config"
	xhttp "RiverSight/pkg/http"
	applogger "RiverSight/pkg/logger"
)

// Closer releases long-lived infrastructure clients on shutdown.
type Closer interface {
	Close() error
}

// App encapsulates the application lifecycle.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	infra      Closer
	log        *applogger.Logger
	httpServer *xhttp.Server
}

// New creates an App from wired dependencies.
func New(cfg *config.Config, handler xhttp.Handler, infra Closer, log *applogger.Logger) *App {
	return &App{cfg: cfg, handler: handler, infra: infra, log: log}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.log),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("provider", a.cfg.Provider.Type))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var first error
	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http server stop error", applogger.Error(err))
		first = err
	}
	if a.infra != nil {
		if err := a.infra.Close(); err != nil {
			a.log.Error("infra close error", applogger.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	a.log.Info("shutdown complete")
	return first
}
