package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"GoldPulse/internal/usecase"
	pkgch "GoldPulse/pkg/clickhouse"
	"GoldPulse/pkg/config"
	xhttp "GoldPulse/pkg/http"
	applogger "GoldPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg         *config.Config
	collector   *usecase.TickCollector
	chClient    *pkgch.Client
	httpServer  *xhttp.Server
	httpHandler xhttp.Handler
	TickProc    *usecase.TickProcessor
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	collector *usecase.TickCollector,
	chClient *pkgch.Client,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:         cfg,
		collector:   collector,
		chClient:    chClient,
		httpHandler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// init app logger (console info by default)
	l, _ := applogger.New(&applogger.Config{Level: "info", Format: "console", Output: "stdout"})

	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)
	a.registerHealth()

	// Start collector when the realtime feed is configured
	if a.cfg.Stream.Enabled && a.collector != nil {
		go func() {
			if err := a.collector.Start(ctx); err != nil {
				l.Error("collector error", applogger.Error(err))
			}
		}()
		l.Info("collector started", applogger.Strings("categories", a.cfg.Stream.Categories))
	}

	// Start HTTP server
	if err := a.httpServer.Start(); err != nil {
		l.Error("http server start error", applogger.Error(err))
		return err
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	l.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// registerHealth exposes liveness plus backend/stream status.
func (a *App) registerHealth() {
	a.httpServer.Echo().GET("/health", func(c echo.Context) error {
		status := map[string]interface{}{"status": "ok"}
		if a.cfg.Stream.Enabled && a.collector != nil {
			status["stream_connected"] = a.collector.IsConnected()
		}
		if a.chClient != nil {
			if err := a.chClient.Health(c.Request().Context()); err != nil {
				status["status"] = "degraded"
				status["clickhouse"] = err.Error()
				return c.JSON(http.StatusServiceUnavailable, status)
			}
			status["clickhouse"] = "ok"
		}
		return c.JSON(http.StatusOK, status)
	})
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	l, err := applogger.New(&applogger.Config{Level: "info", Format: "console", Output: "stdout"})
	if err != nil {
		log.Printf("failed to create logger: %v", err)
		return err
	}
	l.Info("shutting down...")

	// Stop collector (pipeline + stream)
	if a.collector != nil {
		if err := a.collector.Shutdown(ctx); err != nil {
			l.Warn("collector stop error", applogger.Error(err))
		}
	}

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		l.Error("http shutdown error", applogger.Error(err))
	}

	// Close infrastructure clients
	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			l.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	// Close tick processor resources (publisher/storage)
	if a.TickProc != nil {
		a.TickProc.Close()
	}

	l.Info("shutdown complete")
	return nil
}
