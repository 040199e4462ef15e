package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"coopweb/internal/api"
	"coopweb/internal/health"
	"coopweb/internal/infra"
	"coopweb/internal/ledger"
	"coopweb/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	backend := api.NewClient(api.Options{
		BaseURL:        cfg.APIBaseURL,
		Logger:         &logger,
		RequestTimeout: cfg.APITimeout,
	})
	books := ledger.NewService(backend, &logger)
	monitor := health.NewMonitor(backend.Health, cfg.HealthInterval, cfg.HealthTimeout, &logger)

	app, err := web.NewApp(backend, books, monitor, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build web app")
	}
	router := web.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	go monitor.Run(monitorCtx)

	go func() {
		logger.Info().Msgf("gateway listening on :%s (backend %s)", cfg.Port, cfg.APIBaseURL)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	stopMonitor()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
