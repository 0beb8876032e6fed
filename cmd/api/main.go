package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sourcegraph/conc"

	"github.com/Arun225295196/SIT725/config"
	"github.com/Arun225295196/SIT725/internal/bootstrap"
	"github.com/Arun225295196/SIT725/internal/logging"
	"github.com/Arun225295196/SIT725/internal/projects/service"
	"github.com/Arun225295196/SIT725/internal/realtime"
	"github.com/Arun225295196/SIT725/internal/seed"
)

const (
	serviceName     = "sit725-api"
	shutdownTimeout = 10 * time.Second
)

var (
	app     = kingpin.New(serviceName, "Calculator, projects and real-time events API")
	envFile = app.Flag("env-file", "Optional .env file to load before the environment").Default(".env").String()
	port    = app.Flag("port", "Listen port, overrides PORT").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	logging.Setup(cfg.App.Environment, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	samples, err := seed.Load(cfg.Seed.File)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg, samples)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer store.Close()

	hub := realtime.NewHub(realtime.Options{
		SendBuffer: cfg.Realtime.SendBuffer,
		ChatRate:   cfg.Realtime.ChatRate,
		ChatBurst:  cfg.Realtime.ChatBurst,
	})
	projects := service.NewProjectService(store, hub)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Production:  cfg.IsProduction(),
		CORSOrigins: cfg.Server.CORSOrigins,
		Store:       store,
		Projects:    projects,
		Hub:         hub,
	})

	var scheduler *seed.Scheduler
	if cfg.Seed.Schedule != "" {
		if scheduler, err = seed.NewScheduler(cfg.Seed.Schedule, projects, samples); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var (
		wg       conc.WaitGroup
		serveErr error
	)

	wg.Go(func() {
		slog.Info("server listening", "addr", srv.Addr, "backend", store.Backend, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("listen: %w", err)
			stop()
		}
	})

	if scheduler != nil {
		wg.Go(func() { scheduler.Run(ctx) })
	}

	<-ctx.Done()
	slog.Info("shutting down")

	// Shutdown does not close hijacked websocket or streaming SSE connections.
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	wg.Wait()
	return serveErr
}
