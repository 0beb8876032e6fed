package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Arun225295196/SIT725/config"
	"github.com/Arun225295196/SIT725/internal/bootstrap"
	"github.com/Arun225295196/SIT725/internal/logging"
	"github.com/Arun225295196/SIT725/internal/projects/service"
	"github.com/Arun225295196/SIT725/internal/seed"
)

var (
	app     = kingpin.New("sit725-worker", "Maintenance commands for the projects store")
	envFile = app.Flag("env-file", "Optional .env file to load before the environment").Default(".env").String()
	timeout = app.Flag("timeout", "Give up after this long").Default("30s").Duration()

	seedCmd  = app.Command("seed", "Replace every project with the sample set")
	seedFile = seedCmd.Flag("file", "YAML seed file (defaults to SEED_FILE, then the built-in samples)").String()

	exportCmd = app.Command("export", "Write the current projects as a YAML seed file")
	exportOut = exportCmd.Flag("out", "Output file, - for stdout").Default("-").String()
)

var errMemoryBackend = errors.New("the memory backend lives inside the API process; set STORE_BACKEND=redis or postgres")

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*envFile)
	if err != nil {
		fatal(err)
	}
	logging.Setup(cfg.App.Environment, cfg.App.LogLevel)

	if cfg.Store.Backend == config.BackendMemory {
		fatal(errMemoryBackend)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch command {
	case seedCmd.FullCommand():
		err = runSeed(ctx, cfg, *seedFile)
	case exportCmd.FullCommand():
		err = runExport(ctx, cfg, *exportOut)
	}
	if err != nil {
		cancel()
		fatal(err)
	}
}

func runSeed(ctx context.Context, cfg *config.Config, path string) error {
	if path == "" {
		path = cfg.Seed.File
	}
	samples, err := seed.Load(path)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	start := time.Now()
	if err := service.NewProjectService(store, nil).Reseed(ctx, samples); err != nil {
		return err
	}

	slog.Info("seeded projects", "backend", store.Backend, "count", len(samples), "took", time.Since(start))
	return nil
}

func runExport(ctx context.Context, cfg *config.Config, out string) error {
	store, err := bootstrap.OpenStore(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	projects, err := service.NewProjectService(store, nil).List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := seed.Export(w, projects); err != nil {
		return err
	}
	slog.Info("exported projects", "count", len(projects), "out", out)
	return nil
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
