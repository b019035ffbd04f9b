// Command dns-compare-api serves the comparison run history over HTTP:
// health, statistics and stored runs recorded by dns-compare.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benloeffel/dns-compare/internal/api"
	"github.com/benloeffel/dns-compare/internal/config"
	"github.com/benloeffel/dns-compare/internal/logging"
	"github.com/benloeffel/dns-compare/internal/store"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set DNS_COMPARE_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		apiKey     = flag.String("api-key", "", "Require this X-API-Key on all endpoints except /health")
		dbPath     = flag.String("db", "", "SQLite history database path")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *apiKey != "" {
		cfg.API.APIKey = *apiKey
	}
	if *dbPath != "" {
		cfg.History.Path = *dbPath
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if cfg.History.Path == "" {
		fmt.Fprintln(os.Stderr, "a history database is required: set -db or history.path")
		os.Exit(1)
	}
	db, err := store.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open history database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	srv := api.New(cfg, db, logger)
	logger.Info("history API starting", "addr", srv.Addr(), "db", cfg.History.Path)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
