package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/existflow/tasklist/internal/cli"
	"github.com/existflow/tasklist/internal/config"
	"github.com/existflow/tasklist/internal/logger"
	"github.com/existflow/tasklist/internal/store"
	"github.com/existflow/tasklist/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// loadConfig reads ~/.tasklist/config.yaml, falling back to defaults
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func listenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

func run() error {
	cfg := loadConfig()

	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.ParseLevel(cfg.LogLevel)
	logConfig.FilePath = os.Getenv("TASKLIST_LOG_FILE") // Empty: console only
	logConfig.Console = true
	if err := logger.Init(logConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := listenAddr()
	srv := server.New(store.DefaultEnv(cfg.TimeFormat))
	logger.Info("tasklist session server starting",
		logger.F("addr", addr),
		logger.F("time_format", cfg.TimeFormat))
	return cli.Serve(ctx, srv, addr)
}
