package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/xtraact/relay/internal/classify"
	"github.com/xtraact/relay/internal/config"
	"github.com/xtraact/relay/internal/download"
	"github.com/xtraact/relay/internal/engine"
	"github.com/xtraact/relay/internal/formats"
	"github.com/xtraact/relay/internal/history"
	"github.com/xtraact/relay/internal/secrets"
	"github.com/xtraact/relay/internal/server"
	"github.com/xtraact/relay/internal/staging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Printf("XTRAACT relay v%s starting...", version)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	artifacts, err := staging.NewStore(cfg.StagingDir)
	if err != nil {
		log.Fatalf("Failed to prepare staging directory: %v", err)
	}

	// Initialize services
	secretStore := secrets.NewStore(cfg.SecretsDir)
	provisioner := secrets.NewProvisioner(secretStore, artifacts.Dir(), formats.CookieRequiredPlatforms())
	eng := engine.NewYTDLP()
	classifier := classify.NewClassifier(eng)
	orchestrator := download.NewService(eng, classifier, provisioner, secretStore, artifacts, cfg.EngineTimeout)
	hist := history.NewStore(cfg.HistoryFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reaper := staging.NewReaper(cfg.ReapGrace, cfg.ReapInterval, artifacts.Dir())
	reaper.Start(ctx)

	srv := server.New(server.Options{
		ListenAddr:    cfg.ListenAddr,
		Debug:         cfg.Debug,
		EnableCORS:    cfg.EnableCORS,
		EngineTimeout: cfg.EngineTimeout,
	}, orchestrator, classifier, artifacts, hist)

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
