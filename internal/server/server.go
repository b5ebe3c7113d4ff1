// Package server exposes the relay over HTTP: the download API, one-time
// artifact serving, and the static client page.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/xtraact/relay/internal/classify"
	"github.com/xtraact/relay/internal/download"
	"github.com/xtraact/relay/internal/history"
	"github.com/xtraact/relay/internal/staging"
)

// HTTP server timeouts. Write covers the whole response, so it must exceed
// the engine timeout for the process endpoint.
const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	writeTimeoutMargin     = 1 * time.Minute
)

// Options configures the HTTP server.
type Options struct {
	ListenAddr    string
	Debug         bool
	EnableCORS    bool
	EngineTimeout time.Duration
}

// Server wires the orchestrator, classifier, artifact store, and history
// into an HTTP surface.
type Server struct {
	orchestrator download.Orchestrator
	classifier   *classify.Classifier
	artifacts    *staging.Store
	history      *history.Store

	engine     *gin.Engine
	httpServer *http.Server
}

// New creates the HTTP server and registers all routes.
func New(opts Options, orchestrator download.Orchestrator, classifier *classify.Classifier, artifacts *staging.Store, hist *history.Store) *Server {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	if opts.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		orchestrator: orchestrator,
		classifier:   classifier,
		artifacts:    artifacts,
		history:      hist,
		engine:       engine,
	}
	s.registerRoutes()

	writeTimeout := opts.EngineTimeout + writeTimeoutMargin
	if opts.EngineTimeout <= 0 {
		writeTimeout = download.DefaultEngineTimeout + writeTimeoutMargin
	}
	s.httpServer = &http.Server{
		Addr:         opts.ListenAddr,
		Handler:      engine,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: writeTimeout,
	}
	return s
}

// registerRoutes declares the inbound surface. /download is kept as an alias
// of /process for older clients.
func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/process", s.handleProcess)
	s.engine.POST("/download", s.handleProcess)
	s.engine.GET("/download_file/:filename", s.handleDownloadFile)

	api := s.engine.Group("/api")
	api.GET("/probe", s.handleProbe)
	api.GET("/history", s.handleHistory)
	api.GET("/health", s.handleHealth)
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Relay listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
