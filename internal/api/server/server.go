package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/api/middleware"
	"github.com/proofcapsule/pc-anchor/internal/api/rest"
	"github.com/proofcapsule/pc-anchor/internal/api/shared/executor"
	"github.com/proofcapsule/pc-anchor/internal/ledger"
	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/messaging"
	"github.com/proofcapsule/pc-anchor/internal/pinning"
	"github.com/proofcapsule/pc-anchor/internal/pipeline"
	"github.com/proofcapsule/pc-anchor/internal/stats"
	"github.com/proofcapsule/pc-anchor/internal/store"
	"github.com/proofcapsule/pc-anchor/internal/verify"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	pinner     pinning.Client
	ledger     ledger.Client
	publisher  messaging.Publisher
	stats      stats.Updater
	clock      adapter.Clock
	httpServer *http.Server
}

// New creates a new API server. Publisher and stats updater may be nil.
func New(
	cfg Config,
	st store.Store,
	pinner pinning.Client,
	lc ledger.Client,
	publisher messaging.Publisher,
	statsUpdater stats.Updater,
	clock adapter.Clock,
) *Server {
	return &Server{
		config:    cfg,
		store:     st,
		pinner:    pinner,
		ledger:    lc,
		publisher: publisher,
		stats:     statsUpdater,
		clock:     clock,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Assemble the pipeline and verification services
	orchestrator := pipeline.NewOrchestrator(s.store, s.pinner, s.ledger, s.publisher, s.stats, s.clock)
	verifier := verify.NewService(s.store, s.publisher, s.clock)

	// Create shared executor (business logic behind the REST surface)
	exec := executor.NewExecutor(s.store, orchestrator, verifier, s.ledger, s.clock)

	// Create REST handler
	restHandler := rest.NewHandler(exec)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
