package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/api/server"
	"github.com/proofcapsule/pc-anchor/internal/config"
	"github.com/proofcapsule/pc-anchor/internal/ledger"
	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/messaging"
	"github.com/proofcapsule/pc-anchor/internal/pinning"
	"github.com/proofcapsule/pc-anchor/internal/providers/jetstream"
	"github.com/proofcapsule/pc-anchor/internal/stats"
	"github.com/proofcapsule/pc-anchor/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ProofCapsule anchoring API")

	// Connect to the database, unless serving in read-only mode
	var dataStore store.Store
	if cfg.ReadOnly {
		dataStore = store.NewReadonlyStore()
		logger.WarnCtx(ctx, "Running in read-only mode, no database connection")
	} else {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
		}

		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)

		dataStore = store.NewPGStore(db)
	}

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	httpClient := adapter.NewHTTPClient(time.Duration(cfg.Pinata.Timeout) * time.Second)

	// Initialize the IPFS pinning client
	pinner := pinning.NewClient(pinning.Config{
		BaseURL:      cfg.Pinata.BaseURL,
		APIKey:       cfg.Pinata.APIKey,
		SecretAPIKey: cfg.Pinata.SecretAPIKey,
	}, httpClient, jsonAdapter, jcsAdapter)
	if !pinner.TestCredentials(ctx) {
		logger.WarnCtx(ctx, "Pinata credential check failed, pinning requests will likely be rejected")
	}

	// Connect to the chain
	eth, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ledger.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chain RPC", zap.Error(err), zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	ledgerClient, err := ledger.NewClient(ledger.Config{
		Chain:                  cfg.Ledger.ChainID,
		SignerKey:              cfg.Ledger.SignerKey,
		ConfirmationMaxElapsed: cfg.Ledger.ConfirmationMaxElapsed,
	}, ledger.DefaultRegistry(), eth)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger client", zap.Error(err))
	}
	defer ledgerClient.Close()
	logger.InfoCtx(ctx, "Connected to chain",
		zap.Uint64("chain_id", uint64(cfg.Ledger.ChainID)),
		zap.String("chain", cfg.Ledger.ChainID.Name()),
	)

	// Connect to NATS JetStream when configured. Capsule events are
	// best-effort, so the API runs without a broker too.
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, capsule events will not be published")
	}

	// Start the async user stats updater
	statsUpdater := stats.NewUpdater(stats.Config{
		WorkerPoolSize: cfg.Worker.WorkerPoolSize,
		QueueSize:      cfg.Worker.WorkerQueueSize,
	}, dataStore)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, pinner, ledgerClient, publisher, statsUpdater, adapter.NewClock())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Drain queued stats recomputations before exiting
	statsUpdater.StopAndWait()

	logger.Info("API server stopped")
}
