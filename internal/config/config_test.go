package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofcapsule/pc-anchor/internal/domain"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
read_only: false
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
  write_timeout: 15
  idle_timeout: 60
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
pinata:
  api_key: "pk"
  secret_api_key: "sk"
ledger:
  rpc_url: "https://rpc.soniclabs.com"
  chain_id: 146
  signer_key: "abcd"
  confirmation_max_elapsed: "90s"
worker:
  pool_size: 10
  queue_size: 500
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.False(t, cfg.ReadOnly)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "pk", cfg.Pinata.APIKey)
				assert.Equal(t, "https://rpc.soniclabs.com", cfg.Ledger.RPCURL)
				assert.Equal(t, domain.ChainSonicMainnet, cfg.Ledger.ChainID)
				assert.Equal(t, "90s", cfg.Ledger.ConfirmationMaxElapsed.String())
				assert.Equal(t, 10, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 500, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
ledger:
  rpc_url: "https://rpc.blaze.soniclabs.com"
  chain_id: 57054
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "CAPSULE_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "https://api.pinata.cloud", cfg.Pinata.BaseURL)
				assert.Equal(t, domain.ChainSonicBlaze, cfg.Ledger.ChainID)
				assert.Equal(t, "2m0s", cfg.Ledger.ConfirmationMaxElapsed.String())
				assert.Equal(t, 180, cfg.Server.WriteTimeout)
				// Creation responses arrive only after mint confirmation
				assert.Greater(t, time.Duration(cfg.Server.WriteTimeout)*time.Second, cfg.Ledger.ConfirmationMaxElapsed)
				assert.Equal(t, 20, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 2048, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		err := os.WriteFile(configFile, []byte(`
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
analytics_sweeper:
  interval: "30m"
`), 0600)
		require.NoError(t, err)

		cfg, err := LoadSweeperConfig(configFile, "")
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5, cfg.Database.MaxOpenConns)
		assert.Equal(t, 2, cfg.Database.MaxIdleConns)
		assert.Equal(t, "30m0s", cfg.AnalyticsSweeper.Interval.String())
	})

	t.Run("missing database host", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		err := os.WriteFile(configFile, []byte(`
analytics_sweeper:
  interval: "1h"
`), 0600)
		require.NoError(t, err)

		cfg, err := LoadSweeperConfig(configFile, "")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "pc",
		Password: "secret",
		DBName:   "proofcapsule",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=pc password=secret dbname=proofcapsule sslmode=disable", cfg.DSN())
}
