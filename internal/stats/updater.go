package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/store"
)

const (
	defaultWorkerPoolSize = 4
	defaultQueueSize      = 256
	recomputeTimeout      = 30 * time.Second
)

// Updater recomputes denormalized per-user counters off the request path.
// Recomputation is best-effort: a failed run is logged and the next capsule
// or verification for the same wallet converges the counters again.
//
//go:generate mockgen -source=updater.go -destination=../mocks/stats_updater.go -package=mocks -mock_names=Updater=MockStatsUpdater
type Updater interface {
	// Enqueue schedules a stats recomputation for the wallet
	Enqueue(walletAddress string)

	// StopAndWait drains the queue and waits for in-flight recomputations
	StopAndWait()
}

// Config holds configuration for the stats updater
type Config struct {
	WorkerPoolSize int
	QueueSize      int
}

type updater struct {
	store store.Store
	pool  pond.Pool
}

// NewUpdater creates a stats updater backed by a worker pool
func NewUpdater(cfg Config, st store.Store) Updater {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	return &updater{
		store: st,
		pool: pond.NewPool(
			cfg.WorkerPoolSize,
			pond.WithQueueSize(cfg.QueueSize),
		),
	}
}

// Enqueue schedules a stats recomputation for the wallet
func (u *updater) Enqueue(walletAddress string) {
	u.pool.Submit(func() {
		// The originating request may already be answered, so the
		// recomputation runs under its own timeout
		ctx, cancel := context.WithTimeout(context.Background(), recomputeTimeout)
		defer cancel()

		if err := u.store.RecomputeUserStats(ctx, walletAddress); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to recompute user stats: %w", err),
				zap.String("wallet_address", walletAddress),
			)
		}
	})
}

// StopAndWait drains the queue and waits for in-flight recomputations
func (u *updater) StopAndWait() {
	u.pool.StopAndWait()
}
