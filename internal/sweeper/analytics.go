package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/store"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
)

// AnalyticsSweeperConfig holds configuration for the analytics sweeper
type AnalyticsSweeperConfig struct {
	Interval time.Duration // Time between sweep cycles, zero means run once and exit
}

// analyticsSweeper implements the Sweeper interface for daily analytics rollups
type analyticsSweeper struct {
	config    *AnalyticsSweeperConfig
	store     store.Store
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewAnalyticsSweeper creates a new analytics sweeper
func NewAnalyticsSweeper(config *AnalyticsSweeperConfig, st store.Store, clock adapter.Clock) Sweeper {
	return &analyticsSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *analyticsSweeper) Name() string {
	return "analytics-sweeper"
}

// Start begins the sweeper's main loop. With a zero interval it runs a
// single sweep and returns.
func (s *analyticsSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	if s.config.Interval == 0 {
		logger.InfoCtx(ctx, "Running analytics sweep once")
		return s.runSweepCycle(ctx)
	}

	logger.InfoCtx(ctx, "Starting analytics sweeper",
		zap.Duration("interval", s.config.Interval),
	)

	for {
		if err := s.runSweepCycle(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Analytics sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Analytics sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *analyticsSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping analytics sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Analytics sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Analytics sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle computes the global totals and today's deltas and replaces
// the row for the current UTC day. Re-running within the same day overwrites
// the earlier snapshot, so the sweep is idempotent.
func (s *analyticsSweeper) runSweepCycle(ctx context.Context) error {
	day := s.clock.Now().UTC()

	counts, err := s.store.GetGlobalCounts(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to compute global counts: %w", err)
	}

	row := schema.DailyAnalytics{
		Date:               day.Format("2006-01-02"),
		TotalCapsules:      counts.TotalCapsules,
		TotalUsers:         counts.TotalUsers,
		TotalVerifications: counts.TotalVerifications,
		NewCapsules:        counts.NewCapsulesToday,
		NewUsers:           counts.NewUsersToday,
	}
	if err := s.store.UpsertDailyAnalytics(ctx, row); err != nil {
		return fmt.Errorf("failed to upsert daily analytics: %w", err)
	}

	logger.InfoCtx(ctx, "Analytics sweep completed",
		zap.String("date", row.Date),
		zap.Int64("total_capsules", row.TotalCapsules),
		zap.Int64("total_users", row.TotalUsers),
		zap.Int64("total_verifications", row.TotalVerifications),
	)

	return nil
}
