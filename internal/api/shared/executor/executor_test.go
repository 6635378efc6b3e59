package executor

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofcapsule/pc-anchor/internal/api/shared/dto"
	apierrors "github.com/proofcapsule/pc-anchor/internal/api/shared/errors"
	"github.com/proofcapsule/pc-anchor/internal/domain"
	"github.com/proofcapsule/pc-anchor/internal/ledger"
	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/mocks"
	"github.com/proofcapsule/pc-anchor/internal/pipeline"
	"github.com/proofcapsule/pc-anchor/internal/store"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
	"github.com/proofcapsule/pc-anchor/internal/verify"
)

const (
	testWallet = "0x1234567890123456789012345678901234567890"
	testHash   = "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testDeps struct {
	store        *mocks.MockStore
	orchestrator *mocks.MockOrchestrator
	verifier     *mocks.MockVerifyService
	ledger       *mocks.MockLedgerClient
	clock        *mocks.MockClock
}

func newTestExecutor(t *testing.T) (Executor, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		store:        mocks.NewMockStore(ctrl),
		orchestrator: mocks.NewMockOrchestrator(ctrl),
		verifier:     mocks.NewMockVerifyService(ctrl),
		ledger:       mocks.NewMockLedgerClient(ctrl),
		clock:        mocks.NewMockClock(ctrl),
	}
	exec := NewExecutor(deps.store, deps.orchestrator, deps.verifier, deps.ledger, deps.clock)
	return exec, deps
}

func TestExecutorCreateCapsule(t *testing.T) {
	t.Run("maps the pipeline result", func(t *testing.T) {
		exec, deps := newTestExecutor(t)
		content := []byte("payload")

		deps.orchestrator.EXPECT().
			CreateCapsule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req pipeline.CreateCapsuleRequest) (*pipeline.CreateCapsuleResult, error) {
				assert.Equal(t, content, req.Content)
				assert.Equal(t, testWallet, req.WalletAddress)
				return &pipeline.CreateCapsuleResult{
					Capsule:     &schema.Capsule{ID: 1, TokenID: 42, WalletAddress: testWallet, ContentHash: testHash},
					GatewayURLs: []string{"https://gateway.pinata.cloud/ipfs/Qm"},
				}, nil
			})

		response, err := exec.CreateCapsule(context.Background(), dto.CreateCapsuleRequest{
			WalletAddress: testWallet,
			Content:       base64.StdEncoding.EncodeToString(content),
			Filename:      "payload.bin",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), response.TokenID)
		assert.Len(t, response.GatewayURLs, 1)
	})

	t.Run("invalid pipeline request maps to a validation error", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.orchestrator.EXPECT().
			CreateCapsule(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: token id is required", pipeline.ErrInvalidRequest))

		_, err := exec.CreateCapsule(context.Background(), dto.CreateCapsuleRequest{
			WalletAddress: testWallet,
			ContentHash:   testHash,
		})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	})

	t.Run("duplicate content hash maps to a conflict", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.orchestrator.EXPECT().
			CreateCapsule(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("content hash %s: %w", testHash, store.ErrDuplicateContentHash))

		_, err := exec.CreateCapsule(context.Background(), dto.CreateCapsuleRequest{
			WalletAddress: testWallet,
			ContentHash:   testHash,
		})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
	})
}

func TestExecutorVerifyCapsule(t *testing.T) {
	t.Run("on-chain cross-check is attached when requested", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.verifier.EXPECT().
			Verify(gomock.Any(), gomock.Any()).
			Return(&verify.VerifyResult{Found: true, ContentHash: testHash}, nil)
		deps.ledger.EXPECT().
			VerifyOnChain(gomock.Any(), domain.ContentHash(testHash)).
			Return(true, nil)

		response, err := exec.VerifyCapsule(context.Background(), dto.VerifyCapsuleRequest{
			ContentHash:     testHash,
			VerifierAddress: testWallet,
			CheckOnChain:    true,
		})
		require.NoError(t, err)
		require.NotNil(t, response.OnChain)
		assert.True(t, *response.OnChain)
	})

	t.Run("chain failure degrades the cross-check to absent", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.verifier.EXPECT().
			Verify(gomock.Any(), gomock.Any()).
			Return(&verify.VerifyResult{Found: false, ContentHash: testHash}, nil)
		deps.ledger.EXPECT().
			VerifyOnChain(gomock.Any(), gomock.Any()).
			Return(false, errors.New("rpc: connection refused"))

		response, err := exec.VerifyCapsule(context.Background(), dto.VerifyCapsuleRequest{
			ContentHash:     testHash,
			VerifierAddress: testWallet,
			CheckOnChain:    true,
		})
		require.NoError(t, err)
		assert.Nil(t, response.OnChain)
	})

	t.Run("invalid request maps to a validation error", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.verifier.EXPECT().
			Verify(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: malformed content hash", verify.ErrInvalidRequest))

		_, err := exec.VerifyCapsule(context.Background(), dto.VerifyCapsuleRequest{
			ContentHash:     testHash,
			VerifierAddress: testWallet,
		})
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	})
}

func TestExecutorGetUserAnalytics(t *testing.T) {
	t.Run("unknown wallet yields a zero-valued object", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.store.EXPECT().GetUserStats(gomock.Any(), testWallet).Return(nil, nil)

		response, err := exec.GetUserAnalytics(context.Background(), testWallet, false)
		require.NoError(t, err)
		assert.Equal(t, testWallet, response.WalletAddress)
		assert.Zero(t, response.TotalCapsules)
		assert.Nil(t, response.OnChain)
	})

	t.Run("registry aggregate is attached when requested", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.store.EXPECT().GetUserStats(gomock.Any(), testWallet).
			Return(&schema.UserStats{WalletAddress: testWallet, TotalCapsules: 3}, nil)
		deps.ledger.EXPECT().
			GetUserAggregate(gomock.Any(), domain.Address(testWallet)).
			Return(&ledger.UserAggregate{TotalCapsules: 3, PublicCapsules: 2, PrivateCapsules: 1}, nil)

		response, err := exec.GetUserAnalytics(context.Background(), testWallet, true)
		require.NoError(t, err)
		require.NotNil(t, response.OnChain)
		assert.Equal(t, int64(3), response.OnChain.TotalCapsules)
	})
}

func TestExecutorGetGlobalAnalytics(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("prefers the sweeper snapshot", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.clock.EXPECT().Now().Return(now)
		deps.store.EXPECT().GetDailyAnalytics(gomock.Any(), "2026-08-28").
			Return(&schema.DailyAnalytics{Date: "2026-08-28", TotalCapsules: 99}, nil)

		response, err := exec.GetGlobalAnalytics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(99), response.TotalCapsules)
	})

	t.Run("computes live when no snapshot exists", func(t *testing.T) {
		exec, deps := newTestExecutor(t)

		deps.clock.EXPECT().Now().Return(now)
		deps.store.EXPECT().GetDailyAnalytics(gomock.Any(), "2026-08-28").Return(nil, nil)
		deps.store.EXPECT().GetGlobalCounts(gomock.Any(), now).
			Return(&store.GlobalCounts{TotalCapsules: 7, NewCapsulesToday: 2}, nil)

		response, err := exec.GetGlobalAnalytics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), response.TotalCapsules)
		assert.Equal(t, int64(2), response.NewCapsules)
	})
}

func TestExecutorListCapsules(t *testing.T) {
	exec, deps := newTestExecutor(t)

	deps.store.EXPECT().
		ListCapsules(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter store.CapsuleFilter) ([]schema.Capsule, uint64, error) {
			// Defaults apply when the handler passes nothing
			assert.Equal(t, 20, filter.Limit)
			assert.Equal(t, uint64(0), filter.Offset)
			return []schema.Capsule{{ID: 1, TokenID: 42}}, 50, nil
		})

	response, err := exec.ListCapsules(context.Background(), nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, response.Capsules, 1)
	assert.Equal(t, uint64(50), response.Total)
	require.NotNil(t, response.Offset)
	assert.Equal(t, uint64(1), *response.Offset)
}
