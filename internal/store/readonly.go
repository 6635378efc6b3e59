package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
)

// readonlyStore is a Store decorator for maintenance windows. Mutations are
// acknowledged without touching the database and reads return empty results,
// so clients keep working while the database is unavailable. Installed at
// construction time from configuration, never toggled at runtime.
type readonlyStore struct {
	clock func() time.Time
}

// NewReadonlyStore creates a store that accepts writes without persisting
// them and serves empty reads
func NewReadonlyStore() Store {
	return &readonlyStore{clock: time.Now}
}

func (s *readonlyStore) logSkip(ctx context.Context, op string) {
	logger.WarnCtx(ctx, "read-only mode, skipping database operation", zap.String("operation", op))
}

func (s *readonlyStore) CreateCapsule(ctx context.Context, input CreateCapsuleInput) (*schema.Capsule, error) {
	s.logSkip(ctx, "CreateCapsule")
	now := s.clock()
	return &schema.Capsule{
		TokenID:         input.TokenID,
		WalletAddress:   input.WalletAddress,
		ContentHash:     input.ContentHash,
		ChainID:         input.ChainID,
		Description:     input.Description,
		Location:        input.Location,
		IPFSHash:        input.IPFSHash,
		IsPublic:        input.IsPublic,
		BlockNumber:     input.BlockNumber,
		TransactionHash: input.TransactionHash,
		GasUsed:         input.GasUsed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (s *readonlyStore) GetCapsuleByID(ctx context.Context, id int64) (*schema.Capsule, error) {
	return nil, nil
}

func (s *readonlyStore) GetCapsuleByContentHash(ctx context.Context, contentHash string) (*schema.Capsule, error) {
	return nil, nil
}

func (s *readonlyStore) ListCapsules(ctx context.Context, filter CapsuleFilter) ([]schema.Capsule, uint64, error) {
	return []schema.Capsule{}, 0, nil
}

func (s *readonlyStore) UpdateCapsule(ctx context.Context, id int64, input UpdateCapsuleInput) (*schema.Capsule, error) {
	s.logSkip(ctx, "UpdateCapsule")
	return &schema.Capsule{ID: id, UpdatedAt: s.clock()}, nil
}

func (s *readonlyStore) GetContentMetadata(ctx context.Context, capsuleID int64) (*schema.ContentMetadata, error) {
	return nil, nil
}

func (s *readonlyStore) UpsertUser(ctx context.Context, walletAddress string) (*schema.User, error) {
	s.logSkip(ctx, "UpsertUser")
	now := s.clock()
	return &schema.User{WalletAddress: walletAddress, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *readonlyStore) GetUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error) {
	return nil, nil
}

func (s *readonlyStore) CreateVerification(ctx context.Context, input CreateVerificationInput) (*schema.Verification, error) {
	s.logSkip(ctx, "CreateVerification")
	return &schema.Verification{
		CapsuleID:          input.CapsuleID,
		VerifierAddress:    input.VerifierAddress,
		VerificationMethod: input.VerificationMethod,
		Notes:              input.Notes,
		VerifiedAt:         s.clock(),
	}, nil
}

func (s *readonlyStore) ListVerifications(ctx context.Context, filter VerificationFilter) ([]schema.Verification, uint64, error) {
	return []schema.Verification{}, 0, nil
}

func (s *readonlyStore) RecomputeUserStats(ctx context.Context, walletAddress string) error {
	s.logSkip(ctx, "RecomputeUserStats")
	return nil
}

func (s *readonlyStore) GetUserStats(ctx context.Context, walletAddress string) (*schema.UserStats, error) {
	return nil, nil
}

func (s *readonlyStore) GetGlobalCounts(ctx context.Context, day time.Time) (*GlobalCounts, error) {
	return &GlobalCounts{}, nil
}

func (s *readonlyStore) UpsertDailyAnalytics(ctx context.Context, row schema.DailyAnalytics) error {
	s.logSkip(ctx, "UpsertDailyAnalytics")
	return nil
}

func (s *readonlyStore) GetDailyAnalytics(ctx context.Context, date string) (*schema.DailyAnalytics, error) {
	return nil, nil
}

func (s *readonlyStore) ExportUser(ctx context.Context, walletAddress string) (*UserExport, error) {
	return nil, nil
}

func (s *readonlyStore) DeleteUser(ctx context.Context, walletAddress string) (int64, error) {
	s.logSkip(ctx, "DeleteUser")
	return 0, nil
}
