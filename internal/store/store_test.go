package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/proofcapsule/pc-anchor/internal/domain"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testTokenSeq int64

// buildTestCapsule creates a capsule input with a unique token id and content hash
func buildTestCapsule(wallet string, isPublic bool) CreateCapsuleInput {
	testTokenSeq++
	desc := fmt.Sprintf("capsule %d", testTokenSeq)
	location := "Lisbon, Portugal"
	ipfsHash := fmt.Sprintf("QmTest%058d", testTokenSeq)
	blockNumber := int64(1000 + testTokenSeq)
	txHash := fmt.Sprintf("0x%064d", testTokenSeq)
	gasUsed := int64(21000)

	return CreateCapsuleInput{
		TokenID:         testTokenSeq,
		WalletAddress:   wallet,
		ContentHash:     fmt.Sprintf("0x%064x", testTokenSeq),
		ChainID:         int64(domain.ChainSonicBlaze),
		Description:     &desc,
		Location:        &location,
		IPFSHash:        &ipfsHash,
		IsPublic:        isPublic,
		BlockNumber:     &blockNumber,
		TransactionHash: &txHash,
		GasUsed:         &gasUsed,
	}
}

const (
	testWalletA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testWalletB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	testWalletC = "0xcccccccccccccccccccccccccccccccccccccccc"
)

// =============================================================================
// Test: CreateCapsule
// =============================================================================

func testCreateCapsule(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("successful create persists all fields", func(t *testing.T) {
		input := buildTestCapsule(testWalletA, true)

		capsule, err := store.CreateCapsule(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, capsule)
		assert.NotZero(t, capsule.ID)
		assert.Equal(t, input.TokenID, capsule.TokenID)
		assert.Equal(t, input.WalletAddress, capsule.WalletAddress)
		assert.Equal(t, input.ContentHash, capsule.ContentHash)
		assert.Equal(t, input.ChainID, capsule.ChainID)
		assert.Equal(t, *input.Description, *capsule.Description)
		assert.Equal(t, *input.IPFSHash, *capsule.IPFSHash)
		assert.True(t, capsule.IsPublic)
		assert.Equal(t, *input.BlockNumber, *capsule.BlockNumber)
		assert.Equal(t, *input.TransactionHash, *capsule.TransactionHash)
	})

	t.Run("duplicate content hash returns ErrDuplicateContentHash", func(t *testing.T) {
		input := buildTestCapsule(testWalletA, false)

		first, err := store.CreateCapsule(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, first)

		// Same content hash, different token id
		dup := input
		dup.TokenID = input.TokenID + 1000000

		_, err = store.CreateCapsule(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateContentHash)

		// The first capsule is still the only one for this hash
		found, err := store.GetCapsuleByContentHash(ctx, input.ContentHash)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("create with content metadata", func(t *testing.T) {
		input := buildTestCapsule(testWalletA, true)
		contentType := "image/png"
		fileSize := int64(204800)
		dimensions := "1920x1080"
		input.Metadata = &ContentMetadataInput{
			ContentType: &contentType,
			FileSize:    &fileSize,
			Dimensions:  &dimensions,
			Tags:        datatypes.JSON([]byte(`["travel","sunset"]`)),
		}

		capsule, err := store.CreateCapsule(ctx, input)
		require.NoError(t, err)

		metadata, err := store.GetContentMetadata(ctx, capsule.ID)
		require.NoError(t, err)
		require.NotNil(t, metadata)
		assert.Equal(t, contentType, *metadata.ContentType)
		assert.Equal(t, fileSize, *metadata.FileSize)
		assert.Equal(t, dimensions, *metadata.Dimensions)
	})
}

// =============================================================================
// Test: capsule reads
// =============================================================================

func testGetCapsule(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get by id", func(t *testing.T) {
		created, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
		require.NoError(t, err)

		capsule, err := store.GetCapsuleByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, capsule)
		assert.Equal(t, created.ContentHash, capsule.ContentHash)
	})

	t.Run("get by id not found returns nil", func(t *testing.T) {
		capsule, err := store.GetCapsuleByID(ctx, 99999999)
		require.NoError(t, err)
		assert.Nil(t, capsule)
	})

	t.Run("get by content hash not found returns nil", func(t *testing.T) {
		capsule, err := store.GetCapsuleByContentHash(ctx, "0x"+fmt.Sprintf("%064d", 0))
		require.NoError(t, err)
		assert.Nil(t, capsule)
	})
}

func testListCapsules(t *testing.T, store Store) {
	ctx := context.Background()

	// Two public capsules for A, one private for A, one public for B
	_, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
	require.NoError(t, err)
	_, err = store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
	require.NoError(t, err)
	_, err = store.CreateCapsule(ctx, buildTestCapsule(testWalletA, false))
	require.NoError(t, err)
	_, err = store.CreateCapsule(ctx, buildTestCapsule(testWalletB, true))
	require.NoError(t, err)

	t.Run("filter by wallet", func(t *testing.T) {
		wallet := testWalletA
		capsules, total, err := store.ListCapsules(ctx, CapsuleFilter{WalletAddress: &wallet, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, capsules, 3)
		for _, c := range capsules {
			assert.Equal(t, testWalletA, c.WalletAddress)
		}
	})

	t.Run("filter by wallet and visibility", func(t *testing.T) {
		wallet := testWalletA
		public := true
		capsules, total, err := store.ListCapsules(ctx, CapsuleFilter{WalletAddress: &wallet, IsPublic: &public, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, capsules, 2)
	})

	t.Run("newest first", func(t *testing.T) {
		wallet := testWalletA
		capsules, _, err := store.ListCapsules(ctx, CapsuleFilter{WalletAddress: &wallet, Limit: 10})
		require.NoError(t, err)
		require.True(t, len(capsules) >= 2)
		for i := 1; i < len(capsules); i++ {
			assert.True(t, !capsules[i-1].CreatedAt.Before(capsules[i].CreatedAt))
		}
	})

	t.Run("pagination", func(t *testing.T) {
		wallet := testWalletA
		page1, total, err := store.ListCapsules(ctx, CapsuleFilter{WalletAddress: &wallet, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, page1, 2)

		page2, _, err := store.ListCapsules(ctx, CapsuleFilter{WalletAddress: &wallet, Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, page2, 1)
		assert.NotEqual(t, page1[0].ID, page2[0].ID)
	})
}

func testUpdateCapsule(t *testing.T, store Store) {
	ctx := context.Background()

	created, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletA, false))
	require.NoError(t, err)

	t.Run("updates only provided fields", func(t *testing.T) {
		newDesc := "updated description"
		public := true
		updated, err := store.UpdateCapsule(ctx, created.ID, UpdateCapsuleInput{
			Description: &newDesc,
			IsPublic:    &public,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		capsule, err := store.GetCapsuleByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, newDesc, *capsule.Description)
		assert.True(t, capsule.IsPublic)
		// Location untouched
		assert.Equal(t, *created.Location, *capsule.Location)
		// Content hash and token id are immutable through this path
		assert.Equal(t, created.ContentHash, capsule.ContentHash)
		assert.Equal(t, created.TokenID, capsule.TokenID)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		desc := "whatever"
		updated, err := store.UpdateCapsule(ctx, 99999999, UpdateCapsuleInput{Description: &desc})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

// =============================================================================
// Test: users
// =============================================================================

func testUpsertUser(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("first upsert creates the user", func(t *testing.T) {
		user, err := store.UpsertUser(ctx, testWalletC)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotZero(t, user.ID)
		assert.Equal(t, testWalletC, user.WalletAddress)
	})

	t.Run("second upsert is a no-op returning the same row", func(t *testing.T) {
		first, err := store.UpsertUser(ctx, testWalletC)
		require.NoError(t, err)

		second, err := store.UpsertUser(ctx, testWalletC)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
	})
}

// =============================================================================
// Test: verifications
// =============================================================================

func testVerifications(t *testing.T, store Store) {
	ctx := context.Background()

	capsule, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
	require.NoError(t, err)

	t.Run("each call appends exactly one row", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := store.CreateVerification(ctx, CreateVerificationInput{
				CapsuleID:          capsule.ID,
				VerifierAddress:    testWalletB,
				VerificationMethod: domain.MethodHashMatch,
			})
			require.NoError(t, err)
		}

		rows, total, err := store.ListVerifications(ctx, VerificationFilter{CapsuleID: &capsule.ID, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, rows, 3)
	})

	t.Run("history is ascending by verified_at", func(t *testing.T) {
		rows, _, err := store.ListVerifications(ctx, VerificationFilter{CapsuleID: &capsule.ID, Limit: 10})
		require.NoError(t, err)
		for i := 1; i < len(rows); i++ {
			assert.True(t, !rows[i].VerifiedAt.Before(rows[i-1].VerifiedAt))
		}
	})

	t.Run("filter by verifier", func(t *testing.T) {
		notes := "manual check"
		_, err := store.CreateVerification(ctx, CreateVerificationInput{
			CapsuleID:          capsule.ID,
			VerifierAddress:    testWalletC,
			VerificationMethod: domain.MethodManual,
			Notes:              &notes,
		})
		require.NoError(t, err)

		verifier := testWalletC
		rows, total, err := store.ListVerifications(ctx, VerificationFilter{VerifierAddress: &verifier, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.MethodManual, rows[0].VerificationMethod)
		assert.Equal(t, notes, *rows[0].Notes)
	})
}

// =============================================================================
// Test: user stats
// =============================================================================

func testUserStats(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("recompute converges to the true counts", func(t *testing.T) {
		c1, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
		require.NoError(t, err)
		_, err = store.CreateCapsule(ctx, buildTestCapsule(testWalletA, false))
		require.NoError(t, err)
		_, err = store.CreateCapsule(ctx, buildTestCapsule(testWalletB, true))
		require.NoError(t, err)

		_, err = store.CreateVerification(ctx, CreateVerificationInput{
			CapsuleID:          c1.ID,
			VerifierAddress:    testWalletB,
			VerificationMethod: domain.MethodHashMatch,
		})
		require.NoError(t, err)

		require.NoError(t, store.RecomputeUserStats(ctx, testWalletA))

		stats, err := store.GetUserStats(ctx, testWalletA)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(2), stats.TotalCapsules)
		assert.Equal(t, int64(1), stats.PublicCapsules)
		assert.Equal(t, int64(1), stats.PrivateCapsules)
		assert.Equal(t, int64(1), stats.TotalVerifications)
		require.NotNil(t, stats.FirstCapsuleAt)
		require.NotNil(t, stats.LastCapsuleAt)
		assert.True(t, !stats.LastCapsuleAt.Before(*stats.FirstCapsuleAt))
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		require.NoError(t, store.RecomputeUserStats(ctx, testWalletA))
		first, err := store.GetUserStats(ctx, testWalletA)
		require.NoError(t, err)

		require.NoError(t, store.RecomputeUserStats(ctx, testWalletA))
		second, err := store.GetUserStats(ctx, testWalletA)
		require.NoError(t, err)

		assert.Equal(t, first.TotalCapsules, second.TotalCapsules)
		assert.Equal(t, first.TotalVerifications, second.TotalVerifications)
	})

	t.Run("recompute for wallet with no capsules yields zeros", func(t *testing.T) {
		require.NoError(t, store.RecomputeUserStats(ctx, testWalletC))
		stats, err := store.GetUserStats(ctx, testWalletC)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Zero(t, stats.TotalCapsules)
		assert.Nil(t, stats.FirstCapsuleAt)
	})

	t.Run("get stats for unknown wallet returns nil", func(t *testing.T) {
		stats, err := store.GetUserStats(ctx, "0xdddddddddddddddddddddddddddddddddddddddd")
		require.NoError(t, err)
		assert.Nil(t, stats)
	})
}

// =============================================================================
// Test: analytics
// =============================================================================

func testDailyAnalytics(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("global counts reflect the data", func(t *testing.T) {
		_, err := store.UpsertUser(ctx, testWalletA)
		require.NoError(t, err)
		_, err = store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
		require.NoError(t, err)

		counts, err := store.GetGlobalCounts(ctx, time.Now().UTC())
		require.NoError(t, err)
		require.NotNil(t, counts)
		assert.True(t, counts.TotalCapsules >= 1)
		assert.True(t, counts.TotalUsers >= 1)
		assert.True(t, counts.NewCapsulesToday >= 1)
	})

	t.Run("upsert is idempotent per date", func(t *testing.T) {
		date := "2026-08-28"
		require.NoError(t, store.UpsertDailyAnalytics(ctx, schema.DailyAnalytics{
			Date:          date,
			TotalCapsules: 10,
			TotalUsers:    5,
			NewCapsules:   2,
		}))
		require.NoError(t, store.UpsertDailyAnalytics(ctx, schema.DailyAnalytics{
			Date:          date,
			TotalCapsules: 11,
			TotalUsers:    5,
			NewCapsules:   3,
		}))

		row, err := store.GetDailyAnalytics(ctx, date)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, int64(11), row.TotalCapsules)
		assert.Equal(t, int64(3), row.NewCapsules)
	})

	t.Run("missing date returns nil", func(t *testing.T) {
		row, err := store.GetDailyAnalytics(ctx, "1999-01-01")
		require.NoError(t, err)
		assert.Nil(t, row)
	})
}

// =============================================================================
// Test: export and delete
// =============================================================================

func testExportUser(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("export assembles the full document", func(t *testing.T) {
		_, err := store.UpsertUser(ctx, testWalletA)
		require.NoError(t, err)
		capsule, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
		require.NoError(t, err)
		_, err = store.CreateVerification(ctx, CreateVerificationInput{
			CapsuleID:          capsule.ID,
			VerifierAddress:    testWalletB,
			VerificationMethod: domain.MethodHashMatch,
		})
		require.NoError(t, err)
		require.NoError(t, store.RecomputeUserStats(ctx, testWalletA))

		export, err := store.ExportUser(ctx, testWalletA)
		require.NoError(t, err)
		require.NotNil(t, export)
		assert.Equal(t, testWalletA, export.User.WalletAddress)
		assert.Len(t, export.Capsules, 1)
		assert.Len(t, export.Verifications, 1)
		require.NotNil(t, export.Stats)
		assert.Equal(t, int64(1), export.Stats.TotalCapsules)
		assert.False(t, export.ExportedAt.IsZero())
	})

	t.Run("unknown wallet returns nil", func(t *testing.T) {
		export, err := store.ExportUser(ctx, "0xdddddddddddddddddddddddddddddddddddddddd")
		require.NoError(t, err)
		assert.Nil(t, export)
	})
}

func testDeleteUser(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("delete cascades through capsules, verifications and stats", func(t *testing.T) {
		_, err := store.UpsertUser(ctx, testWalletA)
		require.NoError(t, err)
		capsule, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletA, true))
		require.NoError(t, err)
		_, err = store.CreateVerification(ctx, CreateVerificationInput{
			CapsuleID:          capsule.ID,
			VerifierAddress:    testWalletB,
			VerificationMethod: domain.MethodHashMatch,
		})
		require.NoError(t, err)
		require.NoError(t, store.RecomputeUserStats(ctx, testWalletA))

		deleted, err := store.DeleteUser(ctx, testWalletA)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		user, err := store.GetUserByWallet(ctx, testWalletA)
		require.NoError(t, err)
		assert.Nil(t, user)

		gone, err := store.GetCapsuleByID(ctx, capsule.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		rows, total, err := store.ListVerifications(ctx, VerificationFilter{CapsuleID: &capsule.ID, Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)

		stats, err := store.GetUserStats(ctx, testWalletA)
		require.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("delete removes verifications the wallet made on other capsules", func(t *testing.T) {
		_, err := store.UpsertUser(ctx, testWalletA)
		require.NoError(t, err)
		_, err = store.UpsertUser(ctx, testWalletB)
		require.NoError(t, err)
		theirs, err := store.CreateCapsule(ctx, buildTestCapsule(testWalletB, true))
		require.NoError(t, err)
		_, err = store.CreateVerification(ctx, CreateVerificationInput{
			CapsuleID:          theirs.ID,
			VerifierAddress:    testWalletA,
			VerificationMethod: domain.MethodHashMatch,
		})
		require.NoError(t, err)

		_, err = store.DeleteUser(ctx, testWalletA)
		require.NoError(t, err)

		verifier := testWalletA
		rows, total, err := store.ListVerifications(ctx, VerificationFilter{VerifierAddress: &verifier, Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)

		// The other wallet's capsule is untouched and its stats still recompute
		kept, err := store.GetCapsuleByID(ctx, theirs.ID)
		require.NoError(t, err)
		require.NotNil(t, kept)
		require.NoError(t, store.RecomputeUserStats(ctx, testWalletB))
	})

	t.Run("content hash is free again after delete", func(t *testing.T) {
		input := buildTestCapsule(testWalletB, true)
		_, err := store.UpsertUser(ctx, testWalletB)
		require.NoError(t, err)
		_, err = store.CreateCapsule(ctx, input)
		require.NoError(t, err)

		_, err = store.DeleteUser(ctx, testWalletB)
		require.NoError(t, err)

		// Re-anchoring the same content now succeeds
		input.TokenID += 1000000
		_, err = store.CreateCapsule(ctx, input)
		require.NoError(t, err)
	})
}

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateCapsule", testCreateCapsule},
		{"GetCapsule", testGetCapsule},
		{"ListCapsules", testListCapsules},
		{"UpdateCapsule", testUpdateCapsule},
		{"UpsertUser", testUpsertUser},
		{"Verifications", testVerifications},
		{"UserStats", testUserStats},
		{"DailyAnalytics", testDailyAnalytics},
		{"ExportUser", testExportUser},
		{"DeleteUser", testDeleteUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
