package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadonlyStore(t *testing.T) {
	ctx := context.Background()
	st := NewReadonlyStore()

	t.Run("create echoes the input without persisting", func(t *testing.T) {
		capsule, err := st.CreateCapsule(ctx, CreateCapsuleInput{
			TokenID:       7,
			WalletAddress: "0x1234567890123456789012345678901234567890",
			ContentHash:   "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			ChainID:       146,
			IsPublic:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), capsule.TokenID)
		assert.False(t, capsule.CreatedAt.IsZero())

		// Nothing was stored
		got, err := st.GetCapsuleByContentHash(ctx, capsule.ContentHash)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("reads return empty collections", func(t *testing.T) {
		capsules, total, err := st.ListCapsules(ctx, CapsuleFilter{Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, capsules)
		assert.Zero(t, total)

		verifications, total, err := st.ListVerifications(ctx, VerificationFilter{Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, verifications)
		assert.Zero(t, total)
	})

	t.Run("mutations succeed as no-ops", func(t *testing.T) {
		require.NoError(t, st.RecomputeUserStats(ctx, "0x1234567890123456789012345678901234567890"))

		deleted, err := st.DeleteUser(ctx, "0x1234567890123456789012345678901234567890")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
