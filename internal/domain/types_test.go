package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddressValid(t *testing.T) {
	tests := []struct {
		name    string
		address Address
		valid   bool
	}{
		{"valid lowercase", "0x457ee5f723c7606c12a7264b52e285906f91eea6", true},
		{"valid mixed case", "0x457ee5f723C7606c12a7264b52e285906F91eEA6", true},
		{"missing prefix", "457ee5f723c7606c12a7264b52e285906f91eea6", false},
		{"too short", "0x457ee5f723c7606c12a7264b52e285906f91eea", false},
		{"too long", "0x457ee5f723c7606c12a7264b52e285906f91eea6aa", false},
		{"non-hex characters", "0x457ee5f723c7606c12a7264b52e285906f91eezz", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.address.Valid())
		})
	}
}

func TestContentHashValid(t *testing.T) {
	tests := []struct {
		name  string
		hash  ContentHash
		valid bool
	}{
		{"valid", "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", true},
		{"valid uppercase", "0xE3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855", true},
		{"missing prefix", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", false},
		{"too short", "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b85", false},
		{"address length", "0x457ee5f723c7606c12a7264b52e285906f91eea6", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.hash.Valid())
		})
	}
}

func TestChain(t *testing.T) {
	assert.True(t, IsValidChain(ChainSonicMainnet))
	assert.True(t, IsValidChain(ChainSonicBlaze))
	assert.False(t, IsValidChain(Chain(1)))

	assert.Equal(t, "Sonic Mainnet", ChainSonicMainnet.Name())
	assert.Equal(t, "Sonic Blaze Testnet", ChainSonicBlaze.Name())
	assert.Equal(t, "Unknown Network", Chain(5).Name())
}

func TestCapsuleEventValid(t *testing.T) {
	event := CapsuleEvent{
		EventType:   EventTypeCapsuleCreated,
		TokenID:     1,
		Owner:       "0x457ee5f723c7606c12a7264b52e285906f91eea6",
		ContentHash: "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Timestamp:   time.Now(),
	}
	assert.True(t, event.Valid())

	bad := event
	bad.EventType = "capsule.burned"
	assert.False(t, bad.Valid())

	bad = event
	bad.Owner = "not-an-address"
	assert.False(t, bad.Valid())

	bad = event
	bad.ContentHash = "0x1234"
	assert.False(t, bad.Valid())
}
