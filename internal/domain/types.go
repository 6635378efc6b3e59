package domain

import (
	"regexp"
	"time"
)

// Chain represents the blockchain network by its numeric chain ID
type Chain uint64

const (
	// ChainSonicMainnet is the Sonic mainnet (chain ID 146)
	ChainSonicMainnet Chain = 146
	// ChainSonicBlaze is the Sonic Blaze testnet (chain ID 57054)
	ChainSonicBlaze Chain = 57054
)

// IsValidChain checks if a chain is one this service knows contracts for
func IsValidChain(chain Chain) bool {
	return chain == ChainSonicMainnet || chain == ChainSonicBlaze
}

// Name returns a human-readable network name
func (c Chain) Name() string {
	switch c {
	case ChainSonicMainnet:
		return "Sonic Mainnet"
	case ChainSonicBlaze:
		return "Sonic Blaze Testnet"
	default:
		return "Unknown Network"
	}
}

var (
	addressRe     = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	contentHashRe = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
)

// Address represents a wallet address
type Address string

// Valid reports whether the address is a well-formed 20-byte hex address
func (a Address) Valid() bool {
	return addressRe.MatchString(string(a))
}

// ContentHash represents the content address of a capsule: a 0x-prefixed
// SHA-256 digest of the captured bytes
type ContentHash string

// Valid reports whether the hash is a well-formed 32-byte hex digest
func (h ContentHash) Valid() bool {
	return contentHashRe.MatchString(string(h))
}

// VerificationMethod tags how a verification was performed
type VerificationMethod string

const (
	// MethodHashMatch means the verifier re-derived the content address and it matched
	MethodHashMatch VerificationMethod = "hash_match"
	// MethodManual means the verification was asserted out of band
	MethodManual VerificationMethod = "manual"
)

// CapsuleEventType represents the type of capsule lifecycle event
type CapsuleEventType string

const (
	EventTypeCapsuleCreated  CapsuleEventType = "capsule.created"
	EventTypeCapsuleVerified CapsuleEventType = "capsule.verified"
)

// CapsuleEvent is the normalized capsule lifecycle event published to NATS
type CapsuleEvent struct {
	EventType   CapsuleEventType `json:"event_type"`
	TokenID     int64            `json:"token_id"`
	Owner       string           `json:"owner"`
	ContentHash string           `json:"content_hash"`
	TxHash      string           `json:"tx_hash,omitempty"`
	BlockNumber *int64           `json:"block_number,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

// Valid reports whether the event carries the fields every consumer relies on
func (e *CapsuleEvent) Valid() bool {
	if e.EventType != EventTypeCapsuleCreated && e.EventType != EventTypeCapsuleVerified {
		return false
	}
	if !Address(e.Owner).Valid() {
		return false
	}
	return ContentHash(e.ContentHash).Valid()
}
