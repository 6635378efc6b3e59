// Package verify answers "has this content been anchored" and records an
// audit trail of every successful check.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/contenthash"
	"github.com/proofcapsule/pc-anchor/internal/domain"
	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/messaging"
	"github.com/proofcapsule/pc-anchor/internal/store"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
)

// ErrInvalidRequest marks requests rejected before any lookup
var ErrInvalidRequest = errors.New("invalid request")

// VerifyRequest identifies the content to check, either by its precomputed
// hash or by streaming the raw bytes
type VerifyRequest struct {
	ContentHash string
	Content     io.Reader

	VerifierAddress string
	// Method defaults to hash_match when empty
	Method domain.VerificationMethod
	Notes  *string
}

// CapsuleSummary is the projection of a matched capsule returned to verifiers.
// Private capsules reveal their existence but not their description or location.
type CapsuleSummary struct {
	TokenID       int64   `json:"token_id"`
	WalletAddress string  `json:"wallet_address"`
	ContentHash   string  `json:"content_hash"`
	ChainID       int64   `json:"chain_id"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	IPFSHash      *string `json:"ipfs_hash,omitempty"`
	IsPublic      bool    `json:"is_public"`
	CreatedAt     string  `json:"created_at"`
}

// VerifyResult reports the outcome of one verification attempt. Found is
// false when no capsule anchors the hash; that is a normal outcome, not an
// error, and nothing is recorded.
type VerifyResult struct {
	Found        bool
	ContentHash  string
	Capsule      *CapsuleSummary
	Verification *schema.Verification
}

// Service checks content hashes against the anchored capsules
//
//go:generate mockgen -source=service.go -destination=../mocks/verify.go -package=mocks -mock_names=Service=MockVerifyService
type Service interface {
	// Verify looks the content hash up and, on a hit, appends one
	// verification record
	Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error)
}

type service struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewService wires the verification service. Publisher is optional, nil
// disables event publication.
func NewService(st store.Store, publisher messaging.Publisher, clock adapter.Clock) Service {
	return &service{
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

func (s *service) Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	hash, err := s.resolveContentHash(req)
	if err != nil {
		return nil, err
	}
	if !domain.Address(req.VerifierAddress).Valid() {
		return nil, fmt.Errorf("%w: malformed verifier address %q", ErrInvalidRequest, req.VerifierAddress)
	}

	method := req.Method
	if method == "" {
		method = domain.MethodHashMatch
	}
	if method != domain.MethodHashMatch && method != domain.MethodManual {
		return nil, fmt.Errorf("%w: unknown verification method %q", ErrInvalidRequest, method)
	}

	capsule, err := s.store.GetCapsuleByContentHash(ctx, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to look up content hash: %w", err)
	}
	if capsule == nil {
		return &VerifyResult{Found: false, ContentHash: string(hash)}, nil
	}

	verification, err := s.store.CreateVerification(ctx, store.CreateVerificationInput{
		CapsuleID:          capsule.ID,
		VerifierAddress:    req.VerifierAddress,
		VerificationMethod: method,
		Notes:              req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record verification: %w", err)
	}

	s.publishVerified(ctx, capsule)

	return &VerifyResult{
		Found:        true,
		ContentHash:  string(hash),
		Capsule:      summarize(capsule),
		Verification: verification,
	}, nil
}

func (s *service) resolveContentHash(req VerifyRequest) (domain.ContentHash, error) {
	if req.ContentHash != "" {
		hash := domain.ContentHash(req.ContentHash)
		if !hash.Valid() {
			return "", fmt.Errorf("%w: malformed content hash %q", ErrInvalidRequest, req.ContentHash)
		}
		return hash, nil
	}
	if req.Content == nil {
		return "", fmt.Errorf("%w: either content or content hash is required", ErrInvalidRequest)
	}
	hash, err := contenthash.HashReader(req.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	return hash, nil
}

// summarize strips description, location and the pinned CID from capsules
// their owner marked private
func summarize(capsule *schema.Capsule) *CapsuleSummary {
	summary := &CapsuleSummary{
		TokenID:       capsule.TokenID,
		WalletAddress: capsule.WalletAddress,
		ContentHash:   capsule.ContentHash,
		ChainID:       capsule.ChainID,
		IsPublic:      capsule.IsPublic,
		CreatedAt:     capsule.CreatedAt.UTC().Format(time.RFC3339),
	}
	if capsule.IsPublic {
		summary.Description = capsule.Description
		summary.Location = capsule.Location
		summary.IPFSHash = capsule.IPFSHash
	}
	return summary
}

func (s *service) publishVerified(ctx context.Context, capsule *schema.Capsule) {
	if s.publisher == nil {
		return
	}

	event := &domain.CapsuleEvent{
		EventType:   domain.EventTypeCapsuleVerified,
		TokenID:     capsule.TokenID,
		Owner:       capsule.WalletAddress,
		ContentHash: capsule.ContentHash,
		BlockNumber: capsule.BlockNumber,
		Timestamp:   s.clock.Now().UTC(),
	}
	if capsule.TransactionHash != nil {
		event.TxHash = *capsule.TransactionHash
	}

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish capsule.verified event",
			zap.Error(err),
			zap.Int64("token_id", capsule.TokenID))
	}
}
