// Package pipeline sequences the capsule creation flow: content address,
// pin, mint, confirmation, persistence and the async stats update.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/contenthash"
	"github.com/proofcapsule/pc-anchor/internal/domain"
	"github.com/proofcapsule/pc-anchor/internal/ledger"
	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/messaging"
	"github.com/proofcapsule/pc-anchor/internal/pinning"
	"github.com/proofcapsule/pc-anchor/internal/stats"
	"github.com/proofcapsule/pc-anchor/internal/store"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
)

// ErrInvalidRequest marks requests rejected before any network or chain call
var ErrInvalidRequest = errors.New("invalid request")

// CreateCapsuleRequest describes one capsule to anchor. Two entry modes are
// supported: submitting Content makes the server hash, pin and mint; a
// wallet-signed deployment instead supplies ContentHash, TokenID and the
// transaction provenance of a mint it already performed.
type CreateCapsuleRequest struct {
	WalletAddress string

	// Content carries the raw bytes in the server-anchored mode
	Content  []byte
	Filename string

	// ContentHash is the precomputed content address in the externally
	// minted mode. When both Content and ContentHash are present they
	// must agree.
	ContentHash string

	Description *string
	Location    *string
	IsPublic    bool

	// ChainID overrides the ledger client's chain, zero means "the chain
	// this service mints on"
	ChainID int64

	// Externally minted provenance
	TokenID         *int64
	TransactionHash *string
	BlockNumber     *int64
	GasUsed         *int64
	IPFSHash        *string

	// AwaitConfirmation makes the pipeline poll the supplied transaction
	// before persisting, refreshing block number and gas used from the
	// receipt
	AwaitConfirmation bool
}

// CreateCapsuleResult is the persisted capsule plus derived presentation data
type CreateCapsuleResult struct {
	Capsule *schema.Capsule
	// GatewayURLs point at the pinned metadata, empty when nothing was pinned
	GatewayURLs []string
}

// Orchestrator runs the end-to-end capsule creation flow
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/pipeline.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// CreateCapsule anchors one capsule and persists the joined record
	CreateCapsule(ctx context.Context, req CreateCapsuleRequest) (*CreateCapsuleResult, error)
}

type orchestrator struct {
	store     store.Store
	pinner    pinning.Client
	ledger    ledger.Client
	publisher messaging.Publisher
	stats     stats.Updater
	clock     adapter.Clock
}

// NewOrchestrator wires the pipeline. Publisher and stats updater are
// optional: nil disables event publication or async stats respectively.
func NewOrchestrator(
	st store.Store,
	pinner pinning.Client,
	lc ledger.Client,
	publisher messaging.Publisher,
	statsUpdater stats.Updater,
	clock adapter.Clock,
) Orchestrator {
	return &orchestrator{
		store:     st,
		pinner:    pinner,
		ledger:    lc,
		publisher: publisher,
		stats:     statsUpdater,
		clock:     clock,
	}
}

// CreateCapsule anchors one capsule. Steps run strictly in order; only the
// stats recomputation and event publication happen after the fact and are
// best-effort.
func (o *orchestrator) CreateCapsule(ctx context.Context, req CreateCapsuleRequest) (*CreateCapsuleResult, error) {
	if err := o.validate(req); err != nil {
		return nil, err
	}

	hash := o.resolveContentHash(req)

	// Advisory duplicate check before any upstream work. The unique index
	// on capsules.content_hash remains the authoritative guard: two
	// concurrent requests can both pass this check, and the second insert
	// is rejected by the constraint.
	existing, err := o.store.GetCapsuleByContentHash(ctx, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing capsule: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("content hash %s: %w", hash, store.ErrDuplicateContentHash)
	}

	input := store.CreateCapsuleInput{
		WalletAddress:   req.WalletAddress,
		ContentHash:     string(hash),
		ChainID:         o.resolveChainID(req),
		Description:     req.Description,
		Location:        req.Location,
		IsPublic:        req.IsPublic,
		BlockNumber:     req.BlockNumber,
		TransactionHash: req.TransactionHash,
		GasUsed:         req.GasUsed,
		IPFSHash:        req.IPFSHash,
	}

	if req.TokenID != nil {
		if err := o.runExternallyMinted(ctx, req, &input); err != nil {
			return nil, err
		}
	} else {
		if err := o.runServerAnchored(ctx, req, hash, &input); err != nil {
			return nil, err
		}
	}

	// Insert-or-ignore so a capsule can be recorded before its creator
	// ever filled in a profile
	if _, err := o.store.UpsertUser(ctx, req.WalletAddress); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	capsule, err := o.store.CreateCapsule(ctx, input)
	if err != nil {
		// The mint already happened on chain by this point; a conflict
		// here means the same content won the race off-chain
		return nil, err
	}

	// Everything from here on is best-effort: the capsule is already
	// anchored and persisted
	if o.stats != nil {
		o.stats.Enqueue(req.WalletAddress)
	}
	o.publishCreated(ctx, capsule)

	result := &CreateCapsuleResult{Capsule: capsule}
	if capsule.IPFSHash != nil {
		result.GatewayURLs = pinning.GatewayURLs(*capsule.IPFSHash)
	}

	return result, nil
}

// validate rejects malformed requests before any network or chain call
func (o *orchestrator) validate(req CreateCapsuleRequest) error {
	if !domain.Address(req.WalletAddress).Valid() {
		return fmt.Errorf("%w: malformed wallet address %q", ErrInvalidRequest, req.WalletAddress)
	}

	hasContent := len(req.Content) > 0
	hasHash := req.ContentHash != ""

	if !hasContent && !hasHash {
		return fmt.Errorf("%w: either content or content hash is required", ErrInvalidRequest)
	}
	if hasHash && !domain.ContentHash(req.ContentHash).Valid() {
		return fmt.Errorf("%w: malformed content hash %q", ErrInvalidRequest, req.ContentHash)
	}
	if hasContent && hasHash && contenthash.HashBytes(req.Content) != domain.ContentHash(req.ContentHash) {
		return fmt.Errorf("%w: content hash does not match submitted content", ErrInvalidRequest)
	}

	if req.TokenID == nil {
		if !hasContent {
			return fmt.Errorf("%w: token id is required when no content is submitted", ErrInvalidRequest)
		}
	} else if *req.TokenID < 0 {
		return fmt.Errorf("%w: negative token id", ErrInvalidRequest)
	}
	if req.AwaitConfirmation && req.TransactionHash == nil {
		return fmt.Errorf("%w: transaction hash is required to await confirmation", ErrInvalidRequest)
	}
	if req.ChainID != 0 && !domain.IsValidChain(domain.Chain(req.ChainID)) { //nolint:gosec,G115
		return fmt.Errorf("%w: unsupported chain id %d", ErrInvalidRequest, req.ChainID)
	}

	return nil
}

func (o *orchestrator) resolveContentHash(req CreateCapsuleRequest) domain.ContentHash {
	if req.ContentHash != "" {
		return domain.ContentHash(req.ContentHash)
	}
	return contenthash.HashBytes(req.Content)
}

func (o *orchestrator) resolveChainID(req CreateCapsuleRequest) int64 {
	if req.ChainID != 0 {
		return req.ChainID
	}
	return int64(uint64(o.ledger.Chain())) //nolint:gosec,G115
}

// runServerAnchored pins the blob and its metadata, mints and waits for the
// confirmation, filling the persistence input with the on-chain provenance
func (o *orchestrator) runServerAnchored(ctx context.Context, req CreateCapsuleRequest, hash domain.ContentHash, input *store.CreateCapsuleInput) error {
	blobPin, err := o.pinner.PinFile(ctx, req.Filename, bytes.NewReader(req.Content))
	if err != nil {
		return fmt.Errorf("failed to pin content: %w", err)
	}

	// The metadata document is pinned before the mint because the mint
	// transaction carries its CID; the token number inside it is the
	// anticipated one
	nextID, err := o.ledger.NextTokenID(ctx)
	if err != nil {
		return fmt.Errorf("failed to anticipate token id: %w", err)
	}

	metadata := pinning.NewCapsuleMetadata(
		nextID,
		deref(req.Description),
		deref(req.Location),
		string(hash),
		blobPin.IpfsHash,
		req.IsPublic,
		o.clock.Now().UTC(),
	)
	metaPin, err := o.pinner.PinJSON(ctx, metadata)
	if err != nil {
		return fmt.Errorf("failed to pin metadata: %w", err)
	}

	txHash, err := o.ledger.Mint(ctx, ledger.MintParams{
		ContentHash: hash,
		Description: deref(req.Description),
		Location:    deref(req.Location),
		IPFSHash:    metaPin.IpfsHash,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return fmt.Errorf("failed to mint: %w", err)
	}

	receipt, err := o.ledger.WaitForConfirmation(ctx, txHash)
	if err != nil {
		// Asymmetric failure: the transaction may still confirm later
		// with no off-chain record of it
		return fmt.Errorf("failed to confirm mint %s: %w", txHash, err)
	}

	tokenID := nextID
	if receipt.TokenID != nil {
		tokenID = *receipt.TokenID
	} else {
		logger.WarnCtx(ctx, "mint receipt carries no Transfer log, using anticipated token id",
			zap.String("tx_hash", txHash),
			zap.Int64("token_id", nextID))
	}

	input.TokenID = tokenID
	input.IPFSHash = &metaPin.IpfsHash
	input.TransactionHash = &receipt.TxHash
	input.BlockNumber = &receipt.BlockNumber
	input.GasUsed = &receipt.GasUsed
	input.Metadata = o.describeContent(req.Content)

	return nil
}

// runExternallyMinted trusts the client-supplied provenance, optionally
// refreshing it from the receipt of the supplied transaction
func (o *orchestrator) runExternallyMinted(ctx context.Context, req CreateCapsuleRequest, input *store.CreateCapsuleInput) error {
	input.TokenID = *req.TokenID

	if req.AwaitConfirmation {
		receipt, err := o.ledger.WaitForConfirmation(ctx, *req.TransactionHash)
		if err != nil {
			return fmt.Errorf("failed to confirm transaction %s: %w", *req.TransactionHash, err)
		}
		input.BlockNumber = &receipt.BlockNumber
		input.GasUsed = &receipt.GasUsed
		if receipt.TokenID != nil && *receipt.TokenID != *req.TokenID {
			logger.WarnCtx(ctx, "receipt token id differs from request, trusting the receipt",
				zap.Int64("request_token_id", *req.TokenID),
				zap.Int64("receipt_token_id", *receipt.TokenID))
			input.TokenID = *receipt.TokenID
		}
	}

	if len(req.Content) > 0 {
		input.Metadata = o.describeContent(req.Content)
	}

	return nil
}

// describeContent sniffs the submitted bytes into a content metadata row
func (o *orchestrator) describeContent(content []byte) *store.ContentMetadataInput {
	contentType := o.pinner.SniffContentType(content)
	size := int64(len(content))
	return &store.ContentMetadataInput{
		ContentType:  &contentType,
		FileSize:     &size,
		Tags:         datatypes.JSON("[]"),
		CustomFields: datatypes.JSON("{}"),
	}
}

// publishCreated emits the capsule.created event, logging failures instead
// of surfacing them
func (o *orchestrator) publishCreated(ctx context.Context, capsule *schema.Capsule) {
	if o.publisher == nil {
		return
	}

	event := &domain.CapsuleEvent{
		EventType:   domain.EventTypeCapsuleCreated,
		TokenID:     capsule.TokenID,
		Owner:       capsule.WalletAddress,
		ContentHash: capsule.ContentHash,
		BlockNumber: capsule.BlockNumber,
		Timestamp:   o.clock.Now().UTC(),
	}
	if capsule.TransactionHash != nil {
		event.TxHash = *capsule.TransactionHash
	}

	if err := o.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish capsule.created event",
			zap.Error(err),
			zap.Int64("token_id", capsule.TokenID))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
