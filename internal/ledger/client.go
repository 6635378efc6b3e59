// Package ledger anchors capsules on chain and reads them back. It talks to
// the capsule NFT contract and the per-user registry contract through a
// narrow RPC client interface.
package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/domain"
	"github.com/proofcapsule/pc-anchor/internal/logger"
)

// ErrNoSigner is returned by Mint when no signing key is configured.
// Wallet-signed deployments submit the transaction client-side and hand the
// service the resulting hash instead.
var ErrNoSigner = errors.New("no signing key configured")

// CapsuleABI is the subset of the capsule NFT contract ABI this service calls
const CapsuleABI = `[
	{"inputs":[{"name":"contentHash","type":"bytes32"},{"name":"description","type":"string"},{"name":"location","type":"string"},{"name":"ipfsHash","type":"string"},{"name":"isPublic","type":"bool"}],"name":"createProofCapsule","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"contentHash","type":"bytes32"}],"name":"verifyContentHash","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"getCapsule","outputs":[{"name":"contentHash","type":"bytes32"},{"name":"description","type":"string"},{"name":"location","type":"string"},{"name":"ipfsHash","type":"string"},{"name":"isPublic","type":"bool"},{"name":"createdAt","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// RegistryABI is the subset of the capsule registry contract ABI this service calls
const RegistryABI = `[
	{"inputs":[{"name":"user","type":"address"}],"name":"getUserStats","outputs":[{"name":"totalCapsules","type":"uint256"},{"name":"publicCapsules","type":"uint256"},{"name":"privateCapsules","type":"uint256"},{"name":"firstCapsuleAt","type":"uint256"},{"name":"lastCapsuleAt","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// transferEventSignature is keccak256("Transfer(address,address,uint256)")
var transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// MintParams holds the arguments of createProofCapsule
type MintParams struct {
	ContentHash domain.ContentHash
	Description string
	Location    string
	IPFSHash    string
	IsPublic    bool
}

// Receipt is the confirmation result of an anchoring transaction
type Receipt struct {
	TxHash      string
	BlockNumber int64
	GasUsed     int64
	// TokenID is the minted token id extracted from the Transfer event,
	// nil when the receipt carries no mint log
	TokenID *int64
}

// CapsuleOnChain is the on-chain capsule record returned by getCapsule
type CapsuleOnChain struct {
	ContentHash domain.ContentHash
	Description string
	Location    string
	IPFSHash    string
	IsPublic    bool
	CreatedAt   time.Time
}

// UserAggregate is the registry contract's per-user summary
type UserAggregate struct {
	TotalCapsules   int64
	PublicCapsules  int64
	PrivateCapsules int64
	FirstCapsuleAt  *time.Time
	LastCapsuleAt   *time.Time
}

// Client anchors capsules and reads them back from one chain
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// Chain returns the chain this client is bound to
	Chain() domain.Chain
	// NextTokenID anticipates the id the next mint will be assigned,
	// derived from the contract's total supply
	NextTokenID(ctx context.Context) (int64, error)
	// Mint submits a createProofCapsule transaction, returning its hash
	Mint(ctx context.Context, params MintParams) (string, error)
	// WaitForConfirmation polls until the transaction is mined
	WaitForConfirmation(ctx context.Context, txHash string) (*Receipt, error)
	// VerifyOnChain reports whether the content hash is anchored on chain
	VerifyOnChain(ctx context.Context, contentHash domain.ContentHash) (bool, error)
	// GetCapsule reads the on-chain record of a token
	GetCapsule(ctx context.Context, tokenID int64) (*CapsuleOnChain, error)
	// GetUserAggregate reads the registry contract's summary for a wallet
	GetUserAggregate(ctx context.Context, address domain.Address) (*UserAggregate, error)
	// Close closes the underlying connection
	Close()
}

// Config holds the per-chain client configuration
type Config struct {
	Chain domain.Chain
	// SignerKey is the hex-encoded private key used for server-side minting,
	// empty for wallet-signed deployments
	SignerKey string
	// ConfirmationMaxElapsed bounds the receipt polling, 0 means no bound
	// beyond the caller's context
	ConfirmationMaxElapsed time.Duration
}

type client struct {
	chain       domain.Chain
	contracts   ContractSet
	eth         adapter.EthClient
	capsuleABI  abi.ABI
	registryABI abi.ABI
	signerKey   *ecdsa.PrivateKey
	maxElapsed  time.Duration
}

// NewClient creates a ledger client for one chain. It fails when the chain
// has no contract deployment in the registry.
func NewClient(cfg Config, registry *Registry, eth adapter.EthClient) (Client, error) {
	contracts, err := registry.Contracts(cfg.Chain)
	if err != nil {
		return nil, err
	}

	capsuleABI, err := abi.JSON(strings.NewReader(CapsuleABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse capsule ABI: %w", err)
	}
	registryABI, err := abi.JSON(strings.NewReader(RegistryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry ABI: %w", err)
	}

	c := &client{
		chain:       cfg.Chain,
		contracts:   contracts,
		eth:         eth,
		capsuleABI:  capsuleABI,
		registryABI: registryABI,
		maxElapsed:  cfg.ConfirmationMaxElapsed,
	}

	if cfg.SignerKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.SignerKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse signer key: %w", err)
		}
		c.signerKey = key
	}

	return c, nil
}

func (c *client) Chain() domain.Chain {
	return c.chain
}

// NextTokenID returns totalSupply + 1. The anticipated id is advisory: a
// concurrent mint can claim it first, and only the confirmed receipt is
// authoritative.
func (c *client) NextTokenID(ctx context.Context) (int64, error) {
	data, err := c.capsuleABI.Pack("totalSupply")
	if err != nil {
		return 0, fmt.Errorf("failed to pack call: %w", err)
	}

	to := c.contracts.NFT
	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to call totalSupply: %w", err)
	}

	var supply *big.Int
	if err := c.capsuleABI.UnpackIntoInterface(&supply, "totalSupply", result); err != nil {
		return 0, fmt.Errorf("failed to unpack result: %w", err)
	}

	return supply.Int64() + 1, nil
}

// Mint submits a createProofCapsule transaction signed with the configured key
func (c *client) Mint(ctx context.Context, params MintParams) (string, error) {
	if c.signerKey == nil {
		return "", ErrNoSigner
	}
	if !params.ContentHash.Valid() {
		return "", fmt.Errorf("malformed content hash: %q", params.ContentHash)
	}

	data, err := c.capsuleABI.Pack("createProofCapsule",
		common.HexToHash(string(params.ContentHash)),
		params.Description,
		params.Location,
		params.IPFSHash,
		params.IsPublic,
	)
	if err != nil {
		return "", fmt.Errorf("failed to pack mint call: %w", err)
	}

	from := crypto.PubkeyToAddress(c.signerKey.PublicKey)

	nonce, err := c.eth.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	to := c.contracts.NFT
	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	chainID := new(big.Int).SetUint64(uint64(c.chain))
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.signerKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	txHash := signedTx.Hash().Hex()
	logger.InfoCtx(ctx, "submitted mint transaction",
		zap.String("tx_hash", txHash),
		zap.String("chain", c.chain.Name()))

	return txHash, nil
}

// WaitForConfirmation polls for the transaction receipt with exponential
// backoff. Confirmation time is bounded by chain finality, not by a fixed
// server deadline, so the backoff ceiling is generous.
func (c *client) WaitForConfirmation(ctx context.Context, txHash string) (*Receipt, error) {
	hash := common.HexToHash(txHash)

	var receipt *types.Receipt

	operation := func() error {
		r, err := c.eth.TransactionReceipt(ctx, hash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				// Still pending
				return fmt.Errorf("transaction %s not mined yet", txHash)
			}
			return backoff.Permanent(fmt.Errorf("failed to get receipt: %w", err))
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = c.maxElapsed
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("confirmation wait failed: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted in block %d", txHash, receipt.BlockNumber.Int64())
	}

	result := &Receipt{
		TxHash:      txHash,
		BlockNumber: receipt.BlockNumber.Int64(),
		GasUsed:     int64(receipt.GasUsed), //nolint:gosec,G115
	}

	// The mint emits Transfer(zero, owner, tokenId); the token id rides in
	// the third indexed topic
	for _, l := range receipt.Logs {
		if l.Address != c.contracts.NFT {
			continue
		}
		if len(l.Topics) == 4 && l.Topics[0] == transferEventSignature {
			tokenID := new(big.Int).SetBytes(l.Topics[3].Bytes()).Int64()
			result.TokenID = &tokenID
			break
		}
	}

	return result, nil
}

// VerifyOnChain calls verifyContentHash on the capsule contract
func (c *client) VerifyOnChain(ctx context.Context, contentHash domain.ContentHash) (bool, error) {
	if !contentHash.Valid() {
		return false, fmt.Errorf("malformed content hash: %q", contentHash)
	}

	data, err := c.capsuleABI.Pack("verifyContentHash", common.HexToHash(string(contentHash)))
	if err != nil {
		return false, fmt.Errorf("failed to pack call: %w", err)
	}

	to := c.contracts.NFT
	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return false, fmt.Errorf("failed to call verifyContentHash: %w", err)
	}

	var anchored bool
	if err := c.capsuleABI.UnpackIntoInterface(&anchored, "verifyContentHash", result); err != nil {
		return false, fmt.Errorf("failed to unpack result: %w", err)
	}

	return anchored, nil
}

// GetCapsule calls getCapsule on the capsule contract
func (c *client) GetCapsule(ctx context.Context, tokenID int64) (*CapsuleOnChain, error) {
	data, err := c.capsuleABI.Pack("getCapsule", big.NewInt(tokenID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack call: %w", err)
	}

	to := c.contracts.NFT
	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call getCapsule: %w", err)
	}

	values, err := c.capsuleABI.Unpack("getCapsule", result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(values) != 6 {
		return nil, fmt.Errorf("unexpected getCapsule result arity: %d", len(values))
	}

	contentHash, ok := values[0].([32]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected contentHash type %T", values[0])
	}
	createdAt, ok := values[5].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected createdAt type %T", values[5])
	}

	// An unminted token id decodes as the zero-value tuple
	if contentHash == ([32]byte{}) && createdAt.Sign() == 0 {
		return nil, fmt.Errorf("%w: token %d", domain.ErrCapsuleNotFound, tokenID)
	}

	return &CapsuleOnChain{
		ContentHash: domain.ContentHash(common.Hash(contentHash).Hex()),
		Description: values[1].(string),
		Location:    values[2].(string),
		IPFSHash:    values[3].(string),
		IsPublic:    values[4].(bool),
		CreatedAt:   time.Unix(createdAt.Int64(), 0).UTC(),
	}, nil
}

// GetUserAggregate calls getUserStats on the registry contract
func (c *client) GetUserAggregate(ctx context.Context, address domain.Address) (*UserAggregate, error) {
	if c.contracts.Registry == (common.Address{}) {
		return nil, fmt.Errorf("registry contract not deployed on %s", c.chain.Name())
	}
	if !address.Valid() {
		return nil, fmt.Errorf("malformed address: %q", address)
	}

	data, err := c.registryABI.Pack("getUserStats", common.HexToAddress(string(address)))
	if err != nil {
		return nil, fmt.Errorf("failed to pack call: %w", err)
	}

	to := c.contracts.Registry
	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call getUserStats: %w", err)
	}

	values, err := c.registryABI.Unpack("getUserStats", result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(values) != 5 {
		return nil, fmt.Errorf("unexpected getUserStats result arity: %d", len(values))
	}

	nums := make([]*big.Int, 5)
	for i, v := range values {
		n, ok := v.(*big.Int)
		if !ok {
			return nil, fmt.Errorf("unexpected getUserStats value type %T", v)
		}
		nums[i] = n
	}

	agg := &UserAggregate{
		TotalCapsules:   nums[0].Int64(),
		PublicCapsules:  nums[1].Int64(),
		PrivateCapsules: nums[2].Int64(),
	}
	if nums[3].Sign() > 0 {
		t := time.Unix(nums[3].Int64(), 0).UTC()
		agg.FirstCapsuleAt = &t
	}
	if nums[4].Sign() > 0 {
		t := time.Unix(nums[4].Int64(), 0).UTC()
		agg.LastCapsuleAt = &t
	}

	return agg, nil
}

// Close closes the underlying connection
func (c *client) Close() {
	c.eth.Close()
}
