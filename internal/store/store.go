package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"

	"github.com/proofcapsule/pc-anchor/internal/domain"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
)

// ErrDuplicateContentHash is returned when a capsule with the same content
// hash already exists. The unique index on capsules.content_hash is the
// authoritative guard; callers doing an advisory pre-check still have to
// handle this.
var ErrDuplicateContentHash = errors.New("capsule with this content hash already exists")

// CreateCapsuleInput holds the data for persisting a confirmed capsule
type CreateCapsuleInput struct {
	TokenID         int64
	WalletAddress   string
	ContentHash     string
	ChainID         int64
	Description     *string
	Location        *string
	IPFSHash        *string
	IsPublic        bool
	BlockNumber     *int64
	TransactionHash *string
	GasUsed         *int64
	// Metadata is written alongside the capsule when content bytes were submitted
	Metadata *ContentMetadataInput
}

// ContentMetadataInput holds descriptive attributes of the anchored content
type ContentMetadataInput struct {
	ContentType  *string
	FileSize     *int64
	Dimensions   *string
	Duration     *int64
	Tags         datatypes.JSON
	CustomFields datatypes.JSON
}

// UpdateCapsuleInput holds the mutable capsule fields. Nil fields are left unchanged.
type UpdateCapsuleInput struct {
	Description *string
	Location    *string
	IsPublic    *bool
}

// CapsuleFilter selects capsules for listing
type CapsuleFilter struct {
	WalletAddress *string
	IsPublic      *bool
	Limit         int
	Offset        uint64
}

// CreateVerificationInput holds the data for one verification record
type CreateVerificationInput struct {
	CapsuleID          int64
	VerifierAddress    string
	VerificationMethod domain.VerificationMethod
	Notes              *string
}

// VerificationFilter selects verification records for listing
type VerificationFilter struct {
	CapsuleID       *int64
	VerifierAddress *string
	Limit           int
	Offset          uint64
}

// GlobalCounts holds platform-wide totals and today's deltas
type GlobalCounts struct {
	TotalCapsules      int64
	TotalUsers         int64
	TotalVerifications int64
	NewCapsulesToday   int64
	NewUsersToday      int64
}

// UserExport is the full data export document for one wallet
type UserExport struct {
	User          *schema.User           `json:"user"`
	Capsules      []schema.Capsule       `json:"capsules"`
	Verifications []schema.Verification  `json:"verifications"`
	Stats         *schema.UserStats      `json:"stats"`
	ExportedAt    time.Time              `json:"exported_at"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateCapsule persists a capsule and its optional content metadata.
	// Returns ErrDuplicateContentHash when the content hash is already anchored.
	CreateCapsule(ctx context.Context, input CreateCapsuleInput) (*schema.Capsule, error)
	// GetCapsuleByID retrieves a capsule by its internal ID, nil when absent
	GetCapsuleByID(ctx context.Context, id int64) (*schema.Capsule, error)
	// GetCapsuleByContentHash retrieves a capsule by content hash, nil when absent
	GetCapsuleByContentHash(ctx context.Context, contentHash string) (*schema.Capsule, error)
	// ListCapsules retrieves capsules newest-first with the total match count
	ListCapsules(ctx context.Context, filter CapsuleFilter) ([]schema.Capsule, uint64, error)
	// UpdateCapsule applies the non-nil fields of input to a capsule
	UpdateCapsule(ctx context.Context, id int64, input UpdateCapsuleInput) (*schema.Capsule, error)
	// GetContentMetadata retrieves the content metadata for a capsule, nil when absent
	GetContentMetadata(ctx context.Context, capsuleID int64) (*schema.ContentMetadata, error)

	// UpsertUser inserts a user row for the wallet if one does not exist yet
	UpsertUser(ctx context.Context, walletAddress string) (*schema.User, error)
	// GetUserByWallet retrieves a user by wallet address, nil when absent
	GetUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error)

	// CreateVerification appends one verification record
	CreateVerification(ctx context.Context, input CreateVerificationInput) (*schema.Verification, error)
	// ListVerifications retrieves verification records oldest-first with the total match count
	ListVerifications(ctx context.Context, filter VerificationFilter) ([]schema.Verification, uint64, error)

	// RecomputeUserStats rebuilds the denormalized counters for a wallet from
	// the capsules and verifications tables. Idempotent.
	RecomputeUserStats(ctx context.Context, walletAddress string) error
	// GetUserStats retrieves the stats row for a wallet, nil when absent
	GetUserStats(ctx context.Context, walletAddress string) (*schema.UserStats, error)

	// GetGlobalCounts computes platform-wide totals and deltas for the given day
	GetGlobalCounts(ctx context.Context, day time.Time) (*GlobalCounts, error)
	// UpsertDailyAnalytics writes the analytics row for its date, replacing any existing one
	UpsertDailyAnalytics(ctx context.Context, row schema.DailyAnalytics) error
	// GetDailyAnalytics retrieves the analytics row for a YYYY-MM-DD date, nil when absent
	GetDailyAnalytics(ctx context.Context, date string) (*schema.DailyAnalytics, error)

	// ExportUser assembles the full export document for a wallet, nil when the user is absent
	ExportUser(ctx context.Context, walletAddress string) (*UserExport, error)
	// DeleteUser removes the user and everything hanging off it in one transaction.
	// Returns the number of capsules deleted.
	DeleteUser(ctx context.Context, walletAddress string) (int64, error)
}
