package dto

import (
	"time"

	"github.com/proofcapsule/pc-anchor/internal/ledger"
	"github.com/proofcapsule/pc-anchor/internal/store"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
	"github.com/proofcapsule/pc-anchor/internal/verify"
)

// CapsuleResponse is the API representation of a capsule
type CapsuleResponse struct {
	ID              int64             `json:"id"`
	TokenID         int64             `json:"token_id"`
	WalletAddress   string            `json:"wallet_address"`
	ContentHash     string            `json:"content_hash"`
	ChainID         int64             `json:"chain_id"`
	Description     *string           `json:"description,omitempty"`
	Location        *string           `json:"location,omitempty"`
	IPFSHash        *string           `json:"ipfs_hash,omitempty"`
	GatewayURLs     []string          `json:"gateway_urls,omitempty"`
	IsPublic        bool              `json:"is_public"`
	BlockNumber     *int64            `json:"block_number,omitempty"`
	TransactionHash *string           `json:"transaction_hash,omitempty"`
	GasUsed         *int64            `json:"gas_used,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Metadata        *MetadataResponse `json:"metadata,omitempty"`
}

// MetadataResponse is the API representation of a capsule's content metadata
type MetadataResponse struct {
	ContentType *string `json:"content_type,omitempty"`
	FileSize    *int64  `json:"file_size,omitempty"`
	Dimensions  *string `json:"dimensions,omitempty"`
	Duration    *int64  `json:"duration,omitempty"`
}

// MapCapsuleToDTO converts a capsule row to its API representation
func MapCapsuleToDTO(capsule *schema.Capsule, gatewayURLs []string) *CapsuleResponse {
	response := &CapsuleResponse{
		ID:              capsule.ID,
		TokenID:         capsule.TokenID,
		WalletAddress:   capsule.WalletAddress,
		ContentHash:     capsule.ContentHash,
		ChainID:         capsule.ChainID,
		Description:     capsule.Description,
		Location:        capsule.Location,
		IPFSHash:        capsule.IPFSHash,
		GatewayURLs:     gatewayURLs,
		IsPublic:        capsule.IsPublic,
		BlockNumber:     capsule.BlockNumber,
		TransactionHash: capsule.TransactionHash,
		GasUsed:         capsule.GasUsed,
		CreatedAt:       capsule.CreatedAt,
		UpdatedAt:       capsule.UpdatedAt,
	}
	if capsule.Metadata != nil {
		response.Metadata = &MetadataResponse{
			ContentType: capsule.Metadata.ContentType,
			FileSize:    capsule.Metadata.FileSize,
			Dimensions:  capsule.Metadata.Dimensions,
			Duration:    capsule.Metadata.Duration,
		}
	}
	return response
}

// CapsuleListResponse is a page of capsules with pagination info
type CapsuleListResponse struct {
	Capsules []CapsuleResponse `json:"capsules"`
	// Offset is the offset of the next page, nil when this is the last page
	Offset *uint64 `json:"offset,omitempty"`
	Total  uint64  `json:"total"`
}

// VerificationResponse is the API representation of a verification record
type VerificationResponse struct {
	ID                 int64     `json:"id"`
	CapsuleID          int64     `json:"capsule_id"`
	VerifierAddress    string    `json:"verifier_address"`
	VerificationMethod string    `json:"verification_method"`
	Notes              *string   `json:"notes,omitempty"`
	VerifiedAt         time.Time `json:"verified_at"`
}

// MapVerificationToDTO converts a verification row to its API representation
func MapVerificationToDTO(v *schema.Verification) *VerificationResponse {
	return &VerificationResponse{
		ID:                 v.ID,
		CapsuleID:          v.CapsuleID,
		VerifierAddress:    v.VerifierAddress,
		VerificationMethod: string(v.VerificationMethod),
		Notes:              v.Notes,
		VerifiedAt:         v.VerifiedAt,
	}
}

// VerificationListResponse is a page of verification records
type VerificationListResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	Offset        *uint64                `json:"offset,omitempty"`
	Total         uint64                 `json:"total"`
}

// VerifyCapsuleResponse reports the outcome of a verification attempt.
// Found false means no capsule anchors the hash.
type VerifyCapsuleResponse struct {
	Found       bool   `json:"found"`
	ContentHash string `json:"content_hash"`
	// OnChain reports the contract's answer, present only when the caller
	// asked for the on-chain cross-check
	OnChain      *bool                  `json:"on_chain,omitempty"`
	Capsule      *verify.CapsuleSummary `json:"capsule,omitempty"`
	Verification *VerificationResponse  `json:"verification,omitempty"`
}

// GlobalAnalyticsResponse holds platform-wide counters for one day
type GlobalAnalyticsResponse struct {
	Date               string `json:"date"`
	TotalCapsules      int64  `json:"total_capsules"`
	TotalUsers         int64  `json:"total_users"`
	TotalVerifications int64  `json:"total_verifications"`
	NewCapsules        int64  `json:"new_capsules"`
	NewUsers           int64  `json:"new_users"`
}

// UserStatsResponse holds the per-wallet counters. A wallet with no
// recorded activity gets a zero-valued object, never a 404.
type UserStatsResponse struct {
	WalletAddress      string     `json:"wallet_address"`
	TotalCapsules      int64      `json:"total_capsules"`
	PublicCapsules     int64      `json:"public_capsules"`
	PrivateCapsules    int64      `json:"private_capsules"`
	TotalVerifications int64      `json:"total_verifications"`
	FirstCapsuleAt     *time.Time `json:"first_capsule_at,omitempty"`
	LastCapsuleAt      *time.Time `json:"last_capsule_at,omitempty"`
	// OnChain carries the registry contract's aggregate when requested
	OnChain *OnChainStatsResponse `json:"on_chain,omitempty"`
}

// OnChainStatsResponse mirrors the registry contract's per-user summary
type OnChainStatsResponse struct {
	TotalCapsules   int64      `json:"total_capsules"`
	PublicCapsules  int64      `json:"public_capsules"`
	PrivateCapsules int64      `json:"private_capsules"`
	FirstCapsuleAt  *time.Time `json:"first_capsule_at,omitempty"`
	LastCapsuleAt   *time.Time `json:"last_capsule_at,omitempty"`
}

// MapUserAggregateToDTO converts the registry aggregate to its API representation
func MapUserAggregateToDTO(aggregate *ledger.UserAggregate) *OnChainStatsResponse {
	return &OnChainStatsResponse{
		TotalCapsules:   aggregate.TotalCapsules,
		PublicCapsules:  aggregate.PublicCapsules,
		PrivateCapsules: aggregate.PrivateCapsules,
		FirstCapsuleAt:  aggregate.FirstCapsuleAt,
		LastCapsuleAt:   aggregate.LastCapsuleAt,
	}
}

// DeleteUserResponse reports the result of a cascading account deletion
type DeleteUserResponse struct {
	WalletAddress   string `json:"wallet_address"`
	DeletedCapsules int64  `json:"deleted_capsules"`
}

// UserExportResponse is the full data export document for one wallet
type UserExportResponse = store.UserExport
