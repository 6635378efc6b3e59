package schema

import (
	"time"
)

// Capsule represents the capsules table - one row per anchored proof capsule.
// A capsule binds a content hash to an NFT token and its creator.
type Capsule struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the NFT token id assigned by the capsule contract
	TokenID int64 `gorm:"column:token_id;not null;uniqueIndex;type:bigint"`
	// WalletAddress is the creator's wallet address
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;index:idx_capsules_wallet_created,priority:1"`
	// ContentHash is the 0x-prefixed SHA-256 digest of the anchored content.
	// Globally unique: one capsule per distinct content.
	ContentHash string `gorm:"column:content_hash;not null;uniqueIndex;type:text"`
	// ChainID identifies the network the capsule was minted on
	ChainID int64 `gorm:"column:chain_id;not null;type:bigint"`
	// Description is an optional user-supplied description
	Description *string `gorm:"column:description;type:text"`
	// Location is an optional user-supplied location string
	Location *string `gorm:"column:location;type:text"`
	// IPFSHash is the CID of the pinned content, nil when only the hash was anchored
	IPFSHash *string `gorm:"column:ipfs_hash;type:text"`
	// IsPublic controls whether the capsule appears in public listings
	IsPublic bool `gorm:"column:is_public;not null;default:false"`
	// BlockNumber is the block the mint transaction was included in
	BlockNumber *int64 `gorm:"column:block_number;type:bigint"`
	// TransactionHash is the mint transaction hash
	TransactionHash *string `gorm:"column:transaction_hash;type:text"`
	// GasUsed is the gas consumed by the mint transaction
	GasUsed *int64 `gorm:"column:gas_used;type:bigint"`
	// CreatedAt is the timestamp when this record was persisted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_capsules_wallet_created,priority:2,sort:desc"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Verifications []Verification   `gorm:"foreignKey:CapsuleID;constraint:OnDelete:CASCADE"`
	Metadata      *ContentMetadata `gorm:"foreignKey:CapsuleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Capsule model
func (Capsule) TableName() string {
	return "capsules"
}
