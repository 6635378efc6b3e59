package schema

import (
	"time"
)

// UserStats represents the user_stats table - denormalized per-wallet counters
// recomputed asynchronously after capsule creation. Derived data: every value
// can be rebuilt from the capsules and verifications tables.
type UserStats struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the wallet these counters belong to
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:text"`
	// TotalCapsules is the number of capsules created by this wallet
	TotalCapsules int64 `gorm:"column:total_capsules;not null;default:0"`
	// PublicCapsules is the number of public capsules created by this wallet
	PublicCapsules int64 `gorm:"column:public_capsules;not null;default:0"`
	// PrivateCapsules is the number of private capsules created by this wallet
	PrivateCapsules int64 `gorm:"column:private_capsules;not null;default:0"`
	// TotalVerifications is the number of verifications against this wallet's capsules
	TotalVerifications int64 `gorm:"column:total_verifications;not null;default:0"`
	// FirstCapsuleAt is the creation time of the wallet's earliest capsule
	FirstCapsuleAt *time.Time `gorm:"column:first_capsule_at;type:timestamptz"`
	// LastCapsuleAt is the creation time of the wallet's most recent capsule
	LastCapsuleAt *time.Time `gorm:"column:last_capsule_at;type:timestamptz"`
	// UpdatedAt is the timestamp of the last recompute
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UserStats model
func (UserStats) TableName() string {
	return "user_stats"
}
