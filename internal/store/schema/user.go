package schema

import (
	"time"
)

// User represents the users table - one row per wallet address that has created a capsule
type User struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the user's EVM address, checksummed or lowercase as received
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:text"`
	// Username is an optional display name
	Username *string `gorm:"column:username;type:text"`
	// Email is an optional contact address
	Email *string `gorm:"column:email;type:text"`
	// Avatar is an IPFS hash or URL pointing to the user's avatar
	Avatar *string `gorm:"column:avatar;type:text"`
	// Bio is an optional free-form profile text
	Bio *string `gorm:"column:bio;type:text"`
	// CreatedAt is the timestamp when this user was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Capsules, stats and verifications are keyed by wallet address rather
	// than a foreign key to this table, so a capsule row can be recorded
	// before its creator's profile exists
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
