package schema

import (
	"time"

	"github.com/proofcapsule/pc-anchor/internal/domain"
)

// Verification represents the verifications table - append-only audit trail of
// successful content checks. A row is written only when the presented hash
// matched an existing capsule.
type Verification struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CapsuleID references the capsule that was verified
	CapsuleID int64 `gorm:"column:capsule_id;not null;index"`
	// VerifierAddress is the wallet that performed the verification
	VerifierAddress string `gorm:"column:verifier_address;not null;type:text;index"`
	// VerificationMethod records how the check was performed (hash_match, manual)
	VerificationMethod domain.VerificationMethod `gorm:"column:verification_method;not null;type:text"`
	// Notes is optional free-form context supplied by the verifier
	Notes *string `gorm:"column:notes;type:text"`
	// VerifiedAt is the timestamp of the verification
	VerifiedAt time.Time `gorm:"column:verified_at;not null;default:now();type:timestamptz"`

	// Associations
	Capsule Capsule `gorm:"foreignKey:CapsuleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Verification model
func (Verification) TableName() string {
	return "verifications"
}
