package dto

import (
	"encoding/base64"
	"fmt"

	"github.com/proofcapsule/pc-anchor/internal/api/shared/constants"
	apierrors "github.com/proofcapsule/pc-anchor/internal/api/shared/errors"
	"github.com/proofcapsule/pc-anchor/internal/domain"
)

// CreateCapsuleRequest represents the request body for anchoring a capsule.
// Either content (base64) or content_hash must be supplied; token_id and
// transaction provenance are required when the mint already happened
// client-side.
type CreateCapsuleRequest struct {
	WalletAddress string  `json:"wallet_address"`
	Content       string  `json:"content,omitempty"`
	Filename      string  `json:"filename,omitempty"`
	ContentHash   string  `json:"content_hash,omitempty"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	IsPublic      bool    `json:"is_public"`
	ChainID       int64   `json:"chain_id,omitempty"`

	TokenID           *int64  `json:"token_id,omitempty"`
	TransactionHash   *string `json:"transaction_hash,omitempty"`
	BlockNumber       *int64  `json:"block_number,omitempty"`
	GasUsed           *int64  `json:"gas_used,omitempty"`
	IPFSHash          *string `json:"ipfs_hash,omitempty"`
	AwaitConfirmation bool    `json:"await_confirmation,omitempty"`
}

// Validate validates the request body
func (r *CreateCapsuleRequest) Validate() error {
	// Validate: wallet address must be provided and valid
	if r.WalletAddress == "" {
		return apierrors.NewValidationError("wallet_address is required")
	}
	if !domain.Address(r.WalletAddress).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid wallet address: %s", r.WalletAddress))
	}

	// Validate: either content or content hash must be provided
	if r.Content == "" && r.ContentHash == "" {
		return apierrors.NewValidationError("either content or content_hash is required")
	}

	if r.ContentHash != "" && !domain.ContentHash(r.ContentHash).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid content hash: %s", r.ContentHash))
	}

	// Validate: inline content must decode and fit the size cap
	if r.Content != "" {
		decoded, err := r.DecodeContent()
		if err != nil {
			return apierrors.NewValidationError("content must be valid base64")
		}
		if len(decoded) == 0 {
			return apierrors.NewValidationError("content must not be empty")
		}
		if len(decoded) > constants.MAX_CONTENT_BYTES {
			return apierrors.NewValidationError(fmt.Sprintf("content exceeds the maximum of %d bytes", constants.MAX_CONTENT_BYTES))
		}
	}

	if r.Description != nil && len(*r.Description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description exceeds %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	if r.Location != nil && len(*r.Location) > constants.MAX_LOCATION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("location exceeds %d characters", constants.MAX_LOCATION_LENGTH))
	}

	return nil
}

// DecodeContent decodes the base64 content payload
func (r *CreateCapsuleRequest) DecodeContent() ([]byte, error) {
	if r.Content == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(r.Content)
}

// UpdateCapsuleRequest represents the request body for updating mutable
// capsule fields. Absent fields are left unchanged.
type UpdateCapsuleRequest struct {
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// Validate validates the request body
func (r *UpdateCapsuleRequest) Validate() error {
	// Validate: at least one field must be present
	if r.Description == nil && r.Location == nil && r.IsPublic == nil {
		return apierrors.NewValidationError("at least one of description, location or is_public is required")
	}

	if r.Description != nil && len(*r.Description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description exceeds %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	if r.Location != nil && len(*r.Location) > constants.MAX_LOCATION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("location exceeds %d characters", constants.MAX_LOCATION_LENGTH))
	}

	return nil
}

// VerifyCapsuleRequest represents the request body for verifying content
// against the anchored capsules
type VerifyCapsuleRequest struct {
	ContentHash     string  `json:"content_hash,omitempty"`
	Content         string  `json:"content,omitempty"`
	VerifierAddress string  `json:"verifier_address"`
	Method          string  `json:"method,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	// CheckOnChain additionally asks the capsule contract whether the hash
	// is anchored, regardless of the database outcome
	CheckOnChain bool `json:"check_on_chain,omitempty"`
}

// Validate validates the request body
func (r *VerifyCapsuleRequest) Validate() error {
	if r.ContentHash == "" && r.Content == "" {
		return apierrors.NewValidationError("either content or content_hash is required")
	}
	if r.ContentHash != "" && !domain.ContentHash(r.ContentHash).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid content hash: %s", r.ContentHash))
	}
	if r.VerifierAddress == "" {
		return apierrors.NewValidationError("verifier_address is required")
	}
	if !domain.Address(r.VerifierAddress).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid verifier address: %s", r.VerifierAddress))
	}
	if r.Method != "" &&
		r.Method != string(domain.MethodHashMatch) &&
		r.Method != string(domain.MethodManual) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported verification method: %s", r.Method))
	}
	if r.Notes != nil && len(*r.Notes) > constants.MAX_NOTES_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("notes exceed %d characters", constants.MAX_NOTES_LENGTH))
	}

	return nil
}

// DecodeContent decodes the base64 content payload
func (r *VerifyCapsuleRequest) DecodeContent() ([]byte, error) {
	if r.Content == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(r.Content)
}

// DeleteUserRequest represents the request body for account deletion
type DeleteUserRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// Validate validates the request body
func (r *DeleteUserRequest) Validate() error {
	if r.WalletAddress == "" {
		return apierrors.NewValidationError("wallet_address is required")
	}
	if !domain.Address(r.WalletAddress).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid wallet address: %s", r.WalletAddress))
	}
	return nil
}
