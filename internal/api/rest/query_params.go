package rest

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/proofcapsule/pc-anchor/internal/api/shared/constants"
	"github.com/proofcapsule/pc-anchor/internal/domain"
)

var (
	errNegativeLimit  = errors.New("limit must not be negative")
	errWalletRequired = errors.New("wallet is required when type=user")
)

func errInvalidWallet(wallet string) error {
	return fmt.Errorf("invalid wallet address: %s", wallet)
}

func errUnknownAnalyticsType(analyticsType string) error {
	return fmt.Errorf("unknown analytics type: %s", analyticsType)
}

// ListCapsulesQueryParams holds query parameters for GET /capsules
type ListCapsulesQueryParams struct {
	Wallet string `form:"wallet"`
	Public *bool  `form:"public"`
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// Validate validates the query parameters
func (p *ListCapsulesQueryParams) Validate() error {
	if p.Wallet != "" && !domain.Address(p.Wallet).Valid() {
		return errInvalidWallet(p.Wallet)
	}
	if p.Limit < 0 {
		return errNegativeLimit
	}
	return nil
}

// ListVerificationsQueryParams holds query parameters for GET /verify
type ListVerificationsQueryParams struct {
	CapsuleID *int64 `form:"capsule_id"`
	Verifier  string `form:"verifier"`
	Limit     int    `form:"limit,default=20"`
	Offset    uint64 `form:"offset,default=0"`
}

// Validate validates the query parameters
func (p *ListVerificationsQueryParams) Validate() error {
	if p.Verifier != "" && !domain.Address(p.Verifier).Valid() {
		return errInvalidWallet(p.Verifier)
	}
	if p.Limit < 0 {
		return errNegativeLimit
	}
	return nil
}

// AnalyticsQueryParams holds query parameters for GET /analytics
type AnalyticsQueryParams struct {
	// Type selects the scope: "global" (default) or "user"
	Type   string `form:"type,default=global"`
	Wallet string `form:"wallet"`
	// OnChain additionally fetches the registry contract's per-user aggregate
	OnChain bool `form:"on_chain"`
}

// Validate validates the query parameters
func (p *AnalyticsQueryParams) Validate() error {
	switch p.Type {
	case "global":
	case "user":
		if p.Wallet == "" {
			return errWalletRequired
		}
		if !domain.Address(p.Wallet).Valid() {
			return errInvalidWallet(p.Wallet)
		}
	default:
		return errUnknownAnalyticsType(p.Type)
	}
	return nil
}

// ParseListCapsulesQuery parses query parameters for GET /capsules
func ParseListCapsulesQuery(c *gin.Context) (*ListCapsulesQueryParams, error) {
	var params ListCapsulesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// ParseListVerificationsQuery parses query parameters for GET /verify
func ParseListVerificationsQuery(c *gin.Context) (*ListVerificationsQueryParams, error) {
	var params ListVerificationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// ParseAnalyticsQuery parses query parameters for GET /analytics
func ParseAnalyticsQuery(c *gin.Context) (*AnalyticsQueryParams, error) {
	var params AnalyticsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}
