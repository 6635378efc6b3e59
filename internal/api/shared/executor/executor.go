package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/api/shared/constants"
	"github.com/proofcapsule/pc-anchor/internal/api/shared/dto"
	apierrors "github.com/proofcapsule/pc-anchor/internal/api/shared/errors"
	"github.com/proofcapsule/pc-anchor/internal/domain"
	"github.com/proofcapsule/pc-anchor/internal/ledger"
	"github.com/proofcapsule/pc-anchor/internal/logger"
	"github.com/proofcapsule/pc-anchor/internal/pinning"
	"github.com/proofcapsule/pc-anchor/internal/pipeline"
	"github.com/proofcapsule/pc-anchor/internal/store"
	"github.com/proofcapsule/pc-anchor/internal/store/schema"
	"github.com/proofcapsule/pc-anchor/internal/verify"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateCapsule anchors a capsule through the pipeline
	CreateCapsule(ctx context.Context, req dto.CreateCapsuleRequest) (*dto.CapsuleResponse, error)

	// GetCapsule retrieves a single capsule by its internal id, nil when absent
	GetCapsule(ctx context.Context, id int64) (*dto.CapsuleResponse, error)

	// ListCapsules retrieves capsules newest-first with optional filters
	ListCapsules(ctx context.Context, wallet *string, isPublic *bool, limit *int, offset *uint64) (*dto.CapsuleListResponse, error)

	// UpdateCapsule applies the mutable fields to a capsule, nil when absent
	UpdateCapsule(ctx context.Context, id int64, req dto.UpdateCapsuleRequest) (*dto.CapsuleResponse, error)

	// VerifyCapsule checks content against the anchored capsules
	VerifyCapsule(ctx context.Context, req dto.VerifyCapsuleRequest) (*dto.VerifyCapsuleResponse, error)

	// ListVerifications retrieves verification records oldest-first
	ListVerifications(ctx context.Context, capsuleID *int64, verifier *string, limit *int, offset *uint64) (*dto.VerificationListResponse, error)

	// GetGlobalAnalytics returns the platform-wide counters for today
	GetGlobalAnalytics(ctx context.Context) (*dto.GlobalAnalyticsResponse, error)

	// GetUserAnalytics returns the per-wallet counters, zero-valued when the
	// wallet has no recorded activity
	GetUserAnalytics(ctx context.Context, wallet string, includeOnChain bool) (*dto.UserStatsResponse, error)

	// ExportUser assembles the full export document for a wallet, nil when absent
	ExportUser(ctx context.Context, wallet string) (*dto.UserExportResponse, error)

	// DeleteUser removes the wallet's account and everything hanging off it
	DeleteUser(ctx context.Context, wallet string) (*dto.DeleteUserResponse, error)
}

type executor struct {
	store        store.Store
	orchestrator pipeline.Orchestrator
	verifier     verify.Service
	ledger       ledger.Client
	clock        adapter.Clock
}

// NewExecutor creates the shared API executor
func NewExecutor(
	st store.Store,
	orchestrator pipeline.Orchestrator,
	verifier verify.Service,
	lc ledger.Client,
	clock adapter.Clock,
) Executor {
	return &executor{
		store:        st,
		orchestrator: orchestrator,
		verifier:     verifier,
		ledger:       lc,
		clock:        clock,
	}
}

func (e *executor) CreateCapsule(ctx context.Context, req dto.CreateCapsuleRequest) (*dto.CapsuleResponse, error) {
	content, err := req.DecodeContent()
	if err != nil {
		return nil, apierrors.NewValidationError("content must be valid base64")
	}

	result, err := e.orchestrator.CreateCapsule(ctx, pipeline.CreateCapsuleRequest{
		WalletAddress:     req.WalletAddress,
		Content:           content,
		Filename:          req.Filename,
		ContentHash:       req.ContentHash,
		Description:       req.Description,
		Location:          req.Location,
		IsPublic:          req.IsPublic,
		ChainID:           req.ChainID,
		TokenID:           req.TokenID,
		TransactionHash:   req.TransactionHash,
		BlockNumber:       req.BlockNumber,
		GasUsed:           req.GasUsed,
		IPFSHash:          req.IPFSHash,
		AwaitConfirmation: req.AwaitConfirmation,
	})
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrInvalidRequest):
			return nil, apierrors.NewValidationError(err.Error())
		case errors.Is(err, store.ErrDuplicateContentHash):
			return nil, apierrors.NewConflictError("Content hash is already anchored", err.Error())
		default:
			return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to create capsule: %v", err))
		}
	}

	return dto.MapCapsuleToDTO(result.Capsule, result.GatewayURLs), nil
}

func (e *executor) GetCapsule(ctx context.Context, id int64) (*dto.CapsuleResponse, error) {
	capsule, err := e.store.GetCapsuleByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get capsule: %v", err))
	}
	if capsule == nil {
		return nil, nil
	}

	if capsule.Metadata == nil {
		metadata, err := e.store.GetContentMetadata(ctx, capsule.ID)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get content metadata: %v", err))
		}
		capsule.Metadata = metadata
	}

	return dto.MapCapsuleToDTO(capsule, gatewayURLs(capsule)), nil
}

func (e *executor) ListCapsules(ctx context.Context, wallet *string, isPublic *bool, limit *int, offset *uint64) (*dto.CapsuleListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_CAPSULES_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	capsules, total, err := e.store.ListCapsules(ctx, store.CapsuleFilter{
		WalletAddress: wallet,
		IsPublic:      isPublic,
		Limit:         *limit,
		Offset:        *offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list capsules: %v", err))
	}

	capsuleDTOs := make([]dto.CapsuleResponse, len(capsules))
	for i := range capsules {
		capsuleDTOs[i] = *dto.MapCapsuleToDTO(&capsules[i], gatewayURLs(&capsules[i]))
	}

	var nextOffset *uint64
	if *offset+uint64(len(capsules)) < total {
		offsetVal := *offset + uint64(len(capsules))
		nextOffset = &offsetVal
	}

	return &dto.CapsuleListResponse{
		Capsules: capsuleDTOs,
		Offset:   nextOffset,
		Total:    total,
	}, nil
}

func (e *executor) UpdateCapsule(ctx context.Context, id int64, req dto.UpdateCapsuleRequest) (*dto.CapsuleResponse, error) {
	capsule, err := e.store.UpdateCapsule(ctx, id, store.UpdateCapsuleInput{
		Description: req.Description,
		Location:    req.Location,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update capsule: %v", err))
	}
	if capsule == nil {
		return nil, nil
	}

	return dto.MapCapsuleToDTO(capsule, gatewayURLs(capsule)), nil
}

func (e *executor) VerifyCapsule(ctx context.Context, req dto.VerifyCapsuleRequest) (*dto.VerifyCapsuleResponse, error) {
	verifyReq := verify.VerifyRequest{
		ContentHash:     req.ContentHash,
		VerifierAddress: req.VerifierAddress,
		Method:          domain.VerificationMethod(req.Method),
		Notes:           req.Notes,
	}
	if req.Content != "" {
		content, err := req.DecodeContent()
		if err != nil {
			return nil, apierrors.NewValidationError("content must be valid base64")
		}
		verifyReq.Content = bytes.NewReader(content)
	}

	result, err := e.verifier.Verify(ctx, verifyReq)
	if err != nil {
		if errors.Is(err, verify.ErrInvalidRequest) {
			return nil, apierrors.NewValidationError(err.Error())
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to verify: %v", err))
	}

	response := &dto.VerifyCapsuleResponse{
		Found:       result.Found,
		ContentHash: result.ContentHash,
		Capsule:     result.Capsule,
	}
	if result.Verification != nil {
		response.Verification = dto.MapVerificationToDTO(result.Verification)
	}

	// The contract cross-check is advisory; a chain hiccup degrades it to
	// absent rather than failing the whole verification
	if req.CheckOnChain {
		onChain, err := e.ledger.VerifyOnChain(ctx, domain.ContentHash(result.ContentHash))
		if err != nil {
			logger.WarnCtx(ctx, "on-chain verification cross-check failed",
				zap.Error(err),
				zap.String("content_hash", result.ContentHash))
		} else {
			response.OnChain = &onChain
		}
	}

	return response, nil
}

func (e *executor) ListVerifications(ctx context.Context, capsuleID *int64, verifier *string, limit *int, offset *uint64) (*dto.VerificationListResponse, error) {
	if limit == nil {
		defaultLimit := constants.DEFAULT_VERIFICATIONS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	verifications, total, err := e.store.ListVerifications(ctx, store.VerificationFilter{
		CapsuleID:       capsuleID,
		VerifierAddress: verifier,
		Limit:           *limit,
		Offset:          *offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list verifications: %v", err))
	}

	verificationDTOs := make([]dto.VerificationResponse, len(verifications))
	for i := range verifications {
		verificationDTOs[i] = *dto.MapVerificationToDTO(&verifications[i])
	}

	var nextOffset *uint64
	if *offset+uint64(len(verifications)) < total {
		offsetVal := *offset + uint64(len(verifications))
		nextOffset = &offsetVal
	}

	return &dto.VerificationListResponse{
		Verifications: verificationDTOs,
		Offset:        nextOffset,
		Total:         total,
	}, nil
}

func (e *executor) GetGlobalAnalytics(ctx context.Context) (*dto.GlobalAnalyticsResponse, error) {
	day := e.clock.Now().UTC()
	date := day.Format("2006-01-02")

	// Prefer the sweeper's snapshot; fall back to a live computation when
	// today's row has not been written yet
	row, err := e.store.GetDailyAnalytics(ctx, date)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get analytics: %v", err))
	}
	if row != nil {
		return &dto.GlobalAnalyticsResponse{
			Date:               row.Date,
			TotalCapsules:      row.TotalCapsules,
			TotalUsers:         row.TotalUsers,
			TotalVerifications: row.TotalVerifications,
			NewCapsules:        row.NewCapsules,
			NewUsers:           row.NewUsers,
		}, nil
	}

	counts, err := e.store.GetGlobalCounts(ctx, day)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to compute analytics: %v", err))
	}

	return &dto.GlobalAnalyticsResponse{
		Date:               date,
		TotalCapsules:      counts.TotalCapsules,
		TotalUsers:         counts.TotalUsers,
		TotalVerifications: counts.TotalVerifications,
		NewCapsules:        counts.NewCapsulesToday,
		NewUsers:           counts.NewUsersToday,
	}, nil
}

func (e *executor) GetUserAnalytics(ctx context.Context, wallet string, includeOnChain bool) (*dto.UserStatsResponse, error) {
	stats, err := e.store.GetUserStats(ctx, wallet)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user stats: %v", err))
	}
	if stats == nil {
		// A wallet with no recorded activity is a zero-valued object
		stats = &schema.UserStats{WalletAddress: wallet}
	}

	response := &dto.UserStatsResponse{
		WalletAddress:      stats.WalletAddress,
		TotalCapsules:      stats.TotalCapsules,
		PublicCapsules:     stats.PublicCapsules,
		PrivateCapsules:    stats.PrivateCapsules,
		TotalVerifications: stats.TotalVerifications,
		FirstCapsuleAt:     stats.FirstCapsuleAt,
		LastCapsuleAt:      stats.LastCapsuleAt,
	}

	if includeOnChain {
		aggregate, err := e.ledger.GetUserAggregate(ctx, domain.Address(wallet))
		if err != nil {
			logger.WarnCtx(ctx, "registry aggregate lookup failed",
				zap.Error(err),
				zap.String("wallet_address", wallet))
		} else {
			response.OnChain = dto.MapUserAggregateToDTO(aggregate)
		}
	}

	return response, nil
}

func (e *executor) ExportUser(ctx context.Context, wallet string) (*dto.UserExportResponse, error) {
	export, err := e.store.ExportUser(ctx, wallet)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to export user: %v", err))
	}
	return export, nil
}

func (e *executor) DeleteUser(ctx context.Context, wallet string) (*dto.DeleteUserResponse, error) {
	deleted, err := e.store.DeleteUser(ctx, wallet)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete user: %v", err))
	}

	return &dto.DeleteUserResponse{
		WalletAddress:   wallet,
		DeletedCapsules: deleted,
	}, nil
}

func gatewayURLs(capsule *schema.Capsule) []string {
	if capsule.IPFSHash == nil {
		return nil
	}
	return pinning.GatewayURLs(*capsule.IPFSHash)
}
