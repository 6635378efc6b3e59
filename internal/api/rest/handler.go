package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/proofcapsule/pc-anchor/internal/api/shared/dto"
	"github.com/proofcapsule/pc-anchor/internal/api/shared/executor"
	"github.com/proofcapsule/pc-anchor/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateCapsule anchors a capsule
	// POST /api/v1/capsules
	CreateCapsule(c *gin.Context)

	// ListCapsules retrieves capsules with optional filters
	// GET /api/v1/capsules?wallet=<address>&public=<bool>&limit=<limit>&offset=<offset>
	ListCapsules(c *gin.Context)

	// GetCapsule retrieves a single capsule by its internal id
	// GET /api/v1/capsules/:id
	GetCapsule(c *gin.Context)

	// UpdateCapsule updates the mutable fields of a capsule
	// PATCH /api/v1/capsules/:id
	UpdateCapsule(c *gin.Context)

	// VerifyCapsule checks content against the anchored capsules
	// POST /api/v1/verify
	VerifyCapsule(c *gin.Context)

	// ListVerifications retrieves the verification history
	// GET /api/v1/verify?capsule_id=<id>&verifier=<address>&limit=<limit>&offset=<offset>
	ListVerifications(c *gin.Context)

	// GetAnalytics retrieves global counters or per-user stats
	// GET /api/v1/analytics?type=<global|user>&wallet=<address>&on_chain=<bool>
	GetAnalytics(c *gin.Context)

	// ExportUser assembles the full data export for a wallet
	// GET /api/v1/users/export?wallet=<address>
	ExportUser(c *gin.Context)

	// DeleteUser removes an account and everything hanging off it
	// DELETE /api/v1/users
	DeleteUser(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// CreateCapsule anchors a capsule through the pipeline
func (h *handler) CreateCapsule(c *gin.Context) {
	var req dto.CreateCapsuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate request body
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.CreateCapsule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, response)
}

// ListCapsules retrieves capsules with optional filters
func (h *handler) ListCapsules(c *gin.Context) {
	queryParams, err := ParseListCapsulesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var wallet *string
	if queryParams.Wallet != "" {
		wallet = &queryParams.Wallet
	}
	limit := &queryParams.Limit
	offset := &queryParams.Offset

	response, err := h.executor.ListCapsules(
		c.Request.Context(),
		wallet,
		queryParams.Public,
		limit,
		offset,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, response)
}

// GetCapsule retrieves a single capsule by its internal id
func (h *handler) GetCapsule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid capsule id")
		return
	}

	response, err := h.executor.GetCapsule(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if response == nil {
		respondNotFound(c, "Capsule not found")
		return
	}

	respondData(c, http.StatusOK, response)
}

// UpdateCapsule updates the mutable fields of a capsule
func (h *handler) UpdateCapsule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid capsule id")
		return
	}

	var req dto.UpdateCapsuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.UpdateCapsule(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	if response == nil {
		respondNotFound(c, "Capsule not found")
		return
	}

	respondData(c, http.StatusOK, response)
}

// VerifyCapsule checks content against the anchored capsules
func (h *handler) VerifyCapsule(c *gin.Context) {
	var req dto.VerifyCapsuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.VerifyCapsule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	// A miss is a normal outcome carried on a 404 so callers can tell the
	// two cases apart without parsing the body
	if !response.Found {
		respondData(c, http.StatusNotFound, response)
		return
	}

	respondData(c, http.StatusCreated, response)
}

// ListVerifications retrieves the verification history
func (h *handler) ListVerifications(c *gin.Context) {
	queryParams, err := ParseListVerificationsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var verifier *string
	if queryParams.Verifier != "" {
		verifier = &queryParams.Verifier
	}
	limit := &queryParams.Limit
	offset := &queryParams.Offset

	response, err := h.executor.ListVerifications(
		c.Request.Context(),
		queryParams.CapsuleID,
		verifier,
		limit,
		offset,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, response)
}

// GetAnalytics retrieves global counters or per-user stats
func (h *handler) GetAnalytics(c *gin.Context) {
	queryParams, err := ParseAnalyticsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if queryParams.Type == "user" {
		response, err := h.executor.GetUserAnalytics(c.Request.Context(), queryParams.Wallet, queryParams.OnChain)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, response)
		return
	}

	response, err := h.executor.GetGlobalAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, response)
}

// ExportUser assembles the full data export for a wallet
func (h *handler) ExportUser(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		respondBadRequest(c, "wallet is required")
		return
	}
	if !domain.Address(wallet).Valid() {
		respondValidationError(c, fmt.Sprintf("invalid wallet address: %s", wallet))
		return
	}

	response, err := h.executor.ExportUser(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err)
		return
	}

	if response == nil {
		respondNotFound(c, "User not found")
		return
	}

	respondData(c, http.StatusOK, response)
}

// DeleteUser removes an account and everything hanging off it
func (h *handler) DeleteUser(c *gin.Context) {
	var req dto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.DeleteUser(c.Request.Context(), req.WalletAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "pc-anchor-api",
	})
}
