package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/api/rest/dto"
	"github.com/degenerous-dao/potentials-staking/internal/portal"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetConfig returns the chain id and contract addresses the UI needs
	// GET /api/v1/config
	GetConfig(c *gin.Context)

	// GetStats returns the network-wide staking totals
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// GetUserStaking returns the indexer snapshot of an address with points extrapolated to now
	// GET /api/v1/users/:address/staking
	GetUserStaking(c *gin.Context)

	// GetOwnedPotentials scans the collection for tokens held by an address
	// GET /api/v1/users/:address/potentials?supply=<n>&batch_size=<n>
	GetOwnedPotentials(c *gin.Context)

	// GetApproval reports whether the staking contract is approved for an address
	// GET /api/v1/users/:address/approval
	GetApproval(c *gin.Context)

	// GetStakingPaused reports whether staking is paused
	// GET /api/v1/staking/paused
	GetStakingPaused(c *gin.Context)

	// GetStakeInfo returns the on-chain stake record of a token
	// GET /api/v1/tokens/:id/stake
	GetStakeInfo(c *gin.Context)

	// GetTokenOwner returns the current holder of a token
	// GET /api/v1/tokens/:id/owner
	GetTokenOwner(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service portal.Service
}

// NewHandler creates a new REST API handler on top of the portal service
func NewHandler(service portal.Service) Handler {
	return &handler{service: service}
}

func (h *handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Settings())
}

func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetGlobalStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to get staking stats")
		return
	}

	c.JSON(http.StatusOK, dto.MapGlobalStats(stats))
}

func (h *handler) GetUserStaking(c *gin.Context) {
	address, ok := parseAddressParam(c)
	if !ok {
		return
	}

	staking, err := h.service.GetUserStaking(c.Request.Context(), address)
	if err != nil {
		respondServiceError(c, err, "Failed to get staking data", zap.String("address", address))
		return
	}

	c.JSON(http.StatusOK, dto.MapUserStaking(address, staking))
}

func (h *handler) GetOwnedPotentials(c *gin.Context) {
	address, ok := parseAddressParam(c)
	if !ok {
		return
	}

	queryParams, err := ParseOwnedTokensQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	settings := h.service.Settings()
	supply, batchSize, err := queryParams.Resolve(settings.TotalSupply, settings.BatchSize)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	set, err := h.service.GetOwnedTokens(c.Request.Context(), address, supply, batchSize)
	if err != nil {
		respondServiceError(c, err, "Failed to get owned tokens",
			zap.String("address", address),
			zap.Int("supply", supply),
			zap.Int("batchSize", batchSize),
		)
		return
	}

	c.JSON(http.StatusOK, dto.OwnedTokensResponse{
		Address:     address,
		TotalSupply: supply,
		BatchSize:   batchSize,
		TokenIDs:    set.IDs,
	})
}

func (h *handler) GetApproval(c *gin.Context) {
	address, ok := parseAddressParam(c)
	if !ok {
		return
	}

	approved, err := h.service.IsApproved(c.Request.Context(), address)
	if err != nil {
		respondServiceError(c, err, "Failed to get approval", zap.String("address", address))
		return
	}

	c.JSON(http.StatusOK, dto.ApprovalResponse{
		Address:  address,
		Operator: h.service.Settings().StakingAddress,
		Approved: approved,
	})
}

func (h *handler) GetStakingPaused(c *gin.Context) {
	paused, err := h.service.IsStakingPaused(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to get staking status")
		return
	}

	c.JSON(http.StatusOK, dto.PausedResponse{Paused: paused})
}

func (h *handler) GetStakeInfo(c *gin.Context) {
	tokenID, ok := parseTokenIDParam(c)
	if !ok {
		return
	}

	info, err := h.service.GetStakeInfo(c.Request.Context(), tokenID)
	if err != nil {
		respondServiceError(c, err, "Failed to get stake info", zap.Uint64("tokenID", tokenID))
		return
	}

	if info == nil {
		respondNotFound(c, "Stake info not found")
		return
	}

	c.JSON(http.StatusOK, dto.MapStakeInfo(info))
}

func (h *handler) GetTokenOwner(c *gin.Context) {
	tokenID, ok := parseTokenIDParam(c)
	if !ok {
		return
	}

	owner, err := h.service.GetTokenOwner(c.Request.Context(), tokenID)
	if err != nil {
		respondServiceError(c, err, "Failed to get token owner", zap.Uint64("tokenID", tokenID))
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenOwner(tokenID, owner, h.service.Settings().StakingAddress))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "potentials-staking-api",
	})
}
