package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check and metrics (no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Chain and contract settings for the UI
		v1.GET("/config", handler.GetConfig)

		// Network-wide staking totals
		v1.GET("/stats", handler.GetStats)

		// Per-user reads
		v1.GET("/users/:address/staking", handler.GetUserStaking)
		v1.GET("/users/:address/potentials", handler.GetOwnedPotentials)
		v1.GET("/users/:address/approval", handler.GetApproval)

		// Staking contract reads
		v1.GET("/staking/paused", handler.GetStakingPaused)
		v1.GET("/tokens/:id/stake", handler.GetStakeInfo)
		v1.GET("/tokens/:id/owner", handler.GetTokenOwner)
	}
}
