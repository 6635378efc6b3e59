package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Capsule endpoints
		v1.POST("/capsules", handler.CreateCapsule)
		v1.GET("/capsules", handler.ListCapsules)
		v1.GET("/capsules/:id", handler.GetCapsule)
		v1.PATCH("/capsules/:id", handler.UpdateCapsule)

		// Verification endpoints
		v1.POST("/verify", handler.VerifyCapsule)
		v1.GET("/verify", handler.ListVerifications)

		// Analytics endpoint (global counters or per-user stats)
		v1.GET("/analytics", handler.GetAnalytics)

		// Account endpoints
		v1.GET("/users/export", handler.ExportUser)
		v1.DELETE("/users", handler.DeleteUser)
	}
}
