package routes

import (
	"stockroom/internal/core/container"
	"stockroom/internal/middleware"
	"stockroom/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("/api")
	protectedRoutes.Use(container.RateLimiter.Middleware(), security.JWTMiddleware(container.TokenVerifier))

	container.UserHandler.RegisterRoutes(protectedRoutes)
	container.StockHandler.RegisterRoutes(protectedRoutes)
	container.StockLogHandler.RegisterRoutes(protectedRoutes)
	container.ReportHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine, container *container.Container) {
	router.GET("/health", middleware.HealthCheck(container.DB))
}
