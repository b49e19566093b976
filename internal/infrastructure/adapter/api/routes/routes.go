package routes

import (
	coreport "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	sessionHandler *handler.SessionHandler,
	logHandler *handler.LogHandler,
) {
	sessionRoutes := router.Group("/sessions")
	{
		// POST /sessions
		sessionRoutes.POST("", sessionHandler.CreateSession)

		// DELETE /sessions/:id
		sessionRoutes.DELETE("/:id", sessionHandler.CloseSession)

		// GET /sessions/:id/errors
		sessionRoutes.GET("/:id/errors", sessionHandler.PendingErrors)

		// POST /sessions/:id/nodes
		sessionRoutes.POST("/:id/nodes", sessionHandler.SetNode)
	}

	// GET /log/thresholds
	router.GET("/log/thresholds", logHandler.GetThresholds)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
