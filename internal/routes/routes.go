package routes

import (
	"net/http"

	"aurum_backend/internal/handlers"
	"aurum_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler under /api/v1.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authn *middleware.Authenticator,
) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ProfileHandler.RegisterRoutes(api, authn)
		appHandlers.CategoryHandler.RegisterRoutes(api, authn)
		appHandlers.SubcategoryHandler.RegisterRoutes(api, authn)
		appHandlers.ProductHandler.RegisterRoutes(api, authn)
		appHandlers.CartHandler.RegisterRoutes(api, authn)
		appHandlers.OrderHandler.RegisterRoutes(api, authn)
		appHandlers.ReviewHandler.RegisterRoutes(api, authn)
		appHandlers.NoticeHandler.RegisterRoutes(api, authn)
		appHandlers.EmailHandler.RegisterRoutes(api, authn)
	}
}
