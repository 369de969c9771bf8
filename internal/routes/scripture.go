package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/handlers"
	"github.com/kelseaconrad19/avian-eye-sight/internal/middleware"
)

func RegisterScriptureRoutes(r gin.IRouter) {
	r.GET("/verses", handlers.ListVerses)

	overlays := r.Group("/overlays")
	overlays.Use(middleware.AuthMiddleware())
	{
		overlays.GET("", handlers.ListOverlays)
		overlays.POST("", handlers.CreateOverlay)
		overlays.PATCH("/:id", handlers.UpdateOverlay)
		overlays.DELETE("/:id", handlers.DeleteOverlay)
	}
}
