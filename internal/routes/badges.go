package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/handlers"
	"github.com/kelseaconrad19/avian-eye-sight/internal/middleware"
)

func RegisterBadgeRoutes(r gin.IRouter) {
	r.GET("/badges", middleware.AuthMiddleware(), handlers.ListBadges)

	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handlers.GetProfile)
		profile.PUT("", handlers.UpdateProfile)
	}
}
