package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/handlers"
	"github.com/kelseaconrad19/avian-eye-sight/internal/middleware"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.PUT("/species/:id", handlers.AdminUpdateSpecies)
		admin.DELETE("/species/:id", handlers.AdminDeleteSpecies)
		admin.POST("/verses", handlers.AdminCreateVerse)
		admin.DELETE("/verses/:id", handlers.AdminDeleteVerse)
	}
}
