package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/handlers"
	"github.com/kelseaconrad19/avian-eye-sight/internal/middleware"
)

func RegisterSightingRoutes(r gin.IRouter) {
	sightings := r.Group("/sightings")
	sightings.Use(middleware.AuthMiddleware())
	{
		sightings.GET("", handlers.ListSightings)
		sightings.POST("", handlers.CreateSighting)
		sightings.GET("/:id", handlers.GetSighting)
		sightings.PATCH("/:id", handlers.UpdateSighting)
		sightings.DELETE("/:id", handlers.DeleteSighting)
	}

	species := r.Group("/species")
	{
		species.GET("", handlers.ListSpecies)
		species.GET("/:id", handlers.GetSpecies)
	}

	// Community feed is public; a token just marks the caller's own entries
	r.GET("/community/sightings", middleware.OptionalAuthMiddleware(), handlers.GetCommunityFeed)
}
