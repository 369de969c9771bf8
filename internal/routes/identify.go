package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/handlers"
	"github.com/kelseaconrad19/avian-eye-sight/internal/middleware"
)

func RegisterIdentifyRoutes(r gin.IRouter) {
	r.POST("/identify",
		middleware.AuthMiddleware(),
		middleware.IdentifyRateLimit(),
		handlers.IdentifyBird,
	)
}

func RegisterUploadRoutes(r gin.IRouter) {
	upload := r.Group("/upload")
	upload.Use(middleware.AuthMiddleware(), middleware.UploadRateLimit())
	{
		upload.POST("", handlers.UploadPhoto)
		upload.POST("/sighting", handlers.UploadSightingPhoto)
		upload.POST("/overlay", handlers.UploadOverlayPhoto)
	}
}
