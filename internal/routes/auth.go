package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/handlers"
	"github.com/kelseaconrad19/avian-eye-sight/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.GET("/me", middleware.AuthMiddleware(), handlers.Me)
}
