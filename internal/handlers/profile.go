package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/services"
)

type UpdateProfileInput struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// GetProfile handles GET /profile. Creates the profile on first access.
func GetProfile(c *gin.Context) {
	userID := c.GetString("userId")

	profile, err := services.GetOrCreateProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile handles PUT /profile
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("userId")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.GetOrCreateProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	profile.DisplayName = input.DisplayName
	if err := database.DB.Model(profile).Update("display_name", input.DisplayName).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
