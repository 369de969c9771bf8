package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/services"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/logger"
)

type IdentifyInput struct {
	// Base64 encoded photo, with or without a data URL prefix
	Image string `json:"image" binding:"required"`
}

// IdentifyBird handles POST /identify: forwards the photo to the external
// classifier and returns the top match.
func IdentifyBird(c *gin.Context) {
	var input IdentifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Strip a data URL prefix if the client sent one
	image := input.Image
	if idx := strings.Index(image, ","); idx != -1 && strings.HasPrefix(image, "data:") {
		image = image[idx+1:]
	}

	result, err := services.IdentifyBird(c.Request.Context(), image)
	if err != nil {
		logger.Warn().Err(err).Msg("Bird identification failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not identify the bird. Try a clearer photo."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bird": result})
}
