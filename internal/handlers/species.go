package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/errors"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

// The species catalog handlers report failures through c.Error so the
// error middleware renders them uniformly.

// ListSpecies handles GET /species (with optional ?search=)
func ListSpecies(c *gin.Context) {
	var species []models.BirdSpecies
	query := database.DB.Model(&models.BirdSpecies{})

	search := c.Query("search")
	if search != "" {
		searchLike := utils.SanitizeSearchQuery(search)
		query = query.Where("name ILIKE ? OR scientific_name ILIKE ?", searchLike, searchLike)
	}

	if result := query.Order("name asc").Find(&species); result.Error != nil {
		c.Error(errors.Internal("Failed to fetch species"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"species": species})
}

// GetSpecies handles GET /species/:id
func GetSpecies(c *gin.Context) {
	var species models.BirdSpecies
	if err := database.DB.First(&species, "id = ?", c.Param("id")).Error; err != nil {
		c.Error(errors.NotFound("Species not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"species": species})
}
