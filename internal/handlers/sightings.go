package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelseaconrad19/avian-eye-sight/internal/badges"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/internal/services"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/logger"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

// -- Inputs --

type BirdInfoInput struct {
	Name           string   `json:"name" binding:"required"`
	ScientificName string   `json:"scientificName" binding:"required"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	Confidence     *float64 `json:"confidence"`
}

type CreateSightingInput struct {
	BirdInfo BirdInfoInput `json:"birdInfo" binding:"required"`
	// RFC3339 with the observer's UTC offset; the hour-of-day badges depend
	// on the offset being the observer's, not the server's.
	Date     time.Time `json:"date" binding:"required"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
	ImageURL string    `json:"imageUrl"`
}

type UpdateSightingInput struct {
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

// -- Handlers --

// CreateSighting handles POST /sightings. It upserts the species record,
// saves the sighting, then runs the badge engine. Badge evaluation is best
// effort: the sighting is already committed, so an engine failure only means
// no celebration, never a failed request.
func CreateSighting(c *gin.Context) {
	userID := c.GetString("userId")

	var input CreateSightingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if database.Redis != nil {
		allowed, err := database.CheckRateLimit("sighting:"+userID, 60, time.Hour)
		if err == nil && !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many sightings logged, try again later"})
			return
		}
	}

	species, err := findOrCreateSpecies(input.BirdInfo)
	if err != nil {
		logger.Error().Err(err).Str("species", input.BirdInfo.ScientificName).Msg("Failed to upsert species")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save species"})
		return
	}

	sighting := models.Sighting{
		ID:            utils.GenerateID(),
		UserID:        userID,
		BirdSpeciesID: species.ID,
		SightingDate:  input.Date,
		Location:      input.Location,
		Notes:         input.Notes,
		ImageURL:      input.ImageURL,
	}
	if err := database.DB.Create(&sighting).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create sighting")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save sighting"})
		return
	}
	sighting.Species = species
	invalidateCommunityFeed()

	newBadges := checkBadgesForSighting(userID, &sighting)

	c.JSON(http.StatusCreated, gin.H{
		"sighting":  sighting,
		"newBadges": newBadges,
	})
}

// checkBadgesForSighting runs the badge engine for an already-saved sighting.
// Never fails the request: on any engine error it logs and reports no badges.
func checkBadgesForSighting(userID string, sighting *models.Sighting) []badges.Definition {
	profile, err := services.GetOrCreateProfile(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile for badge check")
		return []badges.Definition{}
	}

	earned, err := services.CheckAndAwardBadges(profile, services.BadgeSighting(sighting))
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Badge evaluation failed")
		return []badges.Definition{}
	}
	if earned == nil {
		earned = []badges.Definition{}
	}
	return earned
}

func findOrCreateSpecies(info BirdInfoInput) (*models.BirdSpecies, error) {
	var species models.BirdSpecies
	err := database.DB.Where("scientific_name = ?", info.ScientificName).First(&species).Error
	if err == nil {
		return &species, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	species = models.BirdSpecies{
		ID:             utils.GenerateID(),
		Name:           info.Name,
		ScientificName: info.ScientificName,
		Description:    info.Description,
		ImageURL:       info.ImageURL,
		Confidence:     info.Confidence,
	}
	if err := database.DB.Create(&species).Error; err != nil {
		// Concurrent create of the same species; fall back to the winner
		if err2 := database.DB.Where("scientific_name = ?", info.ScientificName).First(&species).Error; err2 == nil {
			return &species, nil
		}
		return nil, err
	}
	return &species, nil
}

// ListSightings handles GET /sightings (own history, newest first)
func ListSightings(c *gin.Context) {
	userID := c.GetString("userId")

	var sightings []models.Sighting
	err := database.DB.
		Preload("Species").
		Where("user_id = ?", userID).
		Order("sighting_date desc").
		Find(&sightings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sightings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sightings": sightings})
}

// GetSighting handles GET /sightings/:id
func GetSighting(c *gin.Context) {
	userID := c.GetString("userId")
	id := c.Param("id")

	var sighting models.Sighting
	err := database.DB.Preload("Species").Where("id = ? AND user_id = ?", id, userID).First(&sighting).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sighting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sighting": sighting})
}

// UpdateSighting handles PATCH /sightings/:id (location and notes only;
// the observation time and species are immutable once logged)
func UpdateSighting(c *gin.Context) {
	userID := c.GetString("userId")
	id := c.Param("id")

	var input UpdateSightingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sighting models.Sighting
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&sighting).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sighting not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&sighting).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sighting"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"sighting": sighting})
}

// DeleteSighting handles DELETE /sightings/:id. Earned badges are permanent:
// deleting a sighting never revokes a badge, even if its predicate would no
// longer hold.
func DeleteSighting(c *gin.Context) {
	userID := c.GetString("userId")
	id := c.Param("id")

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Sighting{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sighting"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sighting not found"})
		return
	}
	invalidateCommunityFeed()

	c.JSON(http.StatusOK, gin.H{"message": "Sighting deleted"})
}
