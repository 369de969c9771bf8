package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

// Species records are created by users on first sighting, so curation is
// about cleaning up: fixing names and descriptions from the classifier, and
// removing junk entries nobody references.

// -- Inputs --

type UpdateSpeciesInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type CreateVerseInput struct {
	Book    string `json:"book" binding:"required"`
	Chapter int    `json:"chapter" binding:"required"`
	Verse   int    `json:"verse" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Version string `json:"version"`
}

// -- Handlers --

// AdminUpdateSpecies handles PUT /admin/species/:id
func AdminUpdateSpecies(c *gin.Context) {
	var input UpdateSpeciesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var species models.BirdSpecies
	if err := database.DB.First(&species, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Species not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&species).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update species"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"species": species})
}

// AdminDeleteSpecies handles DELETE /admin/species/:id. Refuses while any
// sighting still references the record.
func AdminDeleteSpecies(c *gin.Context) {
	id := c.Param("id")

	var inUse int64
	if err := database.DB.Model(&models.Sighting{}).Where("bird_species_id = ?", id).Count(&inUse).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check species usage"})
		return
	}
	if inUse > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Species is referenced by existing sightings"})
		return
	}

	res := database.DB.Delete(&models.BirdSpecies{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete species"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Species not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Species deleted"})
}

// AdminCreateVerse handles POST /admin/verses
func AdminCreateVerse(c *gin.Context) {
	var input CreateVerseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version := input.Version
	if version == "" {
		version = "KJV"
	}

	verse := models.BibleVerse{
		ID:      utils.GenerateID(),
		Book:    input.Book,
		Chapter: input.Chapter,
		Verse:   input.Verse,
		Text:    input.Text,
		Version: version,
	}
	if err := database.DB.Create(&verse).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create verse"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"verse": verse})
}

// AdminDeleteVerse handles DELETE /admin/verses/:id
func AdminDeleteVerse(c *gin.Context) {
	res := database.DB.Delete(&models.BibleVerse{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete verse"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Verse not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verse deleted"})
}
