package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

// -- Inputs --

type CreateOverlayInput struct {
	Title            string                  `json:"title"`
	OriginalImageURL string                  `json:"original_image_url" binding:"required"`
	EditedImageURL   string                  `json:"edited_image_url"`
	VerseID          *string                 `json:"verse_id"`
	CustomVerseText  string                  `json:"custom_verse_text"`
	OverlaySettings  *models.OverlaySettings `json:"overlay_settings"`
}

type UpdateOverlayInput struct {
	Title           *string                 `json:"title"`
	EditedImageURL  *string                 `json:"edited_image_url"`
	VerseID         *string                 `json:"verse_id"`
	CustomVerseText *string                 `json:"custom_verse_text"`
	OverlaySettings *models.OverlaySettings `json:"overlay_settings"`
}

// -- Verse Handlers --

// ListVerses handles GET /verses (with optional ?search= and ?book=)
func ListVerses(c *gin.Context) {
	var verses []models.BibleVerse
	query := database.DB.Model(&models.BibleVerse{})

	if book := c.Query("book"); book != "" {
		query = query.Where("book = ?", book)
	}
	if search := c.Query("search"); search != "" {
		searchLike := utils.SanitizeSearchQuery(search)
		query = query.Where("text ILIKE ? OR book ILIKE ?", searchLike, searchLike)
	}

	if result := query.Order("book asc, chapter asc, verse asc").Find(&verses); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch verses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"verses": verses})
}

// -- Overlay Handlers --

// ListOverlays handles GET /overlays (own, newest first)
func ListOverlays(c *gin.Context) {
	userID := c.GetString("userId")

	var overlays []models.ScriptureOverlay
	err := database.DB.
		Preload("Verse").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&overlays).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch overlays"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"overlays": overlays})
}

// CreateOverlay handles POST /overlays
func CreateOverlay(c *gin.Context) {
	userID := c.GetString("userId")

	var input CreateOverlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.VerseID == nil && input.CustomVerseText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either verse_id or custom_verse_text is required"})
		return
	}

	settings := ""
	if input.OverlaySettings != nil {
		raw, err := json.Marshal(input.OverlaySettings)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid overlay settings"})
			return
		}
		settings = string(raw)
	}

	overlay := models.ScriptureOverlay{
		ID:               utils.GenerateID(),
		UserID:           userID,
		Title:            input.Title,
		OriginalImageURL: input.OriginalImageURL,
		EditedImageURL:   input.EditedImageURL,
		VerseID:          input.VerseID,
		CustomVerseText:  input.CustomVerseText,
		OverlaySettings:  settings,
	}
	if err := database.DB.Create(&overlay).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save overlay"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"overlay": overlay})
}

// UpdateOverlay handles PATCH /overlays/:id
func UpdateOverlay(c *gin.Context) {
	userID := c.GetString("userId")
	id := c.Param("id")

	var input UpdateOverlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var overlay models.ScriptureOverlay
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&overlay).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Overlay not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.EditedImageURL != nil {
		updates["edited_image_url"] = *input.EditedImageURL
	}
	if input.VerseID != nil {
		updates["verse_id"] = *input.VerseID
	}
	if input.CustomVerseText != nil {
		updates["custom_verse_text"] = *input.CustomVerseText
	}
	if input.OverlaySettings != nil {
		raw, err := json.Marshal(input.OverlaySettings)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid overlay settings"})
			return
		}
		updates["overlay_settings"] = string(raw)
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&overlay).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update overlay"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"overlay": overlay})
}

// DeleteOverlay handles DELETE /overlays/:id
func DeleteOverlay(c *gin.Context) {
	userID := c.GetString("userId")
	id := c.Param("id")

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ScriptureOverlay{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete overlay"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Overlay not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Overlay deleted"})
}
