package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/logger"
)

const (
	communityFeedCacheKey = "community:feed"
	communityFeedTTL      = 2 * time.Minute
	communityFeedLimit    = 50
)

// CommunitySighting is a public feed entry: sighting plus who logged it.
// IsYours is computed per request, never cached.
type CommunitySighting struct {
	ID           string              `json:"id"`
	SightingDate time.Time           `json:"sighting_date"`
	Location     string              `json:"location"`
	Notes        string              `json:"notes"`
	ImageURL     string              `json:"image_url"`
	Species      *models.BirdSpecies `json:"species,omitempty"`
	UserID       string              `json:"user_id"`
	UserName     string              `json:"userName"`
	UserAvatar   string              `json:"userAvatar"`
	IsYours      bool                `json:"isYours"`
}

// GetCommunityFeed handles GET /community/sightings: the most recent
// sightings across all users. Served from the Redis cache when warm. An
// authenticated caller gets their own entries flagged.
func GetCommunityFeed(c *gin.Context) {
	userID := c.GetString("userId")

	var feed []CommunitySighting

	if database.Redis != nil {
		if err := database.CacheGet(communityFeedCacheKey, &feed); err == nil {
			applyFeedOwnership(feed, userID)
			c.JSON(http.StatusOK, gin.H{"sightings": feed, "cached": true})
			return
		}
	}

	var rows []models.Sighting
	err := database.DB.
		Preload("Species").
		Preload("User").
		Order("sighting_date desc").
		Limit(communityFeedLimit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch community feed"})
		return
	}

	feed = make([]CommunitySighting, 0, len(rows))
	for _, row := range rows {
		entry := CommunitySighting{
			ID:           row.ID,
			SightingDate: row.SightingDate,
			Location:     row.Location,
			Notes:        row.Notes,
			ImageURL:     row.ImageURL,
			Species:      row.Species,
			UserID:       row.UserID,
			UserName:     row.User.Name,
			UserAvatar:   row.User.Avatar,
		}
		feed = append(feed, entry)
	}

	// Cache the shared view before any per-caller flags are applied
	if database.Redis != nil {
		if err := database.CacheSet(communityFeedCacheKey, feed, communityFeedTTL); err != nil {
			logger.Debug().Err(err).Msg("Failed to cache community feed")
		}
	}

	applyFeedOwnership(feed, userID)
	c.JSON(http.StatusOK, gin.H{"sightings": feed})
}

func applyFeedOwnership(feed []CommunitySighting, userID string) {
	for i := range feed {
		feed[i].IsYours = userID != "" && feed[i].UserID == userID
	}
}

// invalidateCommunityFeed drops the cached feed so a created or deleted
// sighting shows up before the TTL expires. Safe to call without Redis.
func invalidateCommunityFeed() {
	if database.Redis == nil {
		return
	}
	if err := database.CacheInvalidate(communityFeedCacheKey); err != nil {
		logger.Debug().Err(err).Msg("Failed to invalidate community feed cache")
	}
}
