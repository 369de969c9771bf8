package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelseaconrad19/avian-eye-sight/internal/badges"
	"github.com/kelseaconrad19/avian-eye-sight/internal/services"
)

// BadgeView is the catalog entry as shown to a user: definition plus earned
// state, with secret badges masked until earned.
type BadgeView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	IsSecret    bool   `json:"isSecret"`
	Earned      bool   `json:"earned"`
}

// ListBadges handles GET /badges: the full catalog in declaration order,
// merged with the caller's earned set.
func ListBadges(c *gin.Context) {
	userID := c.GetString("userId")

	profile, err := services.GetOrCreateProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	earned := make(map[string]bool, len(profile.Badges))
	for _, id := range profile.Badges {
		earned[id] = true
	}

	catalog := badges.Catalog()
	views := make([]BadgeView, 0, len(catalog))
	for _, def := range catalog {
		view := BadgeView{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			IconName:    def.IconName,
			IsSecret:    def.IsSecret,
			Earned:      earned[def.ID],
		}
		// Secret badges stay a mystery until unlocked
		if def.IsSecret && !view.Earned {
			view.Title = "???"
			view.Description = "Keep birding to discover this secret badge."
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"badges":      views,
		"earnedCount": len(profile.Badges),
		"totalCount":  len(catalog),
	})
}
