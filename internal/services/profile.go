package services

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

// GetOrCreateProfile returns the user's profile, lazily creating it with an
// empty badge list on first access.
func GetOrCreateProfile(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := database.DB.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.Profile{
		ID:     utils.GenerateID(),
		UserID: userID,
		Badges: pq.StringArray{},
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		// Another request may have created it concurrently
		if err2 := database.DB.Where("user_id = ?", userID).First(&profile).Error; err2 == nil {
			return &profile, nil
		}
		return nil, err
	}
	return &profile, nil
}
