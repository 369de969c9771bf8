package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kelseaconrad19/avian-eye-sight/internal/badges"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/logger"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB() {
	logger.Init("test")
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.Migrator().DropTable(
		&models.User{},
		&models.Profile{},
		&models.BirdSpecies{},
		&models.Sighting{},
		&models.BibleVerse{},
		&models.ScriptureOverlay{},
	)
	database.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.BirdSpecies{},
		&models.Sighting{},
		&models.BibleVerse{},
		&models.ScriptureOverlay{},
	)
}

func postJSON(t *testing.T, userID string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userId", userID)
	return w, c
}

func TestCreateSighting_AwardsFirstBadges(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	user := models.User{ID: "h_user1", Username: "h_user1", Email: "h_user1@example.com"}
	database.DB.Create(&user)

	// Saturday 06:30: a first sighting in the early-bird window
	w, c := postJSON(t, "h_user1", gin.H{
		"birdInfo": gin.H{
			"name":           "American Goldfinch",
			"scientificName": "Spinus tristis",
			"description":    "A bright yellow finch.",
		},
		"date":     "2024-03-02T06:30:00Z",
		"location": "Backyard feeder",
		"notes":    "Singing from the maple.",
	})

	CreateSighting(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Sighting  models.Sighting     `json:"sighting"`
		NewBadges []badges.Definition `json:"newBadges"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, "h_user1", response.Sighting.UserID)
	assert.NotNil(t, response.Sighting.Species)

	// First Flight then Early Bird, in catalog order
	assert.Len(t, response.NewBadges, 2)
	if len(response.NewBadges) == 2 {
		assert.Equal(t, badges.BadgeFirstSighting, response.NewBadges[0].ID)
		assert.Equal(t, badges.BadgeEarlyBird, response.NewBadges[1].ID)
	}

	// The lazily created profile carries the persisted ids
	var profile models.Profile
	assert.NoError(t, database.DB.Where("user_id = ?", "h_user1").First(&profile).Error)
	assert.Equal(t, []string{badges.BadgeFirstSighting, badges.BadgeEarlyBird}, []string(profile.Badges))
}

func TestCreateSighting_ReusesExistingSpecies(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	user := models.User{ID: "h_user2", Username: "h_user2", Email: "h_user2@example.com"}
	database.DB.Create(&user)

	species := models.BirdSpecies{ID: "sp_robin", Name: "American Robin", ScientificName: "Turdus migratorius"}
	database.DB.Create(&species)

	w, c := postJSON(t, "h_user2", gin.H{
		"birdInfo": gin.H{
			"name":           "American Robin",
			"scientificName": "Turdus migratorius",
		},
		"date": "2024-03-05T12:00:00Z",
	})

	CreateSighting(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	database.DB.Model(&models.BirdSpecies{}).Where("scientific_name = ?", "Turdus migratorius").Count(&count)
	assert.Equal(t, int64(1), count)

	var sighting models.Sighting
	assert.NoError(t, database.DB.Where("user_id = ?", "h_user2").First(&sighting).Error)
	assert.Equal(t, "sp_robin", sighting.BirdSpeciesID)
}

func TestListSightings_NewestFirstOwnOnly(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	mine := models.User{ID: "h_user3", Username: "h_user3", Email: "h_user3@example.com"}
	other := models.User{ID: "h_user4", Username: "h_user4", Email: "h_user4@example.com"}
	database.DB.Create(&mine)
	database.DB.Create(&other)

	species := models.BirdSpecies{ID: "sp_jay", Name: "Blue Jay", ScientificName: "Cyanocitta cristata"}
	database.DB.Create(&species)

	old := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	database.DB.Create(&models.Sighting{ID: "s_old", UserID: "h_user3", BirdSpeciesID: "sp_jay", SightingDate: old})
	database.DB.Create(&models.Sighting{ID: "s_new", UserID: "h_user3", BirdSpeciesID: "sp_jay", SightingDate: recent})
	database.DB.Create(&models.Sighting{ID: "s_other", UserID: "h_user4", BirdSpeciesID: "sp_jay", SightingDate: recent})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/sightings", nil)
	c.Set("userId", "h_user3")

	ListSightings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Sightings []models.Sighting `json:"sightings"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	assert.Len(t, response.Sightings, 2)
	if len(response.Sightings) == 2 {
		assert.Equal(t, "s_new", response.Sightings[0].ID)
		assert.Equal(t, "s_old", response.Sightings[1].ID)
	}
}

func TestDeleteSighting_KeepsEarnedBadges(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	user := models.User{ID: "h_user5", Username: "h_user5", Email: "h_user5@example.com"}
	database.DB.Create(&user)

	w, c := postJSON(t, "h_user5", gin.H{
		"birdInfo": gin.H{"name": "House Sparrow", "scientificName": "Passer domesticus"},
		"date":     "2024-03-05T12:00:00Z",
	})
	CreateSighting(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	var sighting models.Sighting
	assert.NoError(t, database.DB.Where("user_id = ?", "h_user5").First(&sighting).Error)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request, _ = http.NewRequest("DELETE", "/api/sightings/"+sighting.ID, nil)
	c2.Params = gin.Params{{Key: "id", Value: sighting.ID}}
	c2.Set("userId", "h_user5")

	DeleteSighting(c2)

	assert.Equal(t, http.StatusOK, w2.Code)

	// The badge earned by the deleted sighting is permanent
	var profile models.Profile
	assert.NoError(t, database.DB.Where("user_id = ?", "h_user5").First(&profile).Error)
	assert.Contains(t, []string(profile.Badges), badges.BadgeFirstSighting)
}
