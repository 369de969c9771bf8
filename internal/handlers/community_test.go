package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
)

// seedCommunitySightings is idempotent: the test DB is shared within the
// package, so re-seeding must not trip unique constraints.
func seedCommunitySightings(t *testing.T) {
	t.Helper()

	var existing int64
	database.DB.Model(&models.User{}).Where("id = ?", "comm_alice").Count(&existing)
	if existing > 0 {
		return
	}

	alice := models.User{ID: "comm_alice", Username: "comm_alice", Email: "comm_alice@example.com", Name: "Alice"}
	bob := models.User{ID: "comm_bob", Username: "comm_bob", Email: "comm_bob@example.com", Name: "Bob"}
	assert.NoError(t, database.DB.Create(&alice).Error)
	assert.NoError(t, database.DB.Create(&bob).Error)

	species := models.BirdSpecies{ID: "sp_comm", Name: "House Sparrow", ScientificName: "Passer domesticus"}
	assert.NoError(t, database.DB.Create(&species).Error)

	assert.NoError(t, database.DB.Create(&models.Sighting{
		ID: "comm_s1", UserID: "comm_alice", BirdSpeciesID: "sp_comm",
		SightingDate: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	}).Error)
	assert.NoError(t, database.DB.Create(&models.Sighting{
		ID: "comm_s2", UserID: "comm_bob", BirdSpeciesID: "sp_comm",
		SightingDate: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC),
	}).Error)
}

func fetchFeed(t *testing.T, userID string) []CommunitySighting {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/community/sightings", nil)
	if userID != "" {
		c.Set("userId", userID)
	}

	GetCommunityFeed(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Sightings []CommunitySighting `json:"sightings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Sightings
}

func feedIndex(feed []CommunitySighting, id string) int {
	for i, entry := range feed {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

func TestGetCommunityFeed_MarksOwnSightings(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)
	seedCommunitySightings(t)

	feed := fetchFeed(t, "comm_alice")

	mine := feedIndex(feed, "comm_s1")
	theirs := feedIndex(feed, "comm_s2")
	assert.GreaterOrEqual(t, mine, 0)
	assert.GreaterOrEqual(t, theirs, 0)
	assert.True(t, feed[mine].IsYours)
	assert.False(t, feed[theirs].IsYours)
	assert.Equal(t, "Alice", feed[mine].UserName)
}

func TestGetCommunityFeed_AnonymousOwnsNothing(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)
	seedCommunitySightings(t)

	feed := fetchFeed(t, "")

	assert.NotEmpty(t, feed)
	for _, entry := range feed {
		assert.False(t, entry.IsYours)
	}
}

func TestGetCommunityFeed_NewestFirst(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)
	seedCommunitySightings(t)

	feed := fetchFeed(t, "")

	newer := feedIndex(feed, "comm_s2")
	older := feedIndex(feed, "comm_s1")
	assert.GreaterOrEqual(t, newer, 0)
	assert.GreaterOrEqual(t, older, 0)
	assert.Less(t, newer, older)
}

func TestInvalidateCommunityFeed_NoRedisIsNoop(t *testing.T) {
	SetupTestDB()
	database.Redis = nil

	assert.NotPanics(t, invalidateCommunityFeed)
}
