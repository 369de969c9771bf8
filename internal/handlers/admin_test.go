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

	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/middleware"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
)

// adminRouter builds a router with the admin gate, pinning the caller's
// identity the way AuthMiddleware would have.
func adminRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	r.Use(middleware.AdminMiddleware())
	r.PUT("/admin/species/:id", AdminUpdateSpecies)
	r.DELETE("/admin/species/:id", AdminDeleteSpecies)
	r.POST("/admin/verses", AdminCreateVerse)
	r.DELETE("/admin/verses/:id", AdminDeleteVerse)
	return r
}

func adminRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAdminMiddleware_RejectsNonAdmin(t *testing.T) {
	SetupTestDB()

	user := models.User{ID: "adm_user", Username: "adm_user", Email: "adm_user@example.com", Role: models.RoleUser}
	database.DB.Create(&user)

	r := adminRouter("adm_user")
	w := adminRequest(t, r, "PUT", "/admin/species/sp_any", gin.H{"name": "Renamed"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminUpdateSpecies_PartialUpdate(t *testing.T) {
	SetupTestDB()

	admin := models.User{ID: "adm_1", Username: "adm_1", Email: "adm_1@example.com", Role: models.RoleAdmin}
	database.DB.Create(&admin)
	species := models.BirdSpecies{ID: "sp_fix", Name: "Robin??", ScientificName: "Turdus migratorius", Description: "keep me"}
	database.DB.Create(&species)

	r := adminRouter("adm_1")
	w := adminRequest(t, r, "PUT", "/admin/species/sp_fix", gin.H{"name": "American Robin"})

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.BirdSpecies
	assert.NoError(t, database.DB.First(&got, "id = ?", "sp_fix").Error)
	assert.Equal(t, "American Robin", got.Name)
	// Fields absent from the request are untouched
	assert.Equal(t, "keep me", got.Description)
}

func TestAdminDeleteSpecies_RefusesWhileReferenced(t *testing.T) {
	SetupTestDB()

	admin := models.User{ID: "adm_2", Username: "adm_2", Email: "adm_2@example.com", Role: models.RoleAdmin}
	database.DB.Create(&admin)
	observer := models.User{ID: "adm_obs", Username: "adm_obs", Email: "adm_obs@example.com"}
	database.DB.Create(&observer)

	species := models.BirdSpecies{ID: "sp_used", Name: "Blue Jay", ScientificName: "Cyanocitta cristata"}
	database.DB.Create(&species)
	database.DB.Create(&models.Sighting{
		ID: "adm_s1", UserID: "adm_obs", BirdSpeciesID: "sp_used",
		SightingDate: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	})

	r := adminRouter("adm_2")
	w := adminRequest(t, r, "DELETE", "/admin/species/sp_used", nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	database.DB.Model(&models.BirdSpecies{}).Where("id = ?", "sp_used").Count(&count)
	assert.Equal(t, int64(1), count)

	// Once the last referencing sighting is gone, deletion goes through
	database.DB.Delete(&models.Sighting{}, "id = ?", "adm_s1")
	w2 := adminRequest(t, r, "DELETE", "/admin/species/sp_used", nil)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestAdminCreateVerse_DefaultsVersion(t *testing.T) {
	SetupTestDB()

	admin := models.User{ID: "adm_3", Username: "adm_3", Email: "adm_3@example.com", Role: models.RoleAdmin}
	database.DB.Create(&admin)

	r := adminRouter("adm_3")
	w := adminRequest(t, r, "POST", "/admin/verses", gin.H{
		"book":    "Psalms",
		"chapter": 104,
		"verse":   12,
		"text":    "Beside them the birds of the heavens dwell; they sing among the branches.",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var verse models.BibleVerse
	assert.NoError(t, database.DB.Where("book = ? AND chapter = ?", "Psalms", 104).First(&verse).Error)
	assert.Equal(t, "KJV", verse.Version)
}
