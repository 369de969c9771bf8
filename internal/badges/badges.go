// Package badges holds the achievement catalog and the evaluation types it
// operates on. Definitions are fixed at compile time; earned state lives on
// models.Profile.Badges as an append-only list of ids.
package badges

import (
	"time"

	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
)

// BirdInfo is the species view a predicate sees for one sighting. When the
// linked species row is missing, Name and ScientificName fall back to
// "Unknown" rather than failing evaluation.
type BirdInfo struct {
	Name           string   `json:"name"`
	ScientificName string   `json:"scientificName"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Confidence     *float64 `json:"confidence,omitempty"`
}

// Sighting is the evaluation-time shape of a user sighting, with the species
// record already joined in.
type Sighting struct {
	ID       string    `json:"id"`
	Bird     BirdInfo  `json:"birdInfo"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
}

// Predicate decides whether a badge's condition holds. It must be pure:
// deterministic over its inputs, no side effects. allSightings is the user's
// complete history including newSighting itself.
type Predicate func(profile *models.Profile, allSightings []Sighting, newSighting Sighting) bool

// Definition is one entry of the badge catalog.
type Definition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	// IsSecret hides title and description until the badge is earned.
	IsSecret bool `json:"isSecret"`

	Predicate Predicate `json:"-"`
}
