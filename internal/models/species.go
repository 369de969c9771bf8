package models

import "time"

// BirdSpecies is de-duplicated by scientific name: the first sighting of a
// species creates the row, later sightings reference it.
type BirdSpecies struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name           string   `json:"name"`
	ScientificName string   `gorm:"uniqueIndex" json:"scientificName"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	Confidence     *float64 `json:"confidence,omitempty"`
}

func (BirdSpecies) TableName() string {
	return "bird_species"
}
