package models

import "time"

// Sighting is one user-logged observation. SightingDate is a full timestamp,
// not a calendar date: the time-of-day badges need the observer's wall-clock
// hour and weekday, so clients send RFC3339 with their local UTC offset.
type Sighting struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID        string `gorm:"index;type:text" json:"user_id"`
	BirdSpeciesID string `gorm:"index;type:text" json:"bird_species_id"`

	SightingDate time.Time `gorm:"index" json:"sighting_date"`
	Location     string    `json:"location"`
	Notes        string    `json:"notes"`
	ImageURL     string    `json:"image_url"`

	Species *BirdSpecies `gorm:"foreignKey:BirdSpeciesID" json:"species,omitempty"`
	User    User         `gorm:"foreignKey:UserID" json:"-"`
}

func (Sighting) TableName() string {
	return "user_sightings"
}
