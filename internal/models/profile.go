package models

import (
	"time"

	"github.com/lib/pq"
)

// Profile holds per-user app state, most importantly the earned badge ids.
// Badge ids are append-only: the badge engine only ever adds entries, never
// removes or reorders them.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID      string `gorm:"uniqueIndex;type:text" json:"user_id"`
	DisplayName string `json:"display_name"`

	Badges pq.StringArray `gorm:"type:text[]" json:"badges"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
