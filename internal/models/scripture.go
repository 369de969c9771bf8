package models

import "time"

type BibleVerse struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Book    string `gorm:"index" json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
	Version string `gorm:"default:'KJV'" json:"version"`
}

// OverlaySettings mirrors the editor's text-placement state. The backend
// treats it as an opaque blob and stores it as JSON.
type OverlaySettings struct {
	TextX             float64 `json:"textX"`
	TextY             float64 `json:"textY"`
	FontSize          int     `json:"fontSize"`
	FontFamily        string  `json:"fontFamily"`
	FontWeight        string  `json:"fontWeight"`
	TextColor         string  `json:"textColor"`
	BackgroundColor   string  `json:"backgroundColor,omitempty"`
	BackgroundOpacity float64 `json:"backgroundOpacity"`
	TextAlign         string  `json:"textAlign"`
	MaxWidth          float64 `json:"maxWidth"`
	Padding           float64 `json:"padding"`
	BorderRadius      float64 `json:"borderRadius"`
}

// ScriptureOverlay pairs a photo with either a catalog verse or free text.
type ScriptureOverlay struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID           string  `gorm:"index;type:text" json:"user_id"`
	Title            string  `json:"title"`
	OriginalImageURL string  `json:"original_image_url"`
	EditedImageURL   string  `json:"edited_image_url"`
	VerseID          *string `gorm:"type:text" json:"verse_id,omitempty"`
	CustomVerseText  string  `json:"custom_verse_text"`
	OverlaySettings  string  `gorm:"type:text" json:"overlay_settings"`

	Verse *BibleVerse `gorm:"foreignKey:VerseID" json:"verse,omitempty"`
	User  User        `gorm:"foreignKey:UserID" json:"-"`
}
