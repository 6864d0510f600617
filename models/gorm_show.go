package models

import (
	"time"

	"gorm.io/gorm"
)

// Show links one venue and one artist at a start time.
// It corresponds to the 'shows' table and has no identifier of its own.
type Show struct {
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	// Relationships, populated only when preloaded
	Venue  *Venue  `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"venue,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"artist,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Show) TableName() string {
	return "shows"
}

// BeforeSave stores start times in UTC so that ordering is consistent across drivers.
func (s *Show) BeforeSave(tx *gorm.DB) error {
	s.StartTime = s.StartTime.UTC()
	return nil
}

// IsPast reports whether the show started at or before now.
func (s Show) IsPast(now time.Time) bool {
	return !s.StartTime.After(now)
}
