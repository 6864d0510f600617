package models

// Artist represents a performer who can be booked at venues.
// It corresponds to the 'artists' table.
type Artist struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string   `gorm:"not null" json:"name"`
	City               string   `gorm:"size:120" json:"city"`
	State              string   `gorm:"size:120" json:"state"`
	Phone              string   `gorm:"size:120" json:"phone"`
	ImageLink          string   `gorm:"size:500" json:"image_link"`
	FacebookLink       string   `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string   `gorm:"size:120" json:"website_link"`
	SeekingVenue       bool     `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string   `gorm:"size:500" json:"seeking_description"`
	Genres             []string `gorm:"serializer:json" json:"genres"`
}

// TableName explicitly sets the table name for GORM.
func (Artist) TableName() string {
	return "artists"
}
