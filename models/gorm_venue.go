package models

// Venue represents a place hosting shows.
// It corresponds to the 'venues' table.
type Venue struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string   `gorm:"not null" json:"name"`
	City               string   `gorm:"size:120" json:"city"`
	State              string   `gorm:"size:120" json:"state"`
	Address            string   `gorm:"size:120" json:"address"`
	Phone              string   `gorm:"size:120" json:"phone"`
	ImageLink          string   `gorm:"size:500" json:"image_link"`
	FacebookLink       string   `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string   `gorm:"size:120" json:"website_link"`
	SeekingTalent      bool     `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string   `gorm:"size:500" json:"seeking_description"`
	Genres             []string `gorm:"serializer:json" json:"genres"` // order preserved
}

// TableName explicitly sets the table name for GORM.
func (Venue) TableName() string {
	return "venues"
}
