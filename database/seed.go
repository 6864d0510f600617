package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camden-git/fyyur/models"
)

type seedShow struct {
	venue  string
	artist string
	start  time.Time
}

func seedVenues() []models.Venue {
	return []models.Venue{
		{
			Name:               "The Musical Hop",
			Genres:             []string{"Jazz", "Reggae", "Classical", "Folk"},
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			WebsiteLink:        "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
		},
		{
			Name:         "The Dueling Pianos Bar",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			WebsiteLink:  "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
		},
	}
}

func seedArtists() []models.Artist {
	return []models.Artist{
		{
			Name:               "Guns N Petals",
			Genres:             []string{"Rock n Roll"},
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			WebsiteLink:        "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
		},
		{
			Name:         "Matt Quevedo",
			Genres:       []string{"Jazz"},
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
		},
		{
			Name:      "The Wild Sax Band",
			Genres:    []string{"Jazz", "Classical"},
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
		},
	}
}

func seedShows() []seedShow {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []seedShow{
		{venue: "The Musical Hop", artist: "Guns N Petals", start: at("2019-05-21T21:30:00Z")},
		{venue: "Park Square Live Music & Coffee", artist: "Matt Quevedo", start: at("2019-06-15T23:00:00Z")},
		{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: at("2035-04-01T20:00:00Z")},
		{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: at("2035-04-08T20:00:00Z")},
		{venue: "Park Square Live Music & Coffee", artist: "The Wild Sax Band", start: at("2035-04-15T20:00:00Z")},
	}
}

// SeedData inserts the sample venues, artists and shows. Rows that already exist (by
// name, or by venue/artist/start time for shows) are left alone, so it can be re-run.
func SeedData(db *gorm.DB, log *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		venueIDs := make(map[string]uint)
		for _, venue := range seedVenues() {
			if err := tx.Where(models.Venue{Name: venue.Name}).FirstOrCreate(&venue).Error; err != nil {
				return fmt.Errorf("failed to seed venue %s: %w", venue.Name, err)
			}
			venueIDs[venue.Name] = venue.ID
		}

		artistIDs := make(map[string]uint)
		for _, artist := range seedArtists() {
			if err := tx.Where(models.Artist{Name: artist.Name}).FirstOrCreate(&artist).Error; err != nil {
				return fmt.Errorf("failed to seed artist %s: %w", artist.Name, err)
			}
			artistIDs[artist.Name] = artist.ID
		}

		created := 0
		for _, s := range seedShows() {
			show := models.Show{VenueID: venueIDs[s.venue], ArtistID: artistIDs[s.artist], StartTime: s.start}
			var n int64
			if err := tx.Model(&models.Show{}).
				Where("venue_id = ? AND artist_id = ? AND start_time = ?", show.VenueID, show.ArtistID, show.StartTime.UTC()).
				Count(&n).Error; err != nil {
				return fmt.Errorf("failed to look up seed show: %w", err)
			}
			if n > 0 {
				continue
			}
			if err := tx.Create(&show).Error; err != nil {
				return fmt.Errorf("failed to seed show %s / %s: %w", s.venue, s.artist, err)
			}
			created++
		}

		log.Info("seed data applied",
			zap.Int("venues", len(venueIDs)),
			zap.Int("artists", len(artistIDs)),
			zap.Int("new_shows", created))
		return nil
	})
}
