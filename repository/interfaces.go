package repository

import (
	"context"
	"time"

	"github.com/camden-git/fyyur/database"
	"github.com/camden-git/fyyur/models"
)

// VenueRepositoryInterface defines the methods for venue data operations
type VenueRepositoryInterface interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id uint) (*models.Venue, error)
	ListAll(ctx context.Context) ([]models.Venue, error)
	ListRecent(ctx context.Context, limit int) ([]models.Venue, error)
	Search(ctx context.Context, term string) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// ArtistRepositoryInterface defines the methods for artist data operations.
// Artists have no delete path.
type ArtistRepositoryInterface interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id uint) (*models.Artist, error)
	ListAll(ctx context.Context) ([]models.Artist, error)
	ListRecent(ctx context.Context, limit int) ([]models.Artist, error)
	Search(ctx context.Context, term string) ([]models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// ShowRepositoryInterface defines the methods for show data operations
type ShowRepositoryInterface interface {
	Create(ctx context.Context, show *models.Show) error
	ListAll(ctx context.Context) ([]database.ShowListing, error)
	ListByVenue(ctx context.Context, venueID uint) ([]models.Show, error)
	ListByArtist(ctx context.Context, artistID uint) ([]models.Show, error)

	// upcoming show counts keyed by venue or artist id
	UpcomingByVenue(ctx context.Context, now time.Time) (map[uint]int, error)
	UpcomingByArtist(ctx context.Context, now time.Time) (map[uint]int, error)
}
