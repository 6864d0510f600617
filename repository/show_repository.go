package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/camden-git/fyyur/database"
	"github.com/camden-git/fyyur/models"
)

// ShowRepository handles database operations for Show associations. Aggregate
// listings go through squirrel on the pool underneath the GORM handle.
type ShowRepository struct {
	DB      *gorm.DB
	Builder sq.StatementBuilderType
}

// NewShowRepository creates a new instance of ShowRepository
func NewShowRepository(db *gorm.DB, builder sq.StatementBuilderType) *ShowRepository {
	return &ShowRepository{DB: db, Builder: builder}
}

// Create inserts a new show
func (r *ShowRepository) Create(ctx context.Context, show *models.Show) error {
	if err := r.DB.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("failed to create show for venue %d and artist %d: %w", show.VenueID, show.ArtistID, err)
	}
	return nil
}

// ListAll retrieves every show with its venue and artist names, earliest first
func (r *ShowRepository) ListAll(ctx context.Context) ([]database.ShowListing, error) {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return database.ListShowListings(ctx, sqlDB, r.Builder)
}

// ListByVenue retrieves the shows booked at a venue with their artists preloaded
func (r *ShowRepository) ListByVenue(ctx context.Context, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.DB.WithContext(ctx).Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for venue ID %d: %w", venueID, err)
	}
	return shows, nil
}

// ListByArtist retrieves the shows an artist is booked for with their venues preloaded
func (r *ShowRepository) ListByArtist(ctx context.Context, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.DB.WithContext(ctx).Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for artist ID %d: %w", artistID, err)
	}
	return shows, nil
}

// UpcomingByVenue counts shows after now for each venue that has any
func (r *ShowRepository) UpcomingByVenue(ctx context.Context, now time.Time) (map[uint]int, error) {
	return r.countUpcoming(ctx, database.ByVenue, now)
}

// UpcomingByArtist counts shows after now for each artist that has any
func (r *ShowRepository) UpcomingByArtist(ctx context.Context, now time.Time) (map[uint]int, error) {
	return r.countUpcoming(ctx, database.ByArtist, now)
}

func (r *ShowRepository) countUpcoming(ctx context.Context, column string, now time.Time) (map[uint]int, error) {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return database.CountUpcomingShows(ctx, sqlDB, r.Builder, column, now)
}
