package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/camden-git/fyyur/models"
)

// VenueRepository handles database operations for Venue entities
type VenueRepository struct {
	DB *gorm.DB
}

// NewVenueRepository creates a new instance of VenueRepository
func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{DB: db}
}

// Create inserts a new venue and fills in its ID
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	if err := r.DB.WithContext(ctx).Create(venue).Error; err != nil {
		return fmt.Errorf("failed to create venue %s: %w", venue.Name, err)
	}
	return nil
}

// GetByID retrieves a venue by its ID
func (r *VenueRepository) GetByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.DB.WithContext(ctx).First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get venue by ID %d: %w", id, err)
	}
	return &venue, nil
}

// ListAll retrieves every venue ordered by state, city and name
func (r *VenueRepository) ListAll(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.DB.WithContext(ctx).Order("state ASC").Order("city ASC").Order("name ASC").Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

// ListRecent retrieves the most recently created venues, newest first
func (r *VenueRepository) ListRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent venues: %w", err)
	}
	return venues, nil
}

// Search retrieves venues whose name contains term, ignoring case
func (r *VenueRepository) Search(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.DB.WithContext(ctx).Scopes(nameContains(term)).Order("name ASC").Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search venues for %q: %w", term, err)
	}
	return venues, nil
}

// Update overwrites every column of an existing venue
func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	result := r.DB.WithContext(ctx).
		Model(&models.Venue{ID: venue.ID}).
		Select("*").Omit("id").
		Updates(venue)
	if result.Error != nil {
		return fmt.Errorf("failed to update venue ID %d: %w", venue.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a venue and every show booked there in one transaction
func (r *VenueRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return fmt.Errorf("failed to delete shows for venue ID %d: %w", id, err)
		}
		result := tx.Delete(&models.Venue{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete venue ID %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Exists reports whether a venue with the given ID exists
func (r *VenueRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Venue{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check venue ID %d: %w", id, err)
	}
	return count > 0, nil
}
