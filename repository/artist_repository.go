package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/camden-git/fyyur/models"
)

// ArtistRepository handles database operations for Artist entities
type ArtistRepository struct {
	DB *gorm.DB
}

// NewArtistRepository creates a new instance of ArtistRepository
func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{DB: db}
}

// Create inserts a new artist and fills in its ID
func (r *ArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	if err := r.DB.WithContext(ctx).Create(artist).Error; err != nil {
		return fmt.Errorf("failed to create artist %s: %w", artist.Name, err)
	}
	return nil
}

// GetByID retrieves an artist by its ID
func (r *ArtistRepository) GetByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.DB.WithContext(ctx).First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artist by ID %d: %w", id, err)
	}
	return &artist, nil
}

// ListAll retrieves all artists, ordered by name
func (r *ArtistRepository) ListAll(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// ListRecent retrieves the most recently created artists, newest first
func (r *ArtistRepository) ListRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent artists: %w", err)
	}
	return artists, nil
}

// Search retrieves artists whose name contains term, ignoring case
func (r *ArtistRepository) Search(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.DB.WithContext(ctx).Scopes(nameContains(term)).Order("name ASC").Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search artists for %q: %w", term, err)
	}
	return artists, nil
}

// Update overwrites every column of an existing artist
func (r *ArtistRepository) Update(ctx context.Context, artist *models.Artist) error {
	result := r.DB.WithContext(ctx).
		Model(&models.Artist{ID: artist.ID}).
		Select("*").Omit("id").
		Updates(artist)
	if result.Error != nil {
		return fmt.Errorf("failed to update artist ID %d: %w", artist.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether an artist with the given ID exists
func (r *ArtistRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Artist{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check artist ID %d: %w", id, err)
	}
	return count > 0, nil
}
