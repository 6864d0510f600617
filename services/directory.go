// Package services orchestrates form validation and persistence for the venue,
// artist and show directory. Handlers receive a Result and decide what to render.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	"github.com/camden-git/fyyur/models"
	"github.com/camden-git/fyyur/repository"
)

// RecentLimit is how many venues and artists the home page lists.
const RecentLimit = 10

// DirectoryService is the single entry point handlers use to read and change the directory.
type DirectoryService struct {
	venues  repository.VenueRepositoryInterface
	artists repository.ArtistRepositoryInterface
	shows   repository.ShowRepositoryInterface
	log     *zap.Logger
	now     func() time.Time
}

// NewDirectoryService creates a DirectoryService over the given repositories.
func NewDirectoryService(
	venues repository.VenueRepositoryInterface,
	artists repository.ArtistRepositoryInterface,
	shows repository.ShowRepositoryInterface,
	log *zap.Logger,
) *DirectoryService {
	return &DirectoryService{
		venues:  venues,
		artists: artists,
		shows:   shows,
		log:     log.Named("directory"),
		now:     time.Now,
	}
}

// WithClock replaces the clock used to split past and upcoming shows.
func (s *DirectoryService) WithClock(now func() time.Time) *DirectoryService {
	s.now = now
	return s
}

// Now returns the service clock's current time.
func (s *DirectoryService) Now() time.Time {
	return s.now()
}

// HomePage lists the newest venues and artists.
type HomePage struct {
	Venues  []models.Venue
	Artists []models.Artist
}

// Home returns the most recently created venues and artists, newest first.
func (s *DirectoryService) Home(ctx context.Context) Result[HomePage] {
	venues, err := s.venues.ListRecent(ctx, RecentLimit)
	if err != nil {
		s.log.Error("failed to load recent venues", zap.Error(err))
		return failed(HomePage{}, err)
	}
	artists, err := s.artists.ListRecent(ctx, RecentLimit)
	if err != nil {
		s.log.Error("failed to load recent artists", zap.Error(err))
		return failed(HomePage{}, err)
	}
	return ok(HomePage{Venues: venues, Artists: artists})
}

// SearchPage is the result of a name search.
type SearchPage struct {
	Term    string
	Count   int
	Results []Listing
}

// lookupFailed maps a repository error to not-found or failed.
func lookupFailed[T any](log *zap.Logger, what string, id uint, err error) Result[T] {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound[T](err)
	}
	log.Error("failed to load "+what, zap.Uint("id", id), zap.Error(err))
	var zero T
	return failed(zero, err)
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true})
}
