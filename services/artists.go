package services

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/camden-git/fyyur/forms"
	"github.com/camden-git/fyyur/models"
	"github.com/camden-git/fyyur/repository"
)

// ArtistPage is an artist with its shows split around the current time.
type ArtistPage struct {
	Artist             models.Artist
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

// ArtistSubmission is an artist form together with the row it produced or came from.
type ArtistSubmission struct {
	Form   forms.ArtistForm
	Artist models.Artist
}

// ArtistIndex returns every artist ordered by name.
func (s *DirectoryService) ArtistIndex(ctx context.Context) Result[[]Listing] {
	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list artists", zap.Error(err))
		return failed[[]Listing](nil, err)
	}
	listings := make([]Listing, 0, len(artists))
	for _, a := range artists {
		listings = append(listings, Listing{ID: a.ID, Name: a.Name})
	}
	return ok(listings)
}

// ArtistDetail returns an artist and its past and upcoming shows.
func (s *DirectoryService) ArtistDetail(ctx context.Context, id uint) Result[ArtistPage] {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return lookupFailed[ArtistPage](s.log, "artist", id, err)
	}
	shows, err := s.shows.ListByArtist(ctx, id)
	if err != nil {
		s.log.Error("failed to list artist shows", zap.Uint("id", id), zap.Error(err))
		return failed(ArtistPage{}, err)
	}
	past, upcoming := PartitionShows(shows, s.now())
	return ok(ArtistPage{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// SearchArtists returns the artists whose name contains term, ignoring case.
func (s *DirectoryService) SearchArtists(ctx context.Context, term string) Result[SearchPage] {
	page := SearchPage{Term: term, Results: []Listing{}}
	artists, err := s.artists.Search(ctx, term)
	if err != nil {
		s.log.Error("failed to search artists", zap.String("term", term), zap.Error(err))
		return failed(page, err)
	}
	upcoming, err := s.shows.UpcomingByArtist(ctx, s.now())
	if err != nil {
		s.log.Error("failed to count upcoming shows by artist", zap.Error(err))
		return failed(page, err)
	}
	for _, a := range artists {
		page.Results = append(page.Results, Listing{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]})
	}
	page.Count = len(page.Results)
	return ok(page)
}

// ArtistForEdit returns the edit form pre-populated from the stored artist.
func (s *DirectoryService) ArtistForEdit(ctx context.Context, id uint) Result[ArtistSubmission] {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return lookupFailed[ArtistSubmission](s.log, "artist", id, err)
	}
	var form forms.ArtistForm
	if err := copyInto(&form, artist); err != nil {
		return failed(ArtistSubmission{Artist: *artist}, err)
	}
	return ok(ArtistSubmission{Form: form, Artist: *artist})
}

// CreateArtist validates the submitted form and inserts a new artist.
func (s *DirectoryService) CreateArtist(ctx context.Context, values url.Values) Result[ArtistSubmission] {
	form, errs := forms.ParseArtistForm(values)
	sub := ArtistSubmission{Form: form}
	if !errs.Valid() {
		return invalid(sub, errs)
	}
	if err := copyInto(&sub.Artist, &form); err != nil {
		return failed(sub, err)
	}
	if err := s.artists.Create(ctx, &sub.Artist); err != nil {
		s.log.Error("failed to create artist", zap.String("name", form.Name), zap.Error(err))
		return failed(sub, err)
	}
	s.log.Info("artist created", zap.Uint("id", sub.Artist.ID), zap.String("name", sub.Artist.Name))
	return ok(sub)
}

// UpdateArtist validates the submitted form and overwrites the artist with it.
func (s *DirectoryService) UpdateArtist(ctx context.Context, id uint, values url.Values) Result[ArtistSubmission] {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return lookupFailed[ArtistSubmission](s.log, "artist", id, err)
	}
	form, errs := forms.ParseArtistForm(values)
	sub := ArtistSubmission{Form: form, Artist: *artist}
	if !errs.Valid() {
		return invalid(sub, errs)
	}
	sub.Artist = models.Artist{ID: id}
	if err := copyInto(&sub.Artist, &form); err != nil {
		return failed(sub, err)
	}
	if err := s.artists.Update(ctx, &sub.Artist); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[ArtistSubmission](err)
		}
		s.log.Error("failed to update artist", zap.Uint("id", id), zap.Error(err))
		return failed(sub, err)
	}
	s.log.Info("artist updated", zap.Uint("id", id))
	return ok(sub)
}
