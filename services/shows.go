package services

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/camden-git/fyyur/database"
	"github.com/camden-git/fyyur/forms"
	"github.com/camden-git/fyyur/models"
)

// ShowSubmission is a show form together with the row it produced.
type ShowSubmission struct {
	Form forms.ShowForm
	Show models.Show
}

// ShowChoices are the venues and artists a new show can be booked between.
type ShowChoices struct {
	Venues  []models.Venue
	Artists []models.Artist
}

// ListShows returns every show with its venue and artist, earliest first.
func (s *DirectoryService) ListShows(ctx context.Context) Result[[]database.ShowListing] {
	listings, err := s.shows.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list shows", zap.Error(err))
		return failed[[]database.ShowListing](nil, err)
	}
	return ok(listings)
}

// ShowChoices returns the venues and artists offered on the show form.
func (s *DirectoryService) ShowChoices(ctx context.Context) Result[ShowChoices] {
	venues, err := s.venues.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list venues for show form", zap.Error(err))
		return failed(ShowChoices{}, err)
	}
	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list artists for show form", zap.Error(err))
		return failed(ShowChoices{}, err)
	}
	return ok(ShowChoices{Venues: venues, Artists: artists})
}

// NewShowForm returns a blank show form starting now.
func (s *DirectoryService) NewShowForm() forms.ShowForm {
	return forms.NewShowForm(s.now())
}

// CreateShow validates the submitted form, checks that the venue and artist
// exist and inserts the show.
func (s *DirectoryService) CreateShow(ctx context.Context, values url.Values) Result[ShowSubmission] {
	form, errs := forms.ParseShowForm(values)
	sub := ShowSubmission{Form: form}
	if !errs.Valid() {
		return invalid(sub, errs)
	}

	venueExists, err := s.venues.Exists(ctx, form.VenueID)
	if err != nil {
		s.log.Error("failed to check show venue", zap.Uint("venue_id", form.VenueID), zap.Error(err))
		return failed(sub, err)
	}
	if !venueExists {
		errs.Add("venue_id", "No venue with this ID exists.")
	}
	artistExists, err := s.artists.Exists(ctx, form.ArtistID)
	if err != nil {
		s.log.Error("failed to check show artist", zap.Uint("artist_id", form.ArtistID), zap.Error(err))
		return failed(sub, err)
	}
	if !artistExists {
		errs.Add("artist_id", "No artist with this ID exists.")
	}
	if !errs.Valid() {
		return invalid(sub, errs)
	}

	sub.Show = models.Show{VenueID: form.VenueID, ArtistID: form.ArtistID, StartTime: form.Start}
	if err := s.shows.Create(ctx, &sub.Show); err != nil {
		s.log.Error("failed to create show",
			zap.Uint("venue_id", form.VenueID),
			zap.Uint("artist_id", form.ArtistID),
			zap.Error(err))
		return failed(sub, err)
	}
	s.log.Info("show created",
		zap.Uint("venue_id", sub.Show.VenueID),
		zap.Uint("artist_id", sub.Show.ArtistID),
		zap.Time("start_time", sub.Show.StartTime))
	return ok(sub)
}
