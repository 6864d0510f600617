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

// VenuePage is a venue with its shows split around the current time.
type VenuePage struct {
	Venue              models.Venue
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

// VenueSubmission is a venue form together with the row it produced or came from.
type VenueSubmission struct {
	Form  forms.VenueForm
	Venue models.Venue
}

// VenueAreas returns every venue grouped by city and state.
func (s *DirectoryService) VenueAreas(ctx context.Context) Result[[]Area] {
	venues, err := s.venues.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list venues", zap.Error(err))
		return failed[[]Area](nil, err)
	}
	upcoming, err := s.shows.UpcomingByVenue(ctx, s.now())
	if err != nil {
		s.log.Error("failed to count upcoming shows by venue", zap.Error(err))
		return failed[[]Area](nil, err)
	}
	return ok(GroupVenuesByArea(venues, upcoming))
}

// VenueDetail returns a venue and its past and upcoming shows.
func (s *DirectoryService) VenueDetail(ctx context.Context, id uint) Result[VenuePage] {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return lookupFailed[VenuePage](s.log, "venue", id, err)
	}
	shows, err := s.shows.ListByVenue(ctx, id)
	if err != nil {
		s.log.Error("failed to list venue shows", zap.Uint("id", id), zap.Error(err))
		return failed(VenuePage{}, err)
	}
	past, upcoming := PartitionShows(shows, s.now())
	return ok(VenuePage{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// SearchVenues returns the venues whose name contains term, ignoring case.
func (s *DirectoryService) SearchVenues(ctx context.Context, term string) Result[SearchPage] {
	page := SearchPage{Term: term, Results: []Listing{}}
	venues, err := s.venues.Search(ctx, term)
	if err != nil {
		s.log.Error("failed to search venues", zap.String("term", term), zap.Error(err))
		return failed(page, err)
	}
	upcoming, err := s.shows.UpcomingByVenue(ctx, s.now())
	if err != nil {
		s.log.Error("failed to count upcoming shows by venue", zap.Error(err))
		return failed(page, err)
	}
	for _, v := range venues {
		page.Results = append(page.Results, Listing{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	page.Count = len(page.Results)
	return ok(page)
}

// VenueForEdit returns the edit form pre-populated from the stored venue.
func (s *DirectoryService) VenueForEdit(ctx context.Context, id uint) Result[VenueSubmission] {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return lookupFailed[VenueSubmission](s.log, "venue", id, err)
	}
	var form forms.VenueForm
	if err := copyInto(&form, venue); err != nil {
		return failed(VenueSubmission{Venue: *venue}, err)
	}
	return ok(VenueSubmission{Form: form, Venue: *venue})
}

// CreateVenue validates the submitted form and inserts a new venue.
func (s *DirectoryService) CreateVenue(ctx context.Context, values url.Values) Result[VenueSubmission] {
	form, errs := forms.ParseVenueForm(values)
	sub := VenueSubmission{Form: form}
	if !errs.Valid() {
		return invalid(sub, errs)
	}
	if err := copyInto(&sub.Venue, &form); err != nil {
		return failed(sub, err)
	}
	if err := s.venues.Create(ctx, &sub.Venue); err != nil {
		s.log.Error("failed to create venue", zap.String("name", form.Name), zap.Error(err))
		return failed(sub, err)
	}
	s.log.Info("venue created", zap.Uint("id", sub.Venue.ID), zap.String("name", sub.Venue.Name))
	return ok(sub)
}

// UpdateVenue validates the submitted form and overwrites the venue with it.
func (s *DirectoryService) UpdateVenue(ctx context.Context, id uint, values url.Values) Result[VenueSubmission] {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return lookupFailed[VenueSubmission](s.log, "venue", id, err)
	}
	form, errs := forms.ParseVenueForm(values)
	sub := VenueSubmission{Form: form, Venue: *venue}
	if !errs.Valid() {
		return invalid(sub, errs)
	}
	sub.Venue = models.Venue{ID: id}
	if err := copyInto(&sub.Venue, &form); err != nil {
		return failed(sub, err)
	}
	if err := s.venues.Update(ctx, &sub.Venue); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[VenueSubmission](err)
		}
		s.log.Error("failed to update venue", zap.Uint("id", id), zap.Error(err))
		return failed(sub, err)
	}
	s.log.Info("venue updated", zap.Uint("id", id))
	return ok(sub)
}

// DeleteVenue removes a venue and its shows. The value is the deleted venue's name.
func (s *DirectoryService) DeleteVenue(ctx context.Context, id uint) Result[string] {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return lookupFailed[string](s.log, "venue", id, err)
	}
	if err := s.venues.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[string](err)
		}
		s.log.Error("failed to delete venue", zap.Uint("id", id), zap.Error(err))
		return failed(venue.Name, err)
	}
	s.log.Info("venue deleted", zap.Uint("id", id), zap.String("name", venue.Name))
	return ok(venue.Name)
}
