package services

import (
	"sort"
	"time"

	"github.com/facette/natsort"

	"github.com/camden-git/fyyur/models"
)

// Listing is a venue or artist line on the index and search pages.
type Listing struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

// Area is a distinct (city, state) pair and the venues located there.
type Area struct {
	City   string
	State  string
	Venues []Listing
}

// GroupVenuesByArea places every venue in the area of its city and state.
// Areas are ordered by state, then city; venues keep their input order.
func GroupVenuesByArea(venues []models.Venue, upcoming map[uint]int) []Area {
	type key struct{ city, state string }
	index := make(map[key]int)
	var areas []Area
	for _, v := range venues {
		k := key{v.City, v.State}
		i, seen := index[k]
		if !seen {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, Listing{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return natsort.Compare(areas[i].State, areas[j].State)
		}
		return natsort.Compare(areas[i].City, areas[j].City)
	})
	return areas
}

// ShowView is a show as listed on a venue or artist page.
type ShowView struct {
	VenueID         uint
	VenueName       string
	VenueImageLink  string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

func showView(s models.Show) ShowView {
	v := ShowView{VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime}
	if s.Venue != nil {
		v.VenueName = s.Venue.Name
		v.VenueImageLink = s.Venue.ImageLink
	}
	if s.Artist != nil {
		v.ArtistName = s.Artist.Name
		v.ArtistImageLink = s.Artist.ImageLink
	}
	return v
}

// PartitionShows splits shows into those that started at or before now and those after it.
func PartitionShows(shows []models.Show, now time.Time) (past, upcoming []ShowView) {
	past = []ShowView{}
	upcoming = []ShowView{}
	for _, s := range shows {
		if s.IsPast(now) {
			past = append(past, showView(s))
		} else {
			upcoming = append(upcoming, showView(s))
		}
	}
	return past, upcoming
}
