package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camden-git/fyyur/config"
	"github.com/camden-git/fyyur/database"
	"github.com/camden-git/fyyur/models"
	"github.com/camden-git/fyyur/repository"
)

var testNow = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*DirectoryService, *gorm.DB) {
	t.Helper()
	cfg := config.Config{
		Env:            "test",
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    database.MemoryURL(t.Name()),
		MaxOpenConns:   1,
		MaxIdleConns:   1,
	}
	db, err := database.InitGormDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrateModels(db))
	require.NoError(t, database.SeedData(db, zap.NewNop()))

	svc := NewDirectoryService(
		repository.NewVenueRepository(db),
		repository.NewArtistRepository(db),
		repository.NewShowRepository(db, database.StatementBuilder(config.DriverSQLite)),
		zap.NewNop(),
	).WithClock(func() time.Time { return testNow })
	return svc, db
}

func venueID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	var v models.Venue
	require.NoError(t, db.Where("name = ?", name).First(&v).Error)
	return v.ID
}

func artistID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	var a models.Artist
	require.NoError(t, db.Where("name = ?", name).First(&a).Error)
	return a.ID
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func validVenueValues() url.Values {
	return url.Values{
		"name":                {"The Blue Note"},
		"city":                {"New York"},
		"state":               {"NY"},
		"address":             {"131 W 3rd St"},
		"phone":               {"212-475-8592"},
		"image_link":          {"https://example.com/bluenote.jpg"},
		"genres":              {"Jazz", "Blues"},
		"facebook_link":       {"https://www.facebook.com/bluenote"},
		"website_link":        {"https://www.bluenote.net"},
		"seeking_talent":      {"y"},
		"seeking_description": {"Looking for trios."},
	}
}

func TestGroupVenuesByArea(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, Name: "A", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "B", City: "New York", State: "NY"},
		{ID: 3, Name: "C", City: "San Francisco", State: "CA"},
		{ID: 4, Name: "D", City: "Oakland", State: "CA"},
		{ID: 5, Name: "E", City: "Portland", State: "ME"},
		{ID: 6, Name: "F", City: "Portland", State: "OR"},
	}
	areas := GroupVenuesByArea(venues, map[uint]int{3: 2})

	var order []string
	seen := make(map[uint]int)
	for _, a := range areas {
		order = append(order, a.City+", "+a.State)
		for _, v := range a.Venues {
			seen[v.ID]++
			for _, orig := range venues {
				if orig.ID == v.ID {
					assert.Equal(t, orig.City, a.City)
					assert.Equal(t, orig.State, a.State)
				}
			}
		}
	}
	assert.Equal(t, []string{"Oakland, CA", "San Francisco, CA", "Portland, ME", "New York, NY", "Portland, OR"}, order)
	require.Len(t, seen, len(venues))
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %d must be in exactly one area", id)
	}
	assert.Equal(t, []Listing{{ID: 1, Name: "A"}, {ID: 3, Name: "C", NumUpcomingShows: 2}}, areas[1].Venues)

	assert.Empty(t, GroupVenuesByArea(nil, nil))
}

func TestPartitionShows(t *testing.T) {
	shows := []models.Show{
		{VenueID: 1, ArtistID: 1, StartTime: testNow.Add(-time.Hour)},
		{VenueID: 1, ArtistID: 2, StartTime: testNow},
		{VenueID: 1, ArtistID: 3, StartTime: testNow.Add(time.Minute), Artist: &models.Artist{Name: "Late"}},
	}
	past, upcoming := PartitionShows(shows, testNow)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 1)
	for _, s := range past {
		assert.False(t, s.StartTime.After(testNow))
	}
	assert.True(t, upcoming[0].StartTime.After(testNow))
	assert.Equal(t, "Late", upcoming[0].ArtistName)

	past, upcoming = PartitionShows(nil, testNow)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
}

func TestHome(t *testing.T) {
	svc, _ := newTestService(t)
	res := svc.Home(context.Background())
	require.True(t, res.OK())
	require.Len(t, res.Value.Venues, 3)
	require.Len(t, res.Value.Artists, 3)
	assert.Equal(t, "Park Square Live Music & Coffee", res.Value.Venues[0].Name)
	assert.Equal(t, "The Wild Sax Band", res.Value.Artists[0].Name)
}

func TestVenueAreas(t *testing.T) {
	svc, _ := newTestService(t)
	res := svc.VenueAreas(context.Background())
	require.True(t, res.OK())
	require.Len(t, res.Value, 2)
	assert.Equal(t, "San Francisco", res.Value[0].City)
	assert.Equal(t, []Listing{
		{ID: res.Value[0].Venues[0].ID, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 3},
		{ID: res.Value[0].Venues[1].ID, Name: "The Musical Hop"},
	}, res.Value[0].Venues)
	assert.Equal(t, "New York", res.Value[1].City)
}

func TestSearchVenues(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	names := func(p SearchPage) []string {
		var out []string
		for _, r := range p.Results {
			out = append(out, r.Name)
		}
		return out
	}

	res := svc.SearchVenues(ctx, "Hop")
	require.True(t, res.OK())
	assert.Equal(t, []string{"The Musical Hop"}, names(res.Value))
	assert.Equal(t, "Hop", res.Value.Term)

	res = svc.SearchVenues(ctx, "Music")
	require.True(t, res.OK())
	assert.Equal(t, 2, res.Value.Count)
	assert.Equal(t, []string{"Park Square Live Music & Coffee", "The Musical Hop"}, names(res.Value))
	assert.Equal(t, 3, res.Value.Results[0].NumUpcomingShows)

	res = svc.SearchVenues(ctx, "")
	require.True(t, res.OK())
	assert.Equal(t, 3, res.Value.Count)

	artists := svc.SearchArtists(ctx, "A")
	require.True(t, artists.OK())
	assert.Equal(t, []string{"Guns N Petals", "Matt Quevedo", "The Wild Sax Band"}, names(artists.Value))
}

func TestVenueDetailPartitionsShows(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res := svc.VenueDetail(ctx, venueID(t, db, "Park Square Live Music & Coffee"))
	require.True(t, res.OK())
	assert.Equal(t, 1, res.Value.PastShowsCount)
	assert.Equal(t, 3, res.Value.UpcomingShowsCount)
	assert.Len(t, res.Value.PastShows, res.Value.PastShowsCount)
	assert.Len(t, res.Value.UpcomingShows, res.Value.UpcomingShowsCount)
	assert.Equal(t, "Matt Quevedo", res.Value.PastShows[0].ArtistName)

	missing := svc.VenueDetail(ctx, 9999)
	assert.Equal(t, StatusNotFound, missing.Status)
	assert.ErrorIs(t, missing.Err, repository.ErrNotFound)
}

func TestArtistDetailPartitionsShows(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res := svc.ArtistDetail(ctx, artistID(t, db, "The Wild Sax Band"))
	require.True(t, res.OK())
	assert.Zero(t, res.Value.PastShowsCount)
	assert.Equal(t, 3, res.Value.UpcomingShowsCount)
	assert.Equal(t, "Park Square Live Music & Coffee", res.Value.UpcomingShows[0].VenueName)

	assert.Equal(t, StatusNotFound, svc.ArtistDetail(ctx, 9999).Status)
}

func TestCreateVenueWithoutNameCreatesNothing(t *testing.T) {
	svc, db := newTestService(t)
	before := countRows(t, db, &models.Venue{})

	values := validVenueValues()
	values.Del("name")
	res := svc.CreateVenue(context.Background(), values)

	assert.Equal(t, StatusInvalid, res.Status)
	assert.True(t, res.Errors.Has("name"))
	assert.Equal(t, "New York", res.Value.Form.City, "submitted values are kept for redisplay")
	assert.Equal(t, before, countRows(t, db, &models.Venue{}))
}

func TestCreateVenueStoresSubmittedFields(t *testing.T) {
	svc, db := newTestService(t)
	before := countRows(t, db, &models.Venue{})

	res := svc.CreateVenue(context.Background(), validVenueValues())
	require.True(t, res.OK(), "status %s: %v", res.Status, res.Errors)
	assert.Equal(t, before+1, countRows(t, db, &models.Venue{}))

	var stored models.Venue
	require.NoError(t, db.First(&stored, res.Value.Venue.ID).Error)
	want := models.Venue{
		ID:                 res.Value.Venue.ID,
		Name:               "The Blue Note",
		City:               "New York",
		State:              "NY",
		Address:            "131 W 3rd St",
		Phone:              "212-475-8592",
		ImageLink:          "https://example.com/bluenote.jpg",
		FacebookLink:       "https://www.facebook.com/bluenote",
		WebsiteLink:        "https://www.bluenote.net",
		SeekingTalent:      true,
		SeekingDescription: "Looking for trios.",
		Genres:             []string{"Jazz", "Blues"},
	}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("stored venue mismatch (-want +got):\n%s", diff)
	}
}

func TestVenueForEditAndUpdate(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	id := venueID(t, db, "The Dueling Pianos Bar")

	edit := svc.VenueForEdit(ctx, id)
	require.True(t, edit.OK())
	assert.Equal(t, "The Dueling Pianos Bar", edit.Value.Form.Name)
	assert.Equal(t, []string{"Classical", "R&B", "Hip-Hop"}, edit.Value.Form.Genres)

	values := validVenueValues()
	values.Del("phone")
	res := svc.UpdateVenue(ctx, id, values)
	require.True(t, res.OK(), "status %s: %v", res.Status, res.Errors)

	var stored models.Venue
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "The Blue Note", stored.Name)
	assert.Empty(t, stored.Phone)

	values.Set("state", "XX")
	assert.Equal(t, StatusInvalid, svc.UpdateVenue(ctx, id, values).Status)
	assert.Equal(t, StatusNotFound, svc.UpdateVenue(ctx, 9999, values).Status)
	assert.Equal(t, StatusNotFound, svc.VenueForEdit(ctx, 9999).Status)
}

func TestUpdateReplacesGenres(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	hop := venueID(t, db, "The Musical Hop")
	values := validVenueValues()
	values["genres"] = []string{"Blues"}
	require.True(t, svc.UpdateVenue(ctx, hop, values).OK())

	var venue models.Venue
	require.NoError(t, db.First(&venue, hop).Error)
	assert.Equal(t, []string{"Blues"}, venue.Genres)

	sax := artistID(t, db, "The Wild Sax Band")
	res := svc.UpdateArtist(ctx, sax, url.Values{
		"name":   {"The Wild Sax Band"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Folk"},
	})
	require.True(t, res.OK(), "status %s: %v", res.Status, res.Errors)

	var artist models.Artist
	require.NoError(t, db.First(&artist, sax).Error)
	assert.Equal(t, []string{"Folk"}, artist.Genres)
	assert.Empty(t, artist.Phone)
}

func TestUpdateArtistTouchesOnlyTarget(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	id := artistID(t, db, "Matt Quevedo")

	var before []models.Artist
	require.NoError(t, db.Order("id").Find(&before).Error)

	res := svc.UpdateArtist(ctx, id, url.Values{
		"name":                {"Matt Quevedo Quartet"},
		"city":                {"Chicago"},
		"state":               {"IL"},
		"genres":              {"Jazz", "Soul"},
		"seeking_venue":       {"y"},
		"seeking_description": {"Touring the Midwest."},
	})
	require.True(t, res.OK(), "status %s: %v", res.Status, res.Errors)

	var after []models.Artist
	require.NoError(t, db.Order("id").Find(&after).Error)
	require.Len(t, after, len(before))
	for i := range after {
		if after[i].ID != id {
			assert.Equal(t, before[i], after[i])
			continue
		}
		assert.Equal(t, "Matt Quevedo Quartet", after[i].Name)
		assert.Equal(t, "IL", after[i].State)
		assert.Equal(t, []string{"Jazz", "Soul"}, after[i].Genres)
		assert.True(t, after[i].SeekingVenue)
		assert.Empty(t, after[i].FacebookLink)
	}
}

func TestCreateArtist(t *testing.T) {
	svc, db := newTestService(t)
	before := countRows(t, db, &models.Artist{})

	res := svc.CreateArtist(context.Background(), url.Values{
		"name":   {"Nina Ray"},
		"city":   {"Austin"},
		"state":  {"TX"},
		"genres": {"Country"},
	})
	require.True(t, res.OK(), "status %s: %v", res.Status, res.Errors)
	assert.NotZero(t, res.Value.Artist.ID)
	assert.Equal(t, before+1, countRows(t, db, &models.Artist{}))

	bad := svc.CreateArtist(context.Background(), url.Values{"name": {"No Genres"}})
	assert.Equal(t, StatusInvalid, bad.Status)
	assert.Equal(t, before+1, countRows(t, db, &models.Artist{}))

	index := svc.ArtistIndex(context.Background())
	require.True(t, index.OK())
	assert.Len(t, index.Value, int(before+1))
}

func TestDeleteVenue(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	id := venueID(t, db, "Park Square Live Music & Coffee")

	res := svc.DeleteVenue(ctx, id)
	require.True(t, res.OK())
	assert.Equal(t, "Park Square Live Music & Coffee", res.Value)

	var shows int64
	require.NoError(t, db.Model(&models.Show{}).Where("venue_id = ?", id).Count(&shows).Error)
	assert.Zero(t, shows)
	assert.Equal(t, StatusNotFound, svc.VenueDetail(ctx, id).Status)

	again := svc.DeleteVenue(ctx, id)
	assert.Equal(t, StatusNotFound, again.Status)
	assert.False(t, again.OK())
}

func TestCreateShow(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	venue := venueID(t, db, "The Musical Hop")
	artist := artistID(t, db, "Matt Quevedo")
	before := countRows(t, db, &models.Show{})

	res := svc.CreateShow(ctx, url.Values{
		"venue_id":   {"9999"},
		"artist_id":  {"9998"},
		"start_time": {"2036-01-01 20:00"},
	})
	assert.Equal(t, StatusInvalid, res.Status)
	assert.True(t, res.Errors.Has("venue_id"))
	assert.True(t, res.Errors.Has("artist_id"))
	assert.Equal(t, before, countRows(t, db, &models.Show{}))

	res = svc.CreateShow(ctx, url.Values{
		"venue_id":   {"1"},
		"artist_id":  {"2"},
		"start_time": {"not a date"},
	})
	assert.Equal(t, StatusInvalid, res.Status)
	assert.True(t, res.Errors.Has("start_time"))

	res = svc.CreateShow(ctx, url.Values{
		"venue_id":   {uintString(venue)},
		"artist_id":  {uintString(artist)},
		"start_time": {"2036-01-01T20:00"},
	})
	require.True(t, res.OK(), "status %s: %v", res.Status, res.Errors)
	assert.Equal(t, before+1, countRows(t, db, &models.Show{}))

	listings := svc.ListShows(ctx)
	require.True(t, listings.OK())
	last := listings.Value[len(listings.Value)-1]
	assert.Equal(t, "The Musical Hop", last.VenueName)
	assert.Equal(t, "Matt Quevedo", last.ArtistName)

	choices := svc.ShowChoices(ctx)
	require.True(t, choices.OK())
	assert.Len(t, choices.Value.Venues, 3)
	assert.Len(t, choices.Value.Artists, 3)

	assert.Equal(t, "2026-01-01 00:00:00", svc.NewShowForm().StartTime)
}

type failingVenues struct {
	repository.VenueRepositoryInterface
}

func (failingVenues) Create(context.Context, *models.Venue) error {
	return errors.New("disk full")
}

func TestCreateVenuePersistenceFailure(t *testing.T) {
	svc, db := newTestService(t)
	svc.venues = failingVenues{svc.venues}
	before := countRows(t, db, &models.Venue{})

	res := svc.CreateVenue(context.Background(), validVenueValues())
	assert.Equal(t, StatusFailed, res.Status)
	assert.EqualError(t, res.Err, "disk full")
	assert.Equal(t, "The Blue Note", res.Value.Form.Name)
	assert.Equal(t, before, countRows(t, db, &models.Venue{}))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "invalid", StatusInvalid.String())
	assert.Equal(t, "not_found", StatusNotFound.String())
	assert.Equal(t, "failed", StatusFailed.String())
}

func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
