package repository

import (
	"context"
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
)

func newSeededDB(t *testing.T) *gorm.DB {
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
	return db
}

func venueNames(venues []models.Venue) []string {
	names := make([]string, 0, len(venues))
	for _, v := range venues {
		names = append(names, v.Name)
	}
	return names
}

func TestVenueSearch(t *testing.T) {
	repo := NewVenueRepository(newSeededDB(t))
	ctx := context.Background()

	tests := []struct {
		term string
		want []string
	}{
		{"Hop", []string{"The Musical Hop"}},
		{"hop", []string{"The Musical Hop"}},
		{"Hop ", []string{}},
		{" hop", []string{"The Musical Hop"}},
		{"Music", []string{"Park Square Live Music & Coffee", "The Musical Hop"}},
		{"", []string{"Park Square Live Music & Coffee", "The Dueling Pianos Bar", "The Musical Hop"}},
		{"%", []string{}},
		{"_", []string{}},
		{"&", []string{"Park Square Live Music & Coffee"}},
		{"nothing like this", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, venueNames(got)); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.term, diff)
			}
		})
	}
}

func TestVenueSearchMatchesWildcardsLiterally(t *testing.T) {
	db := newSeededDB(t)
	repo := NewVenueRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Venue{Name: "100% Jazz_Club", City: "Austin", State: "TX", Genres: []string{"Jazz"}}))

	got, err := repo.Search(ctx, "0% j")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Jazz_Club"}, venueNames(got))

	got, err = repo.Search(ctx, "z_c")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Jazz_Club"}, venueNames(got))
}

func TestSearchFoldsNonASCIICase(t *testing.T) {
	db := newSeededDB(t)
	venues := NewVenueRepository(db)
	artists := NewArtistRepository(db)
	ctx := context.Background()

	require.NoError(t, venues.Create(ctx, &models.Venue{Name: "CAFÉ ÉCLAIR", City: "Montréal", State: "NY", Genres: []string{"Jazz"}}))
	require.NoError(t, artists.Create(ctx, &models.Artist{Name: "Björk Ensemble", City: "New York", State: "NY", Genres: []string{"Electronic"}}))

	for _, term := range []string{"café", "CAFÉ", "é é", "Éclair"} {
		got, err := venues.Search(ctx, term)
		require.NoError(t, err)
		assert.Equal(t, []string{"CAFÉ ÉCLAIR"}, venueNames(got), "term %q", term)
	}

	found, err := artists.Search(ctx, "BJÖRK")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Björk Ensemble", found[0].Name)
}

func TestVenueListOrdering(t *testing.T) {
	repo := NewVenueRepository(newSeededDB(t))
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Park Square Live Music & Coffee", "The Musical Hop", "The Dueling Pianos Bar"}, venueNames(all))

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Greater(t, recent[0].ID, recent[1].ID)
}

func TestVenueGetUpdateAndMissing(t *testing.T) {
	repo := NewVenueRepository(newSeededDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, &models.Venue{ID: 9999, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	hop, err := repo.Search(ctx, "Musical Hop")
	require.NoError(t, err)
	require.Len(t, hop, 1)

	updated := hop[0]
	updated.Name = "The Musical Hop II"
	updated.SeekingTalent = false
	updated.Genres = []string{"Blues"}
	require.NoError(t, repo.Update(ctx, &updated))

	got, err := repo.GetByID(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop II", got.Name)
	assert.False(t, got.SeekingTalent)
	assert.Equal(t, []string{"Blues"}, got.Genres)
	assert.Equal(t, hop[0].Address, got.Address)
}

func TestVenueDeleteCascadesToShows(t *testing.T) {
	db := newSeededDB(t)
	repo := NewVenueRepository(db)
	shows := NewShowRepository(db, database.StatementBuilder(config.DriverSQLite))
	ctx := context.Background()

	park, err := repo.Search(ctx, "Park Square")
	require.NoError(t, err)
	require.Len(t, park, 1)
	id := park[0].ID

	before, err := shows.ListByVenue(ctx, id)
	require.NoError(t, err)
	require.Len(t, before, 4)

	require.NoError(t, repo.Delete(ctx, id))

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)

	after, err := shows.ListByVenue(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, after)

	all, err := shows.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
}

func TestArtistUpdateTouchesOnlyTarget(t *testing.T) {
	repo := NewArtistRepository(newSeededDB(t))
	ctx := context.Background()

	before, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, before, 3)
	assert.Equal(t, "Guns N Petals", before[0].Name)

	target := before[1]
	target.City = "Chicago"
	target.State = "IL"
	target.SeekingVenue = true
	require.NoError(t, repo.Update(ctx, &target))

	after, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, 3)
	for i := range after {
		if after[i].ID == target.ID {
			assert.Equal(t, target, after[i])
			continue
		}
		assert.Equal(t, before[i], after[i])
	}

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := repo.Search(ctx, "SAX")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "The Wild Sax Band", found[0].Name)

	exists, err := repo.Exists(ctx, found[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestShowRepository(t *testing.T) {
	db := newSeededDB(t)
	shows := NewShowRepository(db, database.StatementBuilder(config.DriverSQLite))
	artists := NewArtistRepository(db)
	ctx := context.Background()

	sax, err := artists.Search(ctx, "Wild Sax")
	require.NoError(t, err)
	require.Len(t, sax, 1)

	list, err := shows.ListByArtist(ctx, sax[0].ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.NotNil(t, list[0].Venue)
	assert.Equal(t, "Park Square Live Music & Coffee", list[0].Venue.Name)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	byArtist, err := shows.UpcomingByArtist(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{sax[0].ID: 3}, byArtist)

	start := time.Date(2036, 2, 1, 19, 0, 0, 0, time.FixedZone("EST", -5*3600))
	show := &models.Show{VenueID: list[0].VenueID, ArtistID: sax[0].ID, StartTime: start}
	require.NoError(t, shows.Create(ctx, show))

	all, err := shows.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	last := all[len(all)-1]
	assert.True(t, last.StartTime.Equal(start))
	assert.Equal(t, "The Wild Sax Band", last.ArtistName)

	byVenue, err := shows.UpcomingByVenue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 4, byVenue[list[0].VenueID])

	err = shows.Create(ctx, &models.Show{VenueID: 9999, ArtistID: sax[0].ID, StartTime: start})
	assert.Error(t, err)
}
