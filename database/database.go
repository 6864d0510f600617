package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/camden-git/fyyur/config"
)

// StatementBuilder returns a squirrel builder using the placeholder style of driver.
func StatementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// ShowListing is one row of the shows page: a show joined with its venue and artist.
type ShowListing struct {
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ListShowListings returns every show joined with venue and artist names, earliest first
func ListShowListings(ctx context.Context, db *sql.DB, sb sq.StatementBuilderType) ([]ShowListing, error) {
	queryBuilder := sb.Select(
		"shows.venue_id", "venues.name",
		"shows.artist_id", "artists.name", "artists.image_link",
		"shows.start_time",
	).
		From("shows").
		Join("venues ON venues.id = shows.venue_id").
		Join("artists ON artists.id = shows.artist_id").
		OrderBy("shows.start_time ASC", "venues.name ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for ListShowListings: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ListShowListings query: %w", err)
	}
	defer rows.Close()

	listings := []ShowListing{}
	for rows.Next() {
		var l ShowListing
		var image sql.NullString
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &image, &l.StartTime); err != nil {
			return nil, fmt.Errorf("failed to scan show listing row: %w", err)
		}
		l.ArtistImageLink = image.String
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating show listing rows: %w", err)
	}
	return listings, nil
}

// Columns accepted by CountUpcomingShows.
const (
	ByVenue  = "venue_id"
	ByArtist = "artist_id"
)

// CountUpcomingShows counts shows starting after now, grouped by the venue or artist
// column. Rows with no upcoming show are absent from the map.
func CountUpcomingShows(ctx context.Context, db *sql.DB, sb sq.StatementBuilderType, column string, now time.Time) (map[uint]int, error) {
	if column != ByVenue && column != ByArtist {
		return nil, fmt.Errorf("cannot count upcoming shows by column '%s'", column)
	}

	queryBuilder := sb.Select(column, "COUNT(*)").
		From("shows").
		Where(sq.Gt{"start_time": now.UTC()}).
		GroupBy(column)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for CountUpcomingShows: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute CountUpcomingShows query: %w", err)
	}
	defer rows.Close()

	counts := make(map[uint]int)
	for rows.Next() {
		var id uint
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan upcoming show count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upcoming show counts: %w", err)
	}
	return counts, nil
}
