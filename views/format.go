package views

import (
	"time"

	"github.com/camden-git/fyyur/database"
)

// Datetime formats accepted by FormatDatetime.
const (
	FormatFull   = "full"
	FormatMedium = "medium"
)

const (
	fullLayout   = "Monday January, 2, 2006 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDatetime renders t in UTC using the full or medium layout. Any other
// format name falls back to medium.
func FormatDatetime(t time.Time, format string) string {
	layout := mediumLayout
	if format == FormatFull {
		layout = fullLayout
	}
	return t.UTC().Format(layout)
}

// ShowRow is a line on the shows page with its start time already formatted.
type ShowRow struct {
	database.ShowListing
	StartTimeText string
}

// ShowRows precomputes the display start time of each listing.
func ShowRows(listings []database.ShowListing) []ShowRow {
	rows := make([]ShowRow, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, ShowRow{ShowListing: l, StartTimeText: FormatDatetime(l.StartTime, FormatFull)})
	}
	return rows
}
