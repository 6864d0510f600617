package forms

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// StartTimeLayout is the layout used to prefill and display the start_time field.
const StartTimeLayout = "2006-01-02 15:04:05"

var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseStartTime accepts the layouts a show form may submit. Times without a zone are UTC.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unrecognized start time")
}

// ShowForm is the create show form.
type ShowForm struct {
	ArtistID  uint   `schema:"artist_id" validate:"required"`
	VenueID   uint   `schema:"venue_id" validate:"required"`
	StartTime string `schema:"start_time" validate:"required,starttime"`

	// Start is StartTime parsed, set once the form is valid.
	Start time.Time `schema:"-"`
}

// NewShowForm returns a blank form whose start time defaults to now.
func NewShowForm(now time.Time) ShowForm {
	return ShowForm{StartTime: now.UTC().Format(StartTimeLayout)}
}

// ParseShowForm decodes and validates a submitted show form.
func ParseShowForm(values url.Values) (ShowForm, Errors) {
	var form ShowForm
	errs := bind(&form, values)
	form.StartTime = strings.TrimSpace(form.StartTime)
	check(form, errs)
	if errs.Valid() {
		form.Start, _ = ParseStartTime(form.StartTime)
	}
	return form, errs
}
