package forms

import (
	"net/url"
	"strings"
)

// ArtistForm is the create/edit artist form.
type ArtistForm struct {
	Name               string   `schema:"name" validate:"required"`
	City               string   `schema:"city" validate:"required,max=120"`
	State              string   `schema:"state" validate:"required,state"`
	Phone              string   `schema:"phone" validate:"omitempty,phone,max=120"`
	ImageLink          string   `schema:"image_link" validate:"omitempty,http_url,max=500"`
	Genres             []string `schema:"genres" validate:"required,dive,genre"`
	FacebookLink       string   `schema:"facebook_link" validate:"omitempty,http_url,max=120"`
	WebsiteLink        string   `schema:"website_link" validate:"omitempty,http_url,max=120"`
	SeekingVenue       bool     `schema:"seeking_venue"`
	SeekingDescription string   `schema:"seeking_description" validate:"max=500"`
}

func (f *ArtistForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	f.Genres = cleanGenres(f.Genres)
}

// ParseArtistForm decodes and validates a submitted artist form.
func ParseArtistForm(values url.Values) (ArtistForm, Errors) {
	var form ArtistForm
	errs := bind(&form, values)
	form.normalize()
	check(form, errs)
	return form, errs
}
