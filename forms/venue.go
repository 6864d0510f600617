package forms

import (
	"net/url"
	"strings"
)

// VenueForm is the create/edit venue form.
type VenueForm struct {
	Name               string   `schema:"name" validate:"required"`
	City               string   `schema:"city" validate:"required,max=120"`
	State              string   `schema:"state" validate:"required,state"`
	Address            string   `schema:"address" validate:"required,max=120"`
	Phone              string   `schema:"phone" validate:"omitempty,phone,max=120"`
	ImageLink          string   `schema:"image_link" validate:"omitempty,http_url,max=500"`
	Genres             []string `schema:"genres" validate:"required,dive,genre"`
	FacebookLink       string   `schema:"facebook_link" validate:"omitempty,http_url,max=120"`
	WebsiteLink        string   `schema:"website_link" validate:"omitempty,http_url,max=120"`
	SeekingTalent      bool     `schema:"seeking_talent"`
	SeekingDescription string   `schema:"seeking_description" validate:"max=500"`
}

func (f *VenueForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	f.Genres = cleanGenres(f.Genres)
}

// ParseVenueForm decodes and validates a submitted venue form.
func ParseVenueForm(values url.Values) (VenueForm, Errors) {
	var form VenueForm
	errs := bind(&form, values)
	form.normalize()
	check(form, errs)
	return form, errs
}
