package handlers

import (
	"fmt"
	"net/http"

	"github.com/camden-git/fyyur/forms"
	"github.com/camden-git/fyyur/services"
	"github.com/camden-git/fyyur/views"
)

type artistFormData struct {
	ID     uint
	Name   string
	Form   forms.ArtistForm
	Errors forms.Errors
}

// ArtistHandler serves the artist pages and forms.
type ArtistHandler struct {
	Deps
}

func (ah *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	res := ah.Directory.ArtistIndex(r.Context())
	if !res.OK() {
		ah.serverError(w, r)
		return
	}
	ah.render(w, r, http.StatusOK, views.PageArtists, views.Page{Title: "Artists", Section: "artists", Data: res.Value})
}

func (ah *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	res := ah.Directory.SearchArtists(r.Context(), term)
	if !res.OK() {
		ah.serverError(w, r)
		return
	}
	ah.render(w, r, http.StatusOK, views.PageSearchArtists, views.Page{Title: "Search Artists", Section: "artists", Data: res.Value})
}

func (ah *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		ah.notFound(w, r)
		return
	}
	res := ah.Directory.ArtistDetail(r.Context(), id)
	switch res.Status {
	case services.StatusOK:
		ah.render(w, r, http.StatusOK, views.PageShowArtist, views.Page{Title: res.Value.Artist.Name, Section: "artists", Data: res.Value})
	case services.StatusNotFound:
		ah.notFound(w, r)
	default:
		ah.serverError(w, r)
	}
}

func (ah *ArtistHandler) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	ah.render(w, r, http.StatusOK, views.PageNewArtist, views.Page{Title: "New Artist", Section: "artists", Data: artistFormData{}})
}

func (ah *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ah.render(w, r, http.StatusBadRequest, views.PageNewArtist, views.Page{
			Title:         "New Artist",
			Section:       "artists",
			Notifications: []views.Notification{views.Danger("The submitted form could not be read.")},
			Data:          artistFormData{},
		})
		return
	}

	res := ah.Directory.CreateArtist(r.Context(), r.PostForm)
	name := res.Value.Form.Name
	data := artistFormData{Form: res.Value.Form, Errors: res.Errors}
	general := fmt.Sprintf("An error occurred. Artist %s could not be listed.", name)

	switch res.Status {
	case services.StatusOK:
		ah.renderHome(w, r, views.Success(fmt.Sprintf("Artist %s was successfully listed!", name)))
	case services.StatusInvalid:
		ah.render(w, r, http.StatusBadRequest, views.PageNewArtist, views.Page{
			Title:         "New Artist",
			Section:       "artists",
			Notifications: []views.Notification{failureMessages(res.Errors.Messages(), general)},
			Data:          data,
		})
	default:
		ah.render(w, r, http.StatusInternalServerError, views.PageNewArtist, views.Page{
			Title:         "New Artist",
			Section:       "artists",
			Notifications: []views.Notification{views.Danger(general)},
			Data:          data,
		})
	}
}

func (ah *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		ah.notFound(w, r)
		return
	}
	res := ah.Directory.ArtistForEdit(r.Context(), id)
	switch res.Status {
	case services.StatusOK:
		ah.render(w, r, http.StatusOK, views.PageEditArtist, views.Page{
			Title:   "Edit " + res.Value.Artist.Name,
			Section: "artists",
			Data:    artistFormData{ID: id, Name: res.Value.Artist.Name, Form: res.Value.Form},
		})
	case services.StatusNotFound:
		ah.notFound(w, r)
	default:
		ah.serverError(w, r)
	}
}

func (ah *ArtistHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		ah.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		setFlash(w, views.Danger("The submitted form could not be read."))
		redirect(w, r, fmt.Sprintf("/artists/%d/edit", id))
		return
	}

	res := ah.Directory.UpdateArtist(r.Context(), id, r.PostForm)
	name := res.Value.Form.Name
	switch res.Status {
	case services.StatusOK:
		setFlash(w, views.Success(fmt.Sprintf("Artist %s was successfully updated!", name)))
		redirect(w, r, fmt.Sprintf("/artists/%d", id))
	case services.StatusNotFound:
		ah.notFound(w, r)
	case services.StatusInvalid:
		ah.render(w, r, http.StatusBadRequest, views.PageEditArtist, views.Page{
			Title:   "Edit " + res.Value.Artist.Name,
			Section: "artists",
			Notifications: []views.Notification{failureMessages(res.Errors.Messages(),
				fmt.Sprintf("An error occurred. Artist %s could not be updated.", res.Value.Artist.Name))},
			Data: artistFormData{ID: id, Name: res.Value.Artist.Name, Form: res.Value.Form, Errors: res.Errors},
		})
	default:
		setFlash(w, views.Danger(fmt.Sprintf("An error occurred. Artist %s could not be updated.", name)))
		redirect(w, r, fmt.Sprintf("/artists/%d", id))
	}
}
