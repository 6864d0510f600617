package handlers

import (
	"net/http"

	"github.com/camden-git/fyyur/forms"
	"github.com/camden-git/fyyur/models"
	"github.com/camden-git/fyyur/services"
	"github.com/camden-git/fyyur/views"
)

type showFormData struct {
	Form    forms.ShowForm
	Errors  forms.Errors
	Venues  []models.Venue
	Artists []models.Artist
}

// ShowHandler serves the show list and the new show form.
type ShowHandler struct {
	Deps
}

func (sh *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	res := sh.Directory.ListShows(r.Context())
	if !res.OK() {
		sh.serverError(w, r)
		return
	}
	sh.render(w, r, http.StatusOK, views.PageShows, views.Page{Title: "Shows", Section: "shows", Data: views.ShowRows(res.Value)})
}

func (sh *ShowHandler) NewShowForm(w http.ResponseWriter, r *http.Request) {
	sh.renderForm(w, r, http.StatusOK, showFormData{Form: sh.Directory.NewShowForm()})
}

func (sh *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		sh.renderForm(w, r, http.StatusBadRequest, showFormData{Form: sh.Directory.NewShowForm()},
			views.Danger("The submitted form could not be read."))
		return
	}

	res := sh.Directory.CreateShow(r.Context(), r.PostForm)
	data := showFormData{Form: res.Value.Form, Errors: res.Errors}
	const general = "An error occurred. Show could not be listed."

	switch res.Status {
	case services.StatusOK:
		sh.renderHome(w, r, views.Success("Show was successfully listed!"))
	case services.StatusInvalid:
		sh.renderForm(w, r, http.StatusBadRequest, data, failureMessages(res.Errors.Messages(), general))
	default:
		sh.renderForm(w, r, http.StatusInternalServerError, data, views.Danger(general))
	}
}

// renderForm fills in the venue and artist choices and writes the show form.
func (sh *ShowHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, data showFormData, notes ...views.Notification) {
	choices := sh.Directory.ShowChoices(r.Context())
	if !choices.OK() {
		sh.serverError(w, r)
		return
	}
	data.Venues = choices.Value.Venues
	data.Artists = choices.Value.Artists
	sh.render(w, r, status, views.PageNewShow, views.Page{Title: "New Show", Section: "shows", Notifications: notes, Data: data})
}
