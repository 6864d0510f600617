package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/camden-git/fyyur/services"
	"github.com/camden-git/fyyur/views"
)

// Deps are the collaborators shared by every page handler.
type Deps struct {
	Directory *services.DirectoryService
	Views     *views.Renderer
	Log       *zap.Logger
}

func (d Deps) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			d.Log.Warn("error encoding JSON response", zap.Error(err))
		}
	}
}

// render adds any pending flash notifications to page and writes it.
func (d Deps) render(w http.ResponseWriter, r *http.Request, status int, name string, page views.Page) {
	page.Notifications = append(popFlash(w, r), page.Notifications...)
	d.Views.Render(w, status, name, page)
}

func (d Deps) notFound(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, http.StatusNotFound, views.PageNotFound, views.Page{Title: "Not Found"})
}

func (d Deps) serverError(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, http.StatusInternalServerError, views.PageServerError, views.Page{Title: "Server Error"})
}

// renderHome writes the home page, used both for GET / and after a successful create.
func (d Deps) renderHome(w http.ResponseWriter, r *http.Request, notes ...views.Notification) {
	res := d.Directory.Home(r.Context())
	if !res.OK() {
		d.serverError(w, r)
		return
	}
	d.render(w, r, http.StatusOK, views.PageHome, views.Page{Notifications: notes, Data: res.Value})
}

// redirect sends a 303 so the browser follows up with a GET.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// pathID returns the positive numeric {id} URL parameter.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// failureMessages lists the field errors followed by the general failure message.
func failureMessages(messages []string, general string) views.Notification {
	return views.Danger(append(messages, general)...)
}
