package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/camden-git/fyyur/forms"
	"github.com/camden-git/fyyur/services"
	"github.com/camden-git/fyyur/views"
)

type venueFormData struct {
	ID     uint
	Name   string
	Form   forms.VenueForm
	Errors forms.Errors
}

// deleteResponse is the JSON body of DELETE /venues/{id}.
type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VenueHandler serves the venue pages and the venue delete endpoints.
type VenueHandler struct {
	Deps
}

func (vh *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	res := vh.Directory.VenueAreas(r.Context())
	if !res.OK() {
		vh.serverError(w, r)
		return
	}
	vh.render(w, r, http.StatusOK, views.PageVenues, views.Page{Title: "Venues", Section: "venues", Data: res.Value})
}

func (vh *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	res := vh.Directory.SearchVenues(r.Context(), term)
	if !res.OK() {
		vh.serverError(w, r)
		return
	}
	vh.render(w, r, http.StatusOK, views.PageSearchVenues, views.Page{Title: "Search Venues", Section: "venues", Data: res.Value})
}

func (vh *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		vh.notFound(w, r)
		return
	}
	res := vh.Directory.VenueDetail(r.Context(), id)
	switch res.Status {
	case services.StatusOK:
		vh.render(w, r, http.StatusOK, views.PageShowVenue, views.Page{Title: res.Value.Venue.Name, Section: "venues", Data: res.Value})
	case services.StatusNotFound:
		vh.notFound(w, r)
	default:
		vh.serverError(w, r)
	}
}

func (vh *VenueHandler) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	vh.render(w, r, http.StatusOK, views.PageNewVenue, views.Page{Title: "New Venue", Section: "venues", Data: venueFormData{}})
}

func (vh *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		vh.render(w, r, http.StatusBadRequest, views.PageNewVenue, views.Page{
			Title:         "New Venue",
			Section:       "venues",
			Notifications: []views.Notification{views.Danger("The submitted form could not be read.")},
			Data:          venueFormData{},
		})
		return
	}

	res := vh.Directory.CreateVenue(r.Context(), r.PostForm)
	name := res.Value.Form.Name
	data := venueFormData{Form: res.Value.Form, Errors: res.Errors}
	general := fmt.Sprintf("An error occurred. Venue %s could not be listed.", name)

	switch res.Status {
	case services.StatusOK:
		vh.renderHome(w, r, views.Success(fmt.Sprintf("Venue %s was successfully listed!", name)))
	case services.StatusInvalid:
		vh.render(w, r, http.StatusBadRequest, views.PageNewVenue, views.Page{
			Title:         "New Venue",
			Section:       "venues",
			Notifications: []views.Notification{failureMessages(res.Errors.Messages(), general)},
			Data:          data,
		})
	default:
		vh.render(w, r, http.StatusInternalServerError, views.PageNewVenue, views.Page{
			Title:         "New Venue",
			Section:       "venues",
			Notifications: []views.Notification{views.Danger(general)},
			Data:          data,
		})
	}
}

func (vh *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		vh.notFound(w, r)
		return
	}
	res := vh.Directory.VenueForEdit(r.Context(), id)
	switch res.Status {
	case services.StatusOK:
		vh.render(w, r, http.StatusOK, views.PageEditVenue, views.Page{
			Title:   "Edit " + res.Value.Venue.Name,
			Section: "venues",
			Data:    venueFormData{ID: id, Name: res.Value.Venue.Name, Form: res.Value.Form},
		})
	case services.StatusNotFound:
		vh.notFound(w, r)
	default:
		vh.serverError(w, r)
	}
}

func (vh *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		vh.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		setFlash(w, views.Danger("The submitted form could not be read."))
		redirect(w, r, fmt.Sprintf("/venues/%d/edit", id))
		return
	}

	res := vh.Directory.UpdateVenue(r.Context(), id, r.PostForm)
	name := res.Value.Form.Name
	switch res.Status {
	case services.StatusOK:
		setFlash(w, views.Success(fmt.Sprintf("Venue %s was successfully updated!", name)))
		redirect(w, r, fmt.Sprintf("/venues/%d", id))
	case services.StatusNotFound:
		vh.notFound(w, r)
	case services.StatusInvalid:
		vh.render(w, r, http.StatusBadRequest, views.PageEditVenue, views.Page{
			Title:   "Edit " + res.Value.Venue.Name,
			Section: "venues",
			Notifications: []views.Notification{failureMessages(res.Errors.Messages(),
				fmt.Sprintf("An error occurred. Venue %s could not be updated.", res.Value.Venue.Name))},
			Data: venueFormData{ID: id, Name: res.Value.Venue.Name, Form: res.Value.Form, Errors: res.Errors},
		})
	default:
		setFlash(w, views.Danger(fmt.Sprintf("An error occurred. Venue %s could not be updated.", name)))
		redirect(w, r, fmt.Sprintf("/venues/%d", id))
	}
}

// DeleteVenue answers the DELETE verb with JSON.
func (vh *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		vh.writeJSON(w, http.StatusNotFound, deleteResponse{Message: "Venue not found."})
		return
	}
	res := vh.Directory.DeleteVenue(r.Context(), id)
	switch res.Status {
	case services.StatusOK:
		msg := fmt.Sprintf("Venue %s was successfully deleted!", res.Value)
		setFlash(w, views.Success(msg))
		vh.writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: msg})
	case services.StatusNotFound:
		vh.writeJSON(w, http.StatusNotFound, deleteResponse{Message: "Venue not found."})
	default:
		vh.writeJSON(w, http.StatusInternalServerError, deleteResponse{
			Message: fmt.Sprintf("An error occurred. Venue %s could not be deleted.", res.Value),
		})
	}
}

// DeleteVenueFromPage handles the delete button on the venue page.
func (vh *VenueHandler) DeleteVenueFromPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		vh.notFound(w, r)
		return
	}
	res := vh.Directory.DeleteVenue(r.Context(), id)
	switch res.Status {
	case services.StatusOK:
		setFlash(w, views.Success(fmt.Sprintf("Venue %s was successfully deleted!", res.Value)))
		redirect(w, r, "/")
	case services.StatusNotFound:
		vh.notFound(w, r)
	default:
		vh.Log.Warn("venue delete failed", zap.Uint("id", id), zap.Error(res.Err))
		setFlash(w, views.Danger(fmt.Sprintf("An error occurred. Venue %s could not be deleted.", res.Value)))
		redirect(w, r, fmt.Sprintf("/venues/%d", id))
	}
}
