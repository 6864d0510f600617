package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/camden-git/fyyur/views"
)

const flashCookie = "fyyur_flash"

// setFlash stores notifications to show on the next rendered page.
func setFlash(w http.ResponseWriter, notes ...views.Notification) {
	raw, err := json.Marshal(notes)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending notifications and clears them.
func popFlash(w http.ResponseWriter, r *http.Request) []views.Notification {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var notes []views.Notification
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil
	}
	return notes
}
