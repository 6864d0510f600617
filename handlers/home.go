package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HomeHandler serves the landing page and the not-found page.
type HomeHandler struct {
	Deps
}

func (hh *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	hh.renderHome(w, r)
}

func (hh *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	hh.notFound(w, r)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler answers GET /healthz.
type HealthHandler struct {
	Deps
	DB Pinger
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Health reports liveness and whether the database answers a ping.
func (hh *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := hh.DB.PingContext(ctx); err != nil {
		hh.Log.Error("health check: database ping failed", zap.Error(err))
		hh.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: "database did not answer a ping"})
		return
	}
	hh.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
