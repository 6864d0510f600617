package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/camden-git/fyyur/services"
	"github.com/camden-git/fyyur/views"
)

// RouterConfig holds what NewRouter needs to build the HTTP surface.
type RouterConfig struct {
	Directory      *services.DirectoryService
	Views          *views.Renderer
	DB             Pinger
	Log            *zap.Logger
	AllowedOrigins []string
}

// NewRouter maps every page, the static assets and the health check.
func NewRouter(cfg RouterConfig) http.Handler {
	deps := Deps{Directory: cfg.Directory, Views: cfg.Views, Log: cfg.Log}
	homeHandler := &HomeHandler{Deps: deps}
	venueHandler := &VenueHandler{Deps: deps}
	artistHandler := &ArtistHandler{Deps: deps}
	showHandler := &ShowHandler{Deps: deps}
	healthHandler := &HealthHandler{Deps: deps, DB: cfg.DB}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(cfg.Log.Named("http")))
	r.Use(Recoverer(cfg.Log, cfg.Views))
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	r.NotFound(homeHandler.NotFound)
	r.MethodNotAllowed(homeHandler.NotFound)

	r.Get("/", homeHandler.Home)
	r.Get("/healthz", healthHandler.Health)
	r.Get("/static/*", AssetServer(views.Static(), "/static/", cfg.Log))

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.ListVenues)
		r.Post("/search", venueHandler.SearchVenues)
		r.Get("/create", venueHandler.NewVenueForm)
		r.Post("/create", venueHandler.CreateVenue)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", venueHandler.GetVenue)
			r.Delete("/", venueHandler.DeleteVenue)
			r.Post("/delete", venueHandler.DeleteVenueFromPage)
			r.Get("/edit", venueHandler.EditVenueForm)
			r.Post("/edit", venueHandler.UpdateVenue)
		})
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", artistHandler.ListArtists)
		r.Post("/search", artistHandler.SearchArtists)
		r.Get("/create", artistHandler.NewArtistForm)
		r.Post("/create", artistHandler.CreateArtist)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", artistHandler.GetArtist)
			r.Get("/edit", artistHandler.EditArtistForm)
			r.Post("/edit", artistHandler.UpdateArtist)
		})
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", showHandler.ListShows)
		r.Get("/create", showHandler.NewShowForm)
		r.Post("/create", showHandler.CreateShow)
	})

	return r
}
