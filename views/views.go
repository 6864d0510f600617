// Package views renders the HTML pages from templates embedded in the binary.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/camden-git/fyyur/forms"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageHome          = "pages/home"
	PageVenues        = "pages/venues"
	PageShowVenue     = "pages/show_venue"
	PageSearchVenues  = "pages/search_venues"
	PageArtists       = "pages/artists"
	PageShowArtist    = "pages/show_artist"
	PageSearchArtists = "pages/search_artists"
	PageShows         = "pages/shows"
	PageNewVenue      = "forms/new_venue"
	PageEditVenue     = "forms/edit_venue"
	PageNewArtist     = "forms/new_artist"
	PageEditArtist    = "forms/edit_artist"
	PageNewShow       = "forms/new_show"
	PageNotFound      = "errors/404"
	PageServerError   = "errors/500"
)

var pageNames = []string{
	PageHome, PageVenues, PageShowVenue, PageSearchVenues,
	PageArtists, PageShowArtist, PageSearchArtists, PageShows,
	PageNewVenue, PageEditVenue, PageNewArtist, PageEditArtist, PageNewShow,
	PageNotFound, PageServerError,
}

// Notification kinds.
const (
	KindSuccess = "success"
	KindDanger  = "danger"
)

// Notification is a flash message shown at the top of a page.
type Notification struct {
	Kind     string   `json:"kind"`
	Messages []string `json:"messages"`
}

// Success returns a success notification.
func Success(messages ...string) Notification {
	return Notification{Kind: KindSuccess, Messages: messages}
}

// Danger returns a failure notification.
func Danger(messages ...string) Notification {
	return Notification{Kind: KindDanger, Messages: messages}
}

// Page is what every template receives.
type Page struct {
	Title         string
	Section       string
	Notifications []Notification
	Data          any
}

// Funcs returns the template helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time) string {
			return FormatDatetime(t, FormatFull)
		},
		"datetimeMedium": func(t time.Time) string {
			return FormatDatetime(t, FormatMedium)
		},
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"has": func(items []string, v string) bool {
			for _, item := range items {
				if item == v {
					return true
				}
			}
			return false
		},
		"states": func() []string { return forms.States },
		"genres": func() []string { return forms.Genres },
	}
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

// NewRenderer parses every page together with the layout and shared partials.
func NewRenderer(log *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pageNames)),
		log:   log.Named("views"),
	}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(Funcs()).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Execute writes the named page to w.
func (r *Renderer) Execute(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %s", name)
	}
	return t.ExecuteTemplate(w, "layout.html", page)
}

// Render writes the named page with the given status. The page is rendered into
// a buffer first so that a template failure produces the server error page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	var buf bytes.Buffer
	if err := r.Execute(&buf, name, page); err != nil {
		r.log.Error("failed to render page", zap.String("page", name), zap.Error(err))
		if name == PageServerError {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		r.Render(w, http.StatusInternalServerError, PageServerError, Page{Title: "Server Error"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static returns the embedded stylesheet and script files.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
