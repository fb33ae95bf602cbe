// Package handler implements the HTTP handlers for the Dragon Paving site.
// All handlers are methods on Server. Methods are split into files by
// surface (pages.go, contact.go, api.go, health.go) but share the same
// Server struct so they can reach its dependencies.
package handler

import (
	"io"
	"log/slog"
	"time"

	"github.com/pkordes/dragon-paving/internal/domain"
	"github.com/pkordes/dragon-paving/internal/route"
	"github.com/pkordes/dragon-paving/internal/view"
)

// CatalogReader is the read-only view of the service catalog the handlers
// depend on. Declaring it here (in the consumer package) lets handler tests
// inject a stub without building a real catalog.
type CatalogReader interface {
	All() []domain.Service
	Lookup(slug string) (domain.Service, error)
}

// PageRenderer turns a page model into HTML.
type PageRenderer interface {
	Render(w io.Writer, p view.Page) error
}

// ViewObserver is notified once per rendered page.
type ViewObserver interface {
	ObserveView(view string, fallback bool)
}

// Deps are the collaborators a Server needs. Services, Routes and Renderer
// are required; the rest fall back to harmless defaults.
type Deps struct {
	Services CatalogReader
	Routes   *route.Table
	Renderer PageRenderer
	Brand    domain.Brand
	Logger   *slog.Logger
	Views    ViewObserver

	// Now is the clock used for the footer year. Defaults to time.Now.
	Now func() time.Time
}

// Server serves every page and API endpoint of the site.
// It holds no per-request state and is safe for concurrent use.
type Server struct {
	services CatalogReader
	routes   *route.Table
	render   PageRenderer
	brand    domain.Brand
	log      *slog.Logger
	views    ViewObserver
	now      func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	s := &Server{
		services: d.Services,
		routes:   d.Routes,
		render:   d.Renderer,
		brand:    d.Brand,
		log:      d.Logger,
		views:    d.Views,
		now:      d.Now,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.views == nil {
		s.views = noopObserver{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

type noopObserver struct{}

func (noopObserver) ObserveView(string, bool) {}
