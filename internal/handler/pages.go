package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/pkordes/dragon-paving/internal/domain"
	"github.com/pkordes/dragon-paving/internal/route"
	"github.com/pkordes/dragon-paving/internal/view"
)

// Page handles GET for every site path.
// The path is resolved through the route table; unknown paths render the
// home view. The only error state is an unknown service slug, which renders
// the not-found view with a link back to /services.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	m := s.routes.Resolve(r.URL.Path)
	page := s.newPage(m)
	status := http.StatusOK

	switch m.View {
	case route.ViewHome:
		page.Kind = view.KindHome
		page.Services = s.services.All()

	case route.ViewServices:
		page.Kind = view.KindServices
		page.Title = "Services"
		page.Services = s.services.All()

	case route.ViewServiceDetail:
		svc, err := s.services.Lookup(m.Param(route.ParamSlug))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			page.Kind = view.KindServiceNotFound
			page.Title = "Service not found"
			status = http.StatusNotFound
		case err != nil:
			s.serverError(w, r, err)
			return
		default:
			page.Kind = view.KindServiceDetail
			page.Title = svc.Title
			page.Service = svc
		}

	case route.ViewContact:
		page.Kind = view.KindContact
		page.Title = "Contact"
		page.Form = domain.NewContactForm()
	}

	s.writePage(w, r, status, m, page)
}

// newPage fills the fields every page shares.
func (s *Server) newPage(m route.Match) view.Page {
	p := view.Page{
		Brand:       s.brand,
		ResetScroll: m.ResetScroll,
		Year:        s.now().Year(),
	}
	if !m.Fallback {
		p.Active = activeNav(m.View)
	}
	return p
}

// activeNav maps a view to the header link it highlights.
func activeNav(v route.View) string {
	switch v {
	case route.ViewServices, route.ViewServiceDetail:
		return "/services"
	case route.ViewContact:
		return "/contact"
	default:
		return "/"
	}
}

// writePage renders page and writes it with status.
// Rendering goes to a buffer first, so on failure nothing has been sent yet
// and a plain 500 can still be written.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, m route.Match, page view.Page) {
	var buf bytes.Buffer
	if err := s.render.Render(&buf, page); err != nil {
		s.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.DebugContext(r.Context(), "page write aborted", "path", r.URL.Path, "error", err)
		return
	}
	s.views.ObserveView(m.View.String(), m.Fallback)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "page render failed", "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
