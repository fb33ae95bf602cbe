package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/dragon-paving/internal/domain"
)

// ServiceList is the body of GET /api/services.
type ServiceList struct {
	Data []domain.Service `json:"data"`
}

// ListServices handles GET /api/services.
// Services are returned in catalog order.
func (s *Server) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ServiceList{Data: s.services.All()})
}

// GetService handles GET /api/services/{slug}.
func (s *Server) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.services.Lookup(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("service not found"))
			return
		}
		s.log.ErrorContext(r.Context(), "service lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal", Message: "internal error"}})
		return
	}
	writeJSON(w, http.StatusOK, svc)
}
