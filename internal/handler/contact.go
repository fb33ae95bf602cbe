package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/dragon-paving/internal/domain"
	"github.com/pkordes/dragon-paving/internal/view"
)

// contactFields are the form inputs copied into a ContactForm, in form order.
var contactFields = []string{domain.FieldName, domain.FieldPhone, domain.FieldEmail, domain.FieldMessage}

// SubmitContact handles POST /contact.
// Each post builds a fresh form, so nothing carries over between visits.
// An accepted form renders the thank-you acknowledgment; a rejected one
// re-renders the form with the entered values and 422. Nothing is sent
// anywhere.
func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	form := domain.NewContactForm()
	for _, field := range contactFields {
		if err := form.Set(field, r.PostForm.Get(field)); err != nil {
			s.serverError(w, r, err)
			return
		}
	}

	status := http.StatusOK
	if err := form.Submit(); err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			s.serverError(w, r, err)
			return
		}
		status = http.StatusUnprocessableEntity
		s.log.InfoContext(r.Context(), "contact form rejected", "reason", unwrapMessage(err))
	} else {
		s.log.InfoContext(r.Context(), "contact form acknowledged", "has_phone", form.Phone != "")
	}

	m := s.routes.Resolve(r.URL.Path)
	page := s.newPage(m)
	page.Kind = view.KindContact
	page.Title = "Contact"
	page.Form = form

	s.writePage(w, r, status, m, page)
}
