package domain

import "errors"

// ErrNotFound is returned when a requested resource (for example a service
// slug) does not exist in the catalog.
// Handlers should map this to the not-found view or HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (e.g. a required contact field is empty, or a catalog has duplicate slugs).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
