// Package domain contains the core data types for the Dragon Paving site.
// This package has zero external dependencies and is imported by every other
// internal package (catalog, route, view, handler).
package domain

// Service is one entry in the service catalog.
// Slug is the stable identity key and the URL segment of the detail page.
// Values are treated as immutable once they are placed in a catalog.
type Service struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Icon      string   `json:"icon,omitempty"`
	Points    []string `json:"points"`
	LongIntro string   `json:"long_intro"`
	Scope     []string `json:"scope"`
	Checklist []string `json:"checklist"`
}

// Path returns the site path of the service detail page.
func (s Service) Path() string {
	return "/services/" + s.Slug
}

// Clone returns a deep copy of s so callers can't alias the catalog's slices.
func (s Service) Clone() Service {
	s.Points = cloneStrings(s.Points)
	s.Scope = cloneStrings(s.Scope)
	s.Checklist = cloneStrings(s.Checklist)
	return s
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
