// Package catalog holds the immutable, ordered list of services the site
// offers and the slug lookup over it.
// It takes the place of a repository layer: the data is fixed at startup and
// read-only afterwards, so a *Catalog is safe for concurrent use.
package catalog

import (
	"fmt"

	"github.com/pkordes/dragon-paving/internal/domain"
)

// Catalog is an ordered, immutable set of services.
// Order is display order and never changes after New returns.
type Catalog struct {
	services []domain.Service
}

// New builds a Catalog from services, in the order given.
// Every slug must be non-empty and unique. Inputs are deep-copied.
func New(services ...domain.Service) (*Catalog, error) {
	seen := make(map[string]struct{}, len(services))
	out := make([]domain.Service, 0, len(services))
	for i, s := range services {
		if s.Slug == "" {
			return nil, fmt.Errorf("catalog.New: %w: service %d has an empty slug", domain.ErrValidation, i)
		}
		if _, dup := seen[s.Slug]; dup {
			return nil, fmt.Errorf("catalog.New: %w: duplicate slug %q", domain.ErrValidation, s.Slug)
		}
		seen[s.Slug] = struct{}{}
		out = append(out, s.Clone())
	}
	return &Catalog{services: out}, nil
}

// All returns every service in catalog order.
// The result is a copy; mutating it does not affect the catalog.
func (c *Catalog) All() []domain.Service {
	out := make([]domain.Service, len(c.services))
	for i, s := range c.services {
		out[i] = s.Clone()
	}
	return out
}

// Slugs returns the slug of every service in catalog order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.services))
	for i, s := range c.services {
		out[i] = s.Slug
	}
	return out
}

// Len reports the number of services.
func (c *Catalog) Len() int {
	return len(c.services)
}

// Lookup returns the service whose slug equals slug exactly.
// Returns domain.ErrNotFound if there is none.
func (c *Catalog) Lookup(slug string) (domain.Service, error) {
	s, err := Find(c.services, slug)
	if err != nil {
		return domain.Service{}, fmt.Errorf("catalog.Catalog.Lookup: %w", err)
	}
	return s.Clone(), nil
}

// Find returns the first service in services whose slug equals slug.
// The comparison is case-sensitive with no trimming or normalization.
// Returns domain.ErrNotFound when nothing matches.
func Find(services []domain.Service, slug string) (domain.Service, error) {
	for _, s := range services {
		if s.Slug == slug {
			return s, nil
		}
	}
	return domain.Service{}, fmt.Errorf("service %q: %w", slug, domain.ErrNotFound)
}
