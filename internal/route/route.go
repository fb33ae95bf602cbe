// Package route maps a request path to exactly one page view.
//
// Routing is an explicit ordered table of (pattern, view) pairs evaluated
// top-to-bottom. The last entry must be the wildcard "*", so an unknown path
// always resolves to a view and never to an error.
package route

import (
	"fmt"
	"strings"

	"github.com/pkordes/dragon-paving/internal/domain"
)

// View identifies one renderable page of the site.
type View int

const (
	ViewHome View = iota
	ViewServices
	ViewServiceDetail
	ViewContact
)

// String returns the view name used in logs and the routes command.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewServices:
		return "services"
	case ViewServiceDetail:
		return "service-detail"
	case ViewContact:
		return "contact"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Wildcard is the catch-all pattern. It is only legal as the final route.
const Wildcard = "*"

// ParamSlug is the path parameter carrying a service slug.
const ParamSlug = "slug"

// Route pairs a path pattern with the view it selects.
// Pattern segments are literals or "{name}" parameters, which capture one
// non-empty segment.
type Route struct {
	Pattern string
	View    View

	segments []string
}

// Match is the outcome of resolving a path.
type Match struct {
	View    View
	Pattern string
	Params  map[string]string

	// Fallback is true when only the wildcard matched.
	Fallback bool

	// ResetScroll is set on every resolved navigation: the new view is
	// shown from the top of the document.
	ResetScroll bool
}

// Param returns the captured value of the named parameter, or "".
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Table is an ordered, immutable set of routes.
type Table struct {
	routes []Route
}

// NewTable builds a Table from routes, in evaluation order.
// The final route must be the wildcard and no other route may be.
func NewTable(routes ...Route) (*Table, error) {
	if len(routes) == 0 || routes[len(routes)-1].Pattern != Wildcard {
		return nil, fmt.Errorf("route.NewTable: %w: table must end with the %q route", domain.ErrValidation, Wildcard)
	}

	out := make([]Route, len(routes))
	for i, r := range routes {
		if r.Pattern == Wildcard {
			if i != len(routes)-1 {
				return nil, fmt.Errorf("route.NewTable: %w: %q must be the last route", domain.ErrValidation, Wildcard)
			}
			out[i] = r
			continue
		}
		segs, err := parsePattern(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route.NewTable: %w", err)
		}
		r.segments = segs
		out[i] = r
	}
	return &Table{routes: out}, nil
}

// Default returns the site's route table.
// Unknown paths fall back to the home view rather than a 404 page.
func Default() *Table {
	t, err := NewTable(
		Route{Pattern: "/", View: ViewHome},
		Route{Pattern: "/services", View: ViewServices},
		Route{Pattern: "/services/{" + ParamSlug + "}", View: ViewServiceDetail},
		Route{Pattern: "/contact", View: ViewContact},
		Route{Pattern: Wildcard, View: ViewHome},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Routes returns the table entries in evaluation order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Resolve returns the first route matching path.
// Literal segments compare case-sensitively; a single trailing slash is
// ignored. Any path with an empty interior segment reaches the wildcard.
func (t *Table) Resolve(path string) Match {
	segs, ok := splitPath(path)
	if ok {
		for _, r := range t.routes {
			if r.Pattern == Wildcard {
				break
			}
			if params, hit := r.match(segs); hit {
				return Match{View: r.View, Pattern: r.Pattern, Params: params, ResetScroll: true}
			}
		}
	}

	last := t.routes[len(t.routes)-1]
	return Match{View: last.View, Pattern: last.Pattern, Fallback: true, ResetScroll: true}
}

func (r Route) match(segs []string) (map[string]string, bool) {
	if len(segs) != len(r.segments) {
		return nil, false
	}
	var params map[string]string
	for i, want := range r.segments {
		if name, isParam := paramName(want); isParam {
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[name] = segs[i]
			continue
		}
		if segs[i] != want {
			return nil, false
		}
	}
	return params, true
}

// parsePattern validates a non-wildcard pattern and returns its segments.
func parsePattern(p string) ([]string, error) {
	if !strings.HasPrefix(p, "/") {
		return nil, fmt.Errorf("%w: pattern %q must start with /", domain.ErrValidation, p)
	}
	if p == "/" {
		return []string{}, nil
	}
	segs := strings.Split(p[1:], "/")
	for _, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("%w: pattern %q has an empty segment", domain.ErrValidation, p)
		}
		if strings.Contains(s, Wildcard) {
			return nil, fmt.Errorf("%w: pattern %q may not contain %q", domain.ErrValidation, p, Wildcard)
		}
		if name, isParam := paramName(s); isParam && name == "" {
			return nil, fmt.Errorf("%w: pattern %q has an unnamed parameter", domain.ErrValidation, p)
		}
	}
	return segs, nil
}

// splitPath breaks a request path into segments. ok is false when the path
// can only be matched by the wildcard.
func splitPath(path string) (segs []string, ok bool) {
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "/" {
		return []string{}, true
	}
	segs = strings.Split(path[1:], "/")
	for _, s := range segs {
		if s == "" {
			return nil, false
		}
	}
	return segs, true
}

func paramName(seg string) (string, bool) {
	if len(seg) >= 2 && seg[0] == '{' && seg[len(seg)-1] == '}' {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}
