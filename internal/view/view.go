// Package view renders the site's pages from embedded html/template files.
// Every page shares layout.html; page templates define the "content" block.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/pkordes/dragon-paving/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded assets, rooted so that
// "site.css" is served at /static/site.css.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Kind selects which page template renders.
type Kind string

const (
	KindHome            Kind = "home"
	KindServices        Kind = "services"
	KindServiceDetail   Kind = "service_detail"
	KindServiceNotFound Kind = "service_not_found"
	KindContact         Kind = "contact"
)

var kinds = []Kind{KindHome, KindServices, KindServiceDetail, KindServiceNotFound, KindContact}

// Page is the data handed to a template.
// Fields that a page kind does not use are left at their zero value.
type Page struct {
	Kind  Kind
	Title string
	Brand domain.Brand

	// Active is the nav path to highlight ("/", "/services", "/contact").
	Active string

	// ResetScroll emits the scroll-to-top snippet in the document head.
	ResetScroll bool

	// Year is printed in the footer copyright line.
	Year int

	Services []domain.Service
	Service  domain.Service
	Form     *domain.ContactForm
}

// Testimonial is a static customer quote shown on the home page.
type Testimonial struct {
	Name  string
	Text  string
	Stars int
}

// Testimonials are placeholder reviews until real ones are collected.
var Testimonials = []Testimonial{
	{Name: "Local Business Owner", Text: "Quick turnaround, great communication, and the lot looks brand new.", Stars: 5},
	{Name: "Facility Manager", Text: "Great communication and a smooth process. The lot came out clean with crisp edges.", Stars: 5},
	{Name: "Property Manager", Text: "They handled milling and repave efficiently and kept our site accessible.", Stars: 5},
}

// Renderer holds one parsed template set per page kind.
// It is safe for concurrent use.
type Renderer struct {
	pages map[Kind]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"testimonials": func() []Testimonial { return Testimonials },
		// safeURL marks a brand link as trusted so tel: survives escaping.
		// Brand values come from configuration, never from a request.
		"safeURL": func(s string) template.URL { return template.URL(s) },
		"stars":   func(n int) []struct{} { return make([]struct{}, n) },
		"dict":    dict,
		"fieldError": func(f *domain.ContactForm, field string) string {
			if f == nil {
				return ""
			}
			return f.Errors[field]
		},
	}

	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("view.NewRenderer: parse layout: %w", err)
	}

	pages := make(map[Kind]*template.Template, len(kinds))
	for _, k := range kinds {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("view.NewRenderer: clone layout: %w", err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+string(k)+".html"); err != nil {
			return nil, fmt.Errorf("view.NewRenderer: parse %s: %w", k, err)
		}
		pages[k] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the page into w.
// Output is buffered so a template error never leaves a partial page on w.
func (r *Renderer) Render(w io.Writer, p Page) error {
	t, ok := r.pages[p.Kind]
	if !ok {
		return fmt.Errorf("view.Renderer.Render: unknown page kind %q", p.Kind)
	}

	if p.Kind == KindContact && p.Form == nil {
		p.Form = domain.NewContactForm()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		return fmt.Errorf("view.Renderer.Render: %s: %w", p.Kind, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// dict builds a map from alternating key/value arguments so templates can
// pass several values to a partial.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
