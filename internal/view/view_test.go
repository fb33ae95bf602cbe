package view_test

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/dragon-paving/internal/catalog"
	"github.com/pkordes/dragon-paving/internal/domain"
	"github.com/pkordes/dragon-paving/internal/view"
)

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.NewRenderer()
	require.NoError(t, err)
	return r
}

func render(t *testing.T, p view.Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Render(&buf, p))
	return buf.String()
}

func basePage(kind view.Kind) view.Page {
	return view.Page{Kind: kind, Brand: domain.DefaultBrand(), Year: 2026, ResetScroll: true}
}

func TestRender_LayoutCarriesBrandLinks(t *testing.T) {
	p := basePage(view.KindHome)
	p.Services = catalog.Default().All()

	html := render(t, p)

	assert.Contains(t, html, `href="tel:3373724666"`)
	assert.Contains(t, html, `href="mailto:support@dragonpaving.com"`)
	assert.Contains(t, html, "&copy; 2026 Dragon Paving. All rights reserved.")
}

func TestRender_ScrollReset(t *testing.T) {
	p := basePage(view.KindServices)

	assert.Contains(t, render(t, p), "window.scrollTo(0, 0)")

	p.ResetScroll = false
	assert.NotContains(t, render(t, p), "window.scrollTo(0, 0)")
}

func TestRender_ActiveNavLink(t *testing.T) {
	p := basePage(view.KindServices)
	p.Active = "/services"

	html := render(t, p)

	assert.Contains(t, html, `<a href="/services" class="active" aria-current="page">Services</a>`)
	assert.Contains(t, html, `<a href="/contact">Contact</a>`)
}

// TestRender_ServicesInCatalogOrder verifies the list page shows every
// service card in catalog order, identically on repeated renders.
func TestRender_ServicesInCatalogOrder(t *testing.T) {
	c := catalog.Default()
	p := basePage(view.KindServices)
	p.Services = c.All()

	first := render(t, p)
	second := render(t, p)
	require.Equal(t, first, second)

	last := -1
	for _, slug := range c.Slugs() {
		idx := strings.Index(first, `href="/services/`+slug+`"`)
		require.Greater(t, idx, last, "slug %s out of order", slug)
		last = idx
	}
}

func TestRender_ServiceDetail(t *testing.T) {
	svc, err := catalog.Default().Lookup("asphalt-milling")
	require.NoError(t, err)
	p := basePage(view.KindServiceDetail)
	p.Service = svc

	html := render(t, p)

	assert.Contains(t, html, "<h1>Asphalt Milling</h1>")
	assert.Contains(t, html, "Typical scope")
	assert.Contains(t, html, "What we look for on site")
	assert.Contains(t, html, "Milling to specified depth")
	assert.Contains(t, html, "Tie-ins at sidewalks/curbs")
}

func TestRender_ServiceNotFound(t *testing.T) {
	html := render(t, basePage(view.KindServiceNotFound))

	assert.Contains(t, html, "Service not found")
	assert.Contains(t, html, `href="/services"`)
}

func TestRender_ContactForm(t *testing.T) {
	html := render(t, basePage(view.KindContact))

	assert.Contains(t, html, `<form method="post" action="/contact"`)
	assert.Contains(t, html, `name="name"`)
	assert.Contains(t, html, `name="email" type="email"`)
	assert.NotContains(t, html, "Thanks! We got your request.")
}

func TestRender_ContactFormKeepsValuesAndErrors(t *testing.T) {
	f := domain.NewContactForm()
	require.NoError(t, f.Set(domain.FieldName, `Acme "Co"`))
	require.Error(t, f.Submit())
	p := basePage(view.KindContact)
	p.Form = f

	html := render(t, p)

	assert.Contains(t, html, `value="Acme &#34;Co&#34;"`)
	assert.Contains(t, html, "Email is required.")
	assert.NotContains(t, html, "Name is required.")
}

func TestRender_ContactAcknowledgment(t *testing.T) {
	f := domain.NewContactForm()
	f.Submitted = true
	p := basePage(view.KindContact)
	p.Form = f

	html := render(t, p)

	assert.Contains(t, html, "Thanks! We got your request.")
	assert.NotContains(t, html, "<form")
}

func TestRender_EscapesContent(t *testing.T) {
	p := basePage(view.KindServiceDetail)
	p.Service = domain.Service{Slug: "x", Title: "<script>alert(1)</script>"}

	html := render(t, p)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRender_UnknownKind(t *testing.T) {
	var buf bytes.Buffer

	err := newRenderer(t).Render(&buf, view.Page{Kind: "nope"})

	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestStatic_HasStylesheet(t *testing.T) {
	b, err := fs.ReadFile(view.Static(), "site.css")

	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
