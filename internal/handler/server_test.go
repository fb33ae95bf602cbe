package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/dragon-paving/internal/catalog"
	"github.com/pkordes/dragon-paving/internal/domain"
	"github.com/pkordes/dragon-paving/internal/handler"
	"github.com/pkordes/dragon-paving/internal/middleware"
	"github.com/pkordes/dragon-paving/internal/route"
	"github.com/pkordes/dragon-paving/internal/view"
)

// mockCatalog is a test double for handler.CatalogReader.
// Set only the method fields your test needs.
type mockCatalog struct {
	all    func() []domain.Service
	lookup func(slug string) (domain.Service, error)
}

func (m *mockCatalog) All() []domain.Service { return m.all() }
func (m *mockCatalog) Lookup(slug string) (domain.Service, error) {
	return m.lookup(slug)
}

// compile-time check: mockCatalog must satisfy handler.CatalogReader.
var _ handler.CatalogReader = (*mockCatalog)(nil)

// failingRenderer always returns an error without writing.
type failingRenderer struct{}

func (failingRenderer) Render(io.Writer, view.Page) error { return errors.New("template exploded") }

// ---- helpers ---------------------------------------------------------------

var fixedNow = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

type testSite struct {
	http.Handler
	registry *prometheus.Registry
}

// newSite wires a Server exactly the way the serve command does, with the
// real catalog, route table and templates unless deps overrides them.
func newSite(t *testing.T, override func(*handler.Deps)) testSite {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	deps := handler.Deps{
		Services: catalog.Default(),
		Routes:   route.Default(),
		Renderer: renderer,
		Brand:    domain.DefaultBrand(),
		Views:    metrics,
		Now:      fixedNow,
	}
	if override != nil {
		override(&deps)
	}

	h := handler.NewRouter(handler.NewServer(deps), handler.RouterOptions{
		Metrics:      metrics,
		Gatherer:     reg,
		CORSOrigins:  []string{"*"},
		MaxBodyBytes: 1024,
	})
	return testSite{Handler: h, registry: reg}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
