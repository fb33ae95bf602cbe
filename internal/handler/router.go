package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/dragon-paving/internal/middleware"
	"github.com/pkordes/dragon-paving/internal/view"
)

// RouterOptions configures the middleware stack around a Server.
type RouterOptions struct {
	Logger       *slog.Logger
	Metrics      *middleware.Metrics
	Gatherer     prometheus.Gatherer
	CORSOrigins  []string
	MaxBodyBytes int64
}

// NewRouter wires s into a chi router.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
// Recoverer. Site pages are served by one catch-all GET; which view renders
// is decided by the route table inside Server.Page, not by chi.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if opts.Logger != nil {
		r.Use(middleware.NewSlogLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)

	r.Get("/healthz", s.GetHealth)
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	r.Route("/api", func(r chi.Router) {
		origins := opts.CORSOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		r.Use(middleware.NewCORSHandler(origins))
		r.Get("/services", s.ListServices)
		r.Get("/services/{slug}", s.GetService)
	})

	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 64 << 10
	}
	r.With(middleware.NewMaxBodySizeHandler(maxBody)).Post("/contact", s.SubmitContact)

	// /contact is listed so GET is not shadowed by the POST-only node.
	r.Get("/contact", s.Page)
	r.Get("/", s.Page)
	r.Get("/*", s.Page)

	return r
}
