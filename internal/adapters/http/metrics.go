package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry, so several
// servers can live in one process (as they do in tests).
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		renderSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_page_render_seconds",
			Help:    "Time spent rendering a page.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"page"}),
	}
	m.registry.MustRegister(m.requests, m.renderSeconds)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRender(kind core.PageKind, d time.Duration) {
	m.renderSeconds.WithLabelValues(pageLabel(kind)).Observe(d.Seconds())
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

func pageLabel(kind core.PageKind) string {
	switch kind {
	case core.PageHome:
		return "home"
	case core.PageNotFound:
		return "not_found"
	}
	return "unknown"
}
