package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vinaykagithapu/portfolio/internal/config"
	"github.com/vinaykagithapu/portfolio/internal/usecase"
)

type RouterConfig struct {
	Pages    *usecase.PageService
	Store    *config.Store
	IsDev    bool
	Reloader *Reloader
	Metrics  *Metrics
	Logger   *zap.Logger
}

// NewRouter wires the site under its base URL. The base URL is read once;
// changing it requires a restart.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	pages := NewPageHandler(cfg.Pages, cfg.Store, cfg.IsDev, cfg.Logger, cfg.Metrics)
	assets := NewAssetHandler(cfg.Pages.Assets(), cfg.IsDev)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cfg.Metrics.Middleware)
	r.Use(requestLogger(cfg.Logger))

	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())

	mount := func(sr chi.Router) {
		sr.Handle("/assets/{file}", assets)
		if cfg.IsDev && cfg.Reloader != nil {
			sr.Method(http.MethodGet, ReloadPath, cfg.Reloader)
		}
		sr.Handle("/", pages)
		sr.NotFound(pages.ServeHTTP)
		sr.MethodNotAllowed(pages.ServeHTTP)
	}

	prefix := strings.TrimSuffix(cfg.Store.Get().BaseURL, "/")
	if prefix == "" {
		mount(r)
	} else {
		r.Route(prefix, mount)
		r.NotFound(pages.ServeHTTP)
	}

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)
			logger.Debug("request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
