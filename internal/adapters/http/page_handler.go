package http

import (
	"bytes"
	"html"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vinaykagithapu/portfolio/internal/config"
	"github.com/vinaykagithapu/portfolio/internal/core"
	"github.com/vinaykagithapu/portfolio/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	store   *config.Store
	isDev   bool
	logger  *zap.Logger
	metrics *Metrics
}

func NewPageHandler(service *usecase.PageService, store *config.Store, isDev bool, logger *zap.Logger, metrics *Metrics) *PageHandler {
	return &PageHandler{
		service: service,
		store:   store,
		isDev:   isDev,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	site := h.store.Get().Site()

	input := usecase.ServePageInput{
		Site:        site,
		IsDev:       h.isDev,
		RequestPath: sitePath(site.BaseURL, req.URL.Path),
	}
	if h.isDev {
		input.ReloadURL = core.ResolveURL(site.BaseURL, ReloadPath)
	}

	start := time.Now()
	output := h.service.ServePage(req.Context(), input)
	if output.Action != core.ActionServeCached {
		h.metrics.ObserveRender(output.Kind, time.Since(start))
	}

	if output.Error != nil {
		h.logger.Error("page render failed",
			zap.String("path", req.URL.Path),
			zap.Error(output.Error),
		)
		h.serveError(w, output.Error)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if h.isDev {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.WriteHeader(output.Status)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(output.HTML)
}

// sitePath strips the site base URL from a request path.
func sitePath(baseURL, requestPath string) string {
	prefix := strings.TrimSuffix(baseURL, "/")
	if prefix == "" {
		return requestPath
	}
	rest, ok := strings.CutPrefix(requestPath, prefix)
	if !ok {
		return core.NotFoundPath
	}
	return core.NormalizePath(rest)
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
