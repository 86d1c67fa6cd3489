package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vinaykagithapu/portfolio/internal/core"
	"github.com/vinaykagithapu/portfolio/internal/usecase"
)

const (
	immutableCache = "public, max-age=31536000, immutable"
	revalidate     = "no-cache"
)

type AssetHandler struct {
	bundle *usecase.AssetBundle
	isDev  bool
}

func NewAssetHandler(bundle *usecase.AssetBundle, isDev bool) http.Handler {
	return &AssetHandler{
		bundle: bundle,
		isDev:  isDev,
	}
}

// ServeHTTP serves /assets/{file}. Fingerprinted names are cached for a
// year. Plain logical names ("styles.css") are also served, but must be
// revalidated on every request.
func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	file := chi.URLParam(req, "file")
	if file == "" {
		http.NotFound(w, req)
		return
	}

	data, entry, ok := h.bundle.File(file)
	cacheControl := immutableCache
	if !ok {
		data, ok = h.bundle.Files[file]
		if !ok {
			http.NotFound(w, req)
			return
		}
		entry = core.ManifestEntry{Source: file, File: file, ContentType: core.GetContentType(file)}
		cacheControl = revalidate
	}
	if h.isDev {
		cacheControl = revalidate
	}

	w.Header().Set("Content-Type", entry.ContentType)
	w.Header().Set("Cache-Control", cacheControl)
	if entry.Hash != "" {
		w.Header().Set("ETag", `"`+entry.Hash+`"`)
	}
	http.ServeContent(w, req, entry.File, time.Time{}, bytes.NewReader(data))
}
