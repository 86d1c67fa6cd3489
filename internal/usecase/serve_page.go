package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vinaykagithapu/portfolio/internal/core"
	"github.com/vinaykagithapu/portfolio/internal/view"
)

type RenderPageInput struct {
	Site      core.SiteConfig
	Kind      core.PageKind
	ReloadURL string
}

type RenderPageOutput struct {
	HTML  []byte
	Error error
}

type ServePageInput struct {
	Site        core.SiteConfig
	IsDev       bool
	RequestPath string
	ReloadURL   string
}

type ServePageOutput struct {
	Action core.PageAction
	Kind   core.PageKind
	Status int
	HTML   []byte
	Error  error
}

type PageService struct {
	assets   *AssetBundle
	features []core.FeatureEntry
	logger   *zap.Logger
	now      func() time.Time

	mu    sync.RWMutex
	cache map[core.PageKind][]byte
}

type PageServiceOption func(*PageService)

// WithClock fixes the time used for the copyright year.
func WithClock(now func() time.Time) PageServiceOption {
	return func(s *PageService) {
		s.now = now
	}
}

// WithFeatures replaces the built-in feature list.
func WithFeatures(features []core.FeatureEntry) PageServiceOption {
	return func(s *PageService) {
		s.features = features
	}
}

func NewPageService(assets *AssetBundle, logger *zap.Logger, opts ...PageServiceOption) *PageService {
	s := &PageService{
		assets:   assets,
		features: core.Features(),
		logger:   logger,
		now:      time.Now,
		cache:    make(map[core.PageKind][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PageService) Assets() *AssetBundle {
	return s.assets
}

func (s *PageService) RenderPage(ctx context.Context, input RenderPageInput) RenderPageOutput {
	if err := ctx.Err(); err != nil {
		return RenderPageOutput{Error: err}
	}

	urls, err := s.assets.URLs(input.Site.BaseURL)
	if err != nil {
		return RenderPageOutput{Error: err}
	}

	vctx := view.Context{
		Site:      input.Site,
		Assets:    urls,
		ReloadURL: input.ReloadURL,
		Year:      s.now().Year(),
	}

	var html []byte
	switch input.Kind {
	case core.PageHome:
		page, err := view.HomePage(vctx, s.features)
		if err != nil {
			return RenderPageOutput{Error: fmt.Errorf("render home page: %w", err)}
		}
		html = []byte(page)
	case core.PageNotFound:
		page, err := view.NotFoundPage(vctx)
		if err != nil {
			return RenderPageOutput{Error: fmt.Errorf("render not found page: %w", err)}
		}
		html = []byte(page)
	default:
		return RenderPageOutput{Error: fmt.Errorf("unknown page kind %d", input.Kind)}
	}

	return RenderPageOutput{HTML: html}
}

// Prerender renders every page once and caches the result for
// prod-mode requests.
func (s *PageService) Prerender(ctx context.Context, site core.SiteConfig) error {
	rendered := make(map[core.PageKind][]byte)
	for _, route := range core.Routes() {
		out := s.RenderPage(ctx, RenderPageInput{Site: site, Kind: route.Kind})
		if out.Error != nil {
			return fmt.Errorf("prerender %s: %w", route.Path, out.Error)
		}
		rendered[route.Kind] = out.HTML
	}

	s.mu.Lock()
	s.cache = rendered
	s.mu.Unlock()

	s.logger.Debug("pages prerendered", zap.Int("pages", len(rendered)))
	return nil
}

func (s *PageService) cached(kind core.PageKind) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	html, ok := s.cache[kind]
	return html, ok
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	kind, _ := core.ResolveRoute(input.RequestPath)
	cachedHTML, hasCache := s.cached(kind)

	decision := core.DecidePageAction(core.PageRequest{
		IsDev:       input.IsDev,
		RequestPath: input.RequestPath,
		HasCache:    hasCache,
	})

	output := ServePageOutput{
		Action: decision.Action,
		Kind:   decision.Kind,
		Status: decision.Status,
	}

	if decision.Action == core.ActionServeCached {
		output.HTML = cachedHTML
		return output
	}

	rendered := s.RenderPage(ctx, RenderPageInput{
		Site:      input.Site,
		Kind:      decision.Kind,
		ReloadURL: input.ReloadURL,
	})
	if rendered.Error != nil {
		output.Status = http.StatusInternalServerError
		output.Error = rendered.Error
		return output
	}

	output.HTML = rendered.HTML
	return output
}
