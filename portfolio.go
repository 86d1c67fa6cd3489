// Package portfolio serves and exports the portfolio home page.
package portfolio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vinaykagithapu/portfolio/assets"
	"github.com/vinaykagithapu/portfolio/internal/adapters/env"
	"github.com/vinaykagithapu/portfolio/internal/adapters/fs"
	apphttp "github.com/vinaykagithapu/portfolio/internal/adapters/http"
	"github.com/vinaykagithapu/portfolio/internal/adapters/watch"
	"github.com/vinaykagithapu/portfolio/internal/config"
	"github.com/vinaykagithapu/portfolio/internal/core"
	"github.com/vinaykagithapu/portfolio/internal/usecase"
)

type Config = config.Config

type ExportOutput = usecase.ExportOutput

type App struct {
	configPath string
	config     *Config
	mode       core.Mode
	logger     *zap.Logger
	now        func() time.Time
	exportFS   fs.FileSystem

	store    *config.Store
	pages    *usecase.PageService
	reloader *apphttp.Reloader
	metrics  *apphttp.Metrics
}

type Option func(*App)

// WithConfigPath sets the YAML file to load; it is also the file Watch
// follows.
func WithConfigPath(path string) Option {
	return func(a *App) {
		a.configPath = path
	}
}

// WithConfig uses cfg instead of loading a file.
func WithConfig(cfg Config) Option {
	return func(a *App) {
		a.config = &cfg
	}
}

func WithMode(mode core.Mode) Option {
	return func(a *App) {
		a.mode = mode
	}
}

// WithDev is shorthand for WithMode(core.ModeDev).
func WithDev() Option {
	return WithMode(core.ModeDev)
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithExportFileSystem replaces the file system Export writes to.
func WithExportFileSystem(fsys fs.FileSystem) Option {
	return func(a *App) {
		a.exportFS = fsys
	}
}

func New(opts ...Option) (*App, error) {
	app := &App{
		configPath: env.ConfigPath(),
		mode:       env.DetectMode(),
		logger:     zap.NewNop(),
		now:        time.Now,
		exportFS:   fs.NewOSFileSystem(),
		reloader:   apphttp.NewReloader(),
		metrics:    apphttp.NewMetrics(),
	}
	for _, opt := range opts {
		opt(app)
	}

	cfg, err := app.loadConfig()
	if err != nil {
		return nil, err
	}
	app.store = config.NewStore(cfg)

	bundle, err := usecase.LoadAssets(fs.NewEmbedFileSystem(assets.FS))
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	app.pages = usecase.NewPageService(bundle, app.logger, usecase.WithClock(app.now))

	if app.mode == core.ModeProd {
		if err := app.pages.Prerender(context.Background(), cfg.Site()); err != nil {
			return nil, err
		}
	}

	app.logger.Info("portfolio ready",
		zap.String("mode", app.mode.String()),
		zap.String("title", cfg.Title),
		zap.String("baseUrl", cfg.BaseURL),
	)
	return app, nil
}

func (a *App) loadConfig() (Config, error) {
	if a.config != nil {
		if err := a.config.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
		return *a.config, nil
	}
	return config.Load(a.configPath)
}

func (a *App) Config() Config {
	return a.store.Get()
}

func (a *App) Mode() core.Mode {
	return a.mode
}

func (a *App) Handler() http.Handler {
	return apphttp.NewRouter(apphttp.RouterConfig{
		Pages:    a.pages,
		Store:    a.store,
		IsDev:    a.mode == core.ModeDev,
		Reloader: a.reloader,
		Metrics:  a.metrics,
		Logger:   a.logger,
	})
}

// ReloadConfig re-reads the config file. On failure the current config
// stays in effect. Connected dev browsers are told to reload on success.
func (a *App) ReloadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.store.Set(cfg)

	if a.mode == core.ModeProd {
		if err := a.pages.Prerender(context.Background(), cfg.Site()); err != nil {
			return err
		}
	}

	a.reloader.Notify()
	a.logger.Info("config reloaded", zap.String("path", a.configPath))
	return nil
}

// Watch follows the config file until ctx is done.
func (a *App) Watch(ctx context.Context) error {
	w, err := watch.NewConfigWatcher(a.configPath, watch.DefaultDebounce, func() {
		if err := a.ReloadConfig(); err != nil {
			a.logger.Warn("config reload failed, keeping previous config", zap.Error(err))
		}
	}, a.logger)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// Export writes the static site to dir.
func (a *App) Export(ctx context.Context, dir string, clean bool) ExportOutput {
	svc := usecase.NewExportService(a.exportFS, a.pages, a.logger)
	return svc.ExportStatic(ctx, usecase.ExportInput{
		Site:   a.store.Get().Site(),
		OutDir: dir,
		Clean:  clean,
	})
}
