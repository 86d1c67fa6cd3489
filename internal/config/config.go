// Package config loads the site configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

const (
	DefaultPath      = "portfolio.yaml"
	DefaultAddr      = ":8080"
	DefaultExportDir = "build"
)

// Config holds all portfolio configuration.
type Config struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	BaseURL string `yaml:"baseUrl"`
	Author  string `yaml:"author"`

	Server ServerConfig `yaml:"server"`
	Export ExportConfig `yaml:"export"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

func Default() Config {
	site := core.DefaultSite()
	return Config{
		Title:   site.Title,
		Tagline: site.Tagline,
		BaseURL: site.BaseURL,
		Author:  site.Author,
		Server:  ServerConfig{Addr: DefaultAddr},
		Export:  ExportConfig{Dir: DefaultExportDir},
	}
}

// Load reads path on top of the defaults. A missing file is not an
// error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		applyEnv(&cfg)
		return cfg, cfg.Validate()
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if addr := os.Getenv("PORTFOLIO_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
}

func (c Config) Site() core.SiteConfig {
	return core.SiteConfig{
		Title:   c.Title,
		Tagline: c.Tagline,
		BaseURL: c.BaseURL,
		Author:  c.Author,
	}
}

func (c Config) Validate() error {
	return c.Site().Validate()
}

// Store publishes the current configuration to concurrent readers.
type Store struct {
	v atomic.Pointer[Config]
}

func NewStore(cfg Config) *Store {
	s := &Store{}
	s.Set(cfg)
	return s
}

func (s *Store) Get() Config {
	return *s.v.Load()
}

func (s *Store) Set(cfg Config) {
	s.v.Store(&cfg)
}
