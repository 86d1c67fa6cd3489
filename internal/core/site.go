package core

import "fmt"

const (
	DefaultSiteTitle   = "Vinay Kagithapu"
	DefaultSiteTagline = "DevOps Engineer | LLM Infrastructure | Kubernetes | DevSecOps"
	DefaultAuthor      = "Vinay Kagithapu"

	HomePageTitle       = "Home"
	HomePageDescription = "Vinay Kagithapu - DevOps Engineer specializing in LLM Infrastructure, Kubernetes, and DevSecOps"

	AboutPath    = "/about"
	ProjectsPath = "/projects"
)

// SiteConfig is the site-wide configuration every page can read.
type SiteConfig struct {
	Title   string
	Tagline string
	BaseURL string
	Author  string
}

func DefaultSite() SiteConfig {
	return SiteConfig{
		Title:   DefaultSiteTitle,
		Tagline: DefaultSiteTagline,
		BaseURL: "/",
		Author:  DefaultAuthor,
	}
}

func (s SiteConfig) Validate() error {
	if s.Title == "" {
		return ErrEmptySiteTitle
	}
	if err := ValidateRoutePath(s.BaseURL); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, s.BaseURL, err)
	}
	return nil
}
