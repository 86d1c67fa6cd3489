package view

import "github.com/vinaykagithapu/portfolio/internal/core"

// Context carries what every component may read while rendering a page.
type Context struct {
	Site      core.SiteConfig
	Assets    AssetURLs
	ReloadURL string
	Year      int
}

type AssetURLs struct {
	Stylesheet   string
	ProfileImage string
	Favicon      string
}
