package view

import (
	"html/template"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

type LinkProps struct {
	To        string
	ClassName string
	Style     template.CSS
	Text      string
}

type linkData struct {
	LinkProps
	Href     string
	External bool
}

// Link renders an anchor. Internal targets are resolved against the site
// base URL; external ones open in a new tab.
func Link(ctx Context, p LinkProps) (template.HTML, error) {
	return render("link", linkData{
		LinkProps: p,
		Href:      core.ResolveURL(ctx.Site.BaseURL, p.To),
		External:  core.IsExternalURL(p.To),
	})
}
