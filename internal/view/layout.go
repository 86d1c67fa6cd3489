package view

import (
	"fmt"
	"html/template"
)

type LayoutProps struct {
	Title       string
	Description string
	Body        template.HTML
}

type layoutData struct {
	DocumentTitle string
	Description   string
	StylesheetURL string
	FaviconURL    string
	Brand         template.HTML
	Body          template.HTML
	Copyright     string
	ReloadURL     string
}

// Layout wraps page content in the document shell: head metadata, the
// navbar and the footer.
func Layout(ctx Context, p LayoutProps) (template.HTML, error) {
	brand, err := Link(ctx, LinkProps{To: "/", ClassName: "navbar__brand", Text: ctx.Site.Title})
	if err != nil {
		return "", err
	}

	return render("layout", layoutData{
		DocumentTitle: documentTitle(p.Title, ctx.Site.Title),
		Description:   p.Description,
		StylesheetURL: ctx.Assets.Stylesheet,
		FaviconURL:    ctx.Assets.Favicon,
		Brand:         brand,
		Body:          p.Body,
		Copyright:     copyright(ctx),
		ReloadURL:     ctx.ReloadURL,
	})
}

func documentTitle(pageTitle, siteTitle string) string {
	switch {
	case pageTitle == "":
		return siteTitle
	case siteTitle == "":
		return pageTitle
	}
	return pageTitle + " | " + siteTitle
}

func copyright(ctx Context) string {
	owner := ctx.Site.Author
	if owner == "" {
		owner = ctx.Site.Title
	}
	if ctx.Year > 0 {
		return fmt.Sprintf("Copyright © %d %s.", ctx.Year, owner)
	}
	return "Copyright © " + owner + "."
}
