package view

import (
	"html/template"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

// HomePage renders the complete home document: hero banner, then the
// feature section, inside the layout.
func HomePage(ctx Context, features []core.FeatureEntry) (template.HTML, error) {
	alt := ctx.Site.Author
	if alt == "" {
		alt = ctx.Site.Title
	}

	hero, err := HeroHeader(ctx, HeroProps{
		Title:           ctx.Site.Title,
		Tagline:         ctx.Site.Tagline,
		ProfileImageURL: ctx.Assets.ProfileImage,
		ProfileAlt:      alt,
	})
	if err != nil {
		return "", err
	}

	section, err := FeatureSection(features)
	if err != nil {
		return "", err
	}

	body := hero + "\n<main>\n" + section + "\n</main>"

	return Layout(ctx, LayoutProps{
		Title:       core.HomePageTitle,
		Description: core.HomePageDescription,
		Body:        body,
	})
}

type notFoundData struct {
	Heading  template.HTML
	HomeLink template.HTML
}

func NotFoundPage(ctx Context) (template.HTML, error) {
	heading, err := Heading(HeadingProps{As: "h1", ClassName: "hero__title", Text: "Page Not Found"})
	if err != nil {
		return "", err
	}
	home, err := Link(ctx, LinkProps{To: "/", Text: "Back to the home page"})
	if err != nil {
		return "", err
	}

	body, err := render("not-found", notFoundData{Heading: heading, HomeLink: home})
	if err != nil {
		return "", err
	}

	return Layout(ctx, LayoutProps{Title: "Page Not Found", Body: body})
}
