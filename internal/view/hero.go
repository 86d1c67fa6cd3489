package view

import (
	"html/template"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

type HeroProps struct {
	Title           string
	Tagline         string
	ProfileImageURL string
	ProfileAlt      string
}

type heroData struct {
	HeaderClass         string
	ContentClass        string
	ProfileSectionClass string
	ImageWrapperClass   string
	ImageClass          string
	GlowClass           string
	TextSectionClass    string
	ButtonsClass        string
	ImageURL            string
	ImageAlt            string
	Title               template.HTML
	Tagline             string
	Actions             []template.HTML
}

// heroActions are the two calls to action under the tagline.
var heroActions = []LinkProps{
	{
		To:        core.AboutPath,
		ClassName: "button button--secondary button--lg",
		Text:      "About Me →",
	},
	{
		To:        core.ProjectsPath,
		ClassName: "button button--outline button--secondary button--lg",
		Style:     "margin-left: 1rem",
		Text:      "View Projects",
	},
}

// HeroHeader renders the banner at the top of the home page.
func HeroHeader(ctx Context, p HeroProps) (template.HTML, error) {
	title, err := Heading(HeadingProps{As: "h1", ClassName: "hero__title", Text: p.Title})
	if err != nil {
		return "", err
	}

	actions := make([]template.HTML, 0, len(heroActions))
	for _, action := range heroActions {
		link, err := Link(ctx, action)
		if err != nil {
			return "", err
		}
		actions = append(actions, link)
	}

	return render("hero", heroData{
		HeaderClass:         Clsx("hero hero--primary", HomeStyles.Class("heroBanner")),
		ContentClass:        HomeStyles.Class("heroContent"),
		ProfileSectionClass: HomeStyles.Class("profileSection"),
		ImageWrapperClass:   HomeStyles.Class("profileImageWrapper"),
		ImageClass:          HomeStyles.Class("profileImage"),
		GlowClass:           HomeStyles.Class("profileGlow"),
		TextSectionClass:    HomeStyles.Class("textSection"),
		ButtonsClass:        HomeStyles.Class("buttons"),
		ImageURL:            p.ProfileImageURL,
		ImageAlt:            p.ProfileAlt,
		Title:               title,
		Tagline:             p.Tagline,
		Actions:             actions,
	})
}
