package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestLayoutDocumentTitle(t *testing.T) {
	tests := []struct {
		page, site, want string
	}{
		{"Home", "Vinay Kagithapu", "Home | Vinay Kagithapu"},
		{"", "Vinay Kagithapu", "Vinay Kagithapu"},
		{"Home", "", "Home"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, documentTitle(tt.page, tt.site))
	}
}

func TestLayoutShell(t *testing.T) {
	out, err := Layout(testContext(), LayoutProps{
		Title:       "Home",
		Description: "about me",
		Body:        "<p id=\"content\">hello</p>",
	})
	require.NoError(t, err)

	doc := parse(t, out)

	var stylesheet, icon string
	for _, link := range findAll(doc, byTag("link")) {
		switch attr(link, "rel") {
		case "stylesheet":
			stylesheet = attr(link, "href")
		case "icon":
			icon = attr(link, "href")
		}
	}
	assert.Equal(t, "/assets/styles.test.css", stylesheet)
	assert.Equal(t, "/assets/favicon.test.svg", icon)

	brand := findAll(doc, byClass("navbar__brand"))
	require.Len(t, brand, 1)
	assert.Equal(t, "Vinay Kagithapu", textOf(brand[0]))

	content := findAll(doc, func(n *html.Node) bool { return attr(n, "id") == "content" })
	require.Len(t, content, 1)

	footer := findAll(doc, byTag("footer"))
	require.Len(t, footer, 1)
	assert.Equal(t, "Copyright © 2026 Vinay Kagithapu.", textOf(footer[0]))

	assert.Empty(t, findAll(doc, byTag("script")))
}

func TestLayoutReloadScriptOnlyWhenRequested(t *testing.T) {
	ctx := testContext()
	ctx.ReloadURL = "/__reload"

	out, err := Layout(ctx, LayoutProps{Title: "Home"})
	require.NoError(t, err)

	scripts := findAll(parse(t, out), byTag("script"))
	require.Len(t, scripts, 1)
	assert.Contains(t, textOf(scripts[0]), "EventSource")
	assert.Contains(t, textOf(scripts[0]), "__reload")
}

func TestLayoutCopyrightWithoutYear(t *testing.T) {
	ctx := testContext()
	ctx.Year = 0
	ctx.Site.Author = ""

	assert.Equal(t, "Copyright © Vinay Kagithapu.", copyright(ctx))
}
