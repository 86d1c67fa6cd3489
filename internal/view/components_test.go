package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingLevels(t *testing.T) {
	tests := []struct {
		as   string
		want string
	}{
		{"h1", "h1"},
		{"h3", "h3"},
		{"h6", "h6"},
		{"", "h2"},
		{"div", "h2"},
	}

	for _, tt := range tests {
		t.Run(tt.as, func(t *testing.T) {
			out, err := Heading(HeadingProps{As: tt.as, ClassName: "x", Text: "Hello"})
			require.NoError(t, err)

			nodes := findAll(parse(t, out), byTag(tt.want))
			require.Len(t, nodes, 1)
			assert.Equal(t, "Hello", textOf(nodes[0]))
			assert.Equal(t, "x", attr(nodes[0], "class"))
		})
	}
}

func TestHeadingWithoutClass(t *testing.T) {
	out, err := Heading(HeadingProps{As: "h3", Text: "Plain"})
	require.NoError(t, err)
	assert.Equal(t, "<h3>Plain</h3>", string(out))
}

func TestLinkResolution(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		to       string
		wantHref string
		external bool
	}{
		{"root base", "/", "/about", "/about", false},
		{"empty base", "", "/projects", "/projects", false},
		{"nested base", "/portfolio/", "/about", "/portfolio/about", false},
		{"relative target", "/portfolio/", "about", "/portfolio/about", false},
		{"external", "/portfolio/", "https://github.com/vinaykagithapu", "https://github.com/vinaykagithapu", true},
		{"mailto", "/", "mailto:hi@example.com", "mailto:hi@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			ctx.Site.BaseURL = tt.baseURL

			out, err := Link(ctx, LinkProps{To: tt.to, Text: "go"})
			require.NoError(t, err)

			links := findAll(parse(t, out), byTag("a"))
			require.Len(t, links, 1)
			assert.Equal(t, tt.wantHref, attr(links[0], "href"))
			if tt.external {
				assert.Equal(t, "_blank", attr(links[0], "target"))
				assert.Equal(t, "noopener noreferrer", attr(links[0], "rel"))
			} else {
				assert.Empty(t, attr(links[0], "target"))
			}
		})
	}
}

func TestStyleModuleClassesAreScoped(t *testing.T) {
	home := HomeStyles.Class("buttons")
	other := NewStyleModule("pages/other").Class("buttons")

	assert.True(t, strings.HasPrefix(home, "buttons_"))
	assert.NotEqual(t, home, other)
	assert.Equal(t, home, HomeStyles.Class("buttons"))
	assert.Empty(t, HomeStyles.Class(""))
}

func TestClsx(t *testing.T) {
	assert.Equal(t, "hero hero--primary banner", Clsx("hero hero--primary", "", "  banner "))
	assert.Empty(t, Clsx())
}

func TestStylesheetUsesScopedClasses(t *testing.T) {
	css, err := Stylesheet()
	require.NoError(t, err)

	for _, class := range []string{
		HomeStyles.Class("heroBanner"),
		HomeStyles.Class("profileImage"),
		HomeStyles.Class("profileGlow"),
		HomeStyles.Class("buttons"),
		FeatureStyles.Class("features"),
		FeatureStyles.Class("featureEmoji"),
	} {
		assert.Contains(t, string(css), "."+class+" ")
	}
	assert.NotContains(t, string(css), "{{")
}
