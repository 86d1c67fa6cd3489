package view

import (
	"html/template"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

func TestFeatureSectionRendersOneCardPerEntryInOrder(t *testing.T) {
	entries := []core.FeatureEntry{
		{Title: "First", Emoji: "1️⃣", Description: "one"},
		{Title: "Second", Emoji: "2️⃣", Description: "two"},
		{Title: "Third", Emoji: "3️⃣", Description: "three"},
		{Title: "Fourth", Emoji: "4️⃣", Description: "four"},
	}

	out, err := FeatureSection(entries)
	require.NoError(t, err)

	cards := findAll(parse(t, out), byClass("col--4"))
	require.Len(t, cards, len(entries))

	var titles, keys []string
	for _, card := range cards {
		titles = append(titles, textOf(findAll(card, byTag("h3"))[0]))
		keys = append(keys, attr(card, "data-key"))
	}

	if diff := cmp.Diff([]string{"First", "Second", "Third", "Fourth"}, titles); diff != "" {
		t.Errorf("card order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0", "1", "2", "3"}, keys); diff != "" {
		t.Errorf("card keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFeatureCardContainsOnlyItsEntry(t *testing.T) {
	entries := []core.FeatureEntry{
		{Title: "Alpha", Emoji: "🅰️", Description: "alpha description"},
		{Title: "Beta", Emoji: "🅱️", Description: "beta description"},
	}

	out, err := FeatureSection(entries)
	require.NoError(t, err)

	cards := findAll(parse(t, out), byClass("col--4"))
	require.Len(t, cards, 2)

	for i, card := range cards {
		entry := entries[i]

		emojis := findAll(card, byClass(FeatureStyles.Class("featureEmoji")))
		require.Len(t, emojis, 1)
		assert.Equal(t, entry.Emoji, textOf(emojis[0]))

		headings := findAll(card, byTag("h3"))
		require.Len(t, headings, 1)
		assert.Equal(t, entry.Title, textOf(headings[0]))

		paragraphs := findAll(card, byTag("p"))
		require.Len(t, paragraphs, 1)
		assert.Equal(t, string(entry.Description), textOf(paragraphs[0]))

		other := entries[1-i]
		assert.NotContains(t, textOf(card), other.Title)
	}
}

func TestBuiltInFeaturesRenderThreeCards(t *testing.T) {
	out, err := FeatureSection(core.Features())
	require.NoError(t, err)

	cards := findAll(parse(t, out), byClass("col--4"))
	require.Len(t, cards, 3)

	wantTitles := []string{"LLM Infrastructure", "Kubernetes & Cloud Native", "DevSecOps & Automation"}
	wantEmojis := []string{"🧠", "☸️", "🔒"}

	for i, card := range cards {
		assert.Equal(t, wantTitles[i], textOf(findAll(card, byTag("h3"))[0]))
		assert.Equal(t, wantEmojis[i], textOf(findAll(card, byTag("span"))[0]))
	}
}

func TestFeatureCardEmptyEntryRendersEmptyRegions(t *testing.T) {
	out, err := FeatureCard(0, core.FeatureEntry{})
	require.NoError(t, err)

	doc := parse(t, out)
	headings := findAll(doc, byTag("h3"))
	require.Len(t, headings, 1)
	assert.Empty(t, textOf(headings[0]))
	assert.Empty(t, textOf(findAll(doc, byTag("p"))[0]))
}

func TestFeatureSectionEmptyList(t *testing.T) {
	out, err := FeatureSection(nil)
	require.NoError(t, err)

	doc := parse(t, out)
	assert.Len(t, findAll(doc, byClass("row")), 1)
	assert.Empty(t, findAll(doc, byClass("col--4")))
}

func TestFeatureDescriptionKeepsMarkup(t *testing.T) {
	out, err := FeatureCard(0, core.FeatureEntry{
		Title:       "Markup",
		Emoji:       "✨",
		Description: template.HTML("Built with <strong>Go</strong>"),
	})
	require.NoError(t, err)

	strong := findAll(parse(t, out), byTag("strong"))
	require.Len(t, strong, 1)
	assert.Equal(t, "Go", textOf(strong[0]))
}

func TestFeatureTitleIsEscaped(t *testing.T) {
	out, err := FeatureCard(0, core.FeatureEntry{Title: "<script>alert(1)</script>"})
	require.NoError(t, err)

	assert.Empty(t, findAll(parse(t, out), byTag("script")))
	assert.Contains(t, string(out), "&lt;script&gt;")
}
