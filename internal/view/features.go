package view

import (
	"html/template"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

type featureCardData struct {
	Key         int
	Emoji       string
	EmojiClass  string
	Heading     template.HTML
	Description template.HTML
}

// FeatureCard renders one feature entry. key is the entry's position in
// the list it came from.
func FeatureCard(key int, entry core.FeatureEntry) (template.HTML, error) {
	heading, err := Heading(HeadingProps{As: "h3", Text: entry.Title})
	if err != nil {
		return "", err
	}

	return render("feature-card", featureCardData{
		Key:         key,
		Emoji:       entry.Emoji,
		EmojiClass:  FeatureStyles.Class("featureEmoji"),
		Heading:     heading,
		Description: entry.Description,
	})
}

type featureSectionData struct {
	SectionClass string
	Cards        []template.HTML
}

// FeatureSection renders every entry, in order, inside one row.
func FeatureSection(entries []core.FeatureEntry) (template.HTML, error) {
	cards := make([]template.HTML, 0, len(entries))
	for i, entry := range entries {
		card, err := FeatureCard(i, entry)
		if err != nil {
			return "", err
		}
		cards = append(cards, card)
	}

	return render("feature-section", featureSectionData{
		SectionClass: FeatureStyles.Class("features"),
		Cards:        cards,
	})
}
