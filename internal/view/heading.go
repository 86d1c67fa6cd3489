package view

import "html/template"

type HeadingProps struct {
	As        string
	ClassName string
	Text      string
}

// Heading renders Text at the semantic level named by As ("h1".."h6").
// Unknown levels render as h2.
func Heading(p HeadingProps) (template.HTML, error) {
	switch p.As {
	case "h1", "h2", "h3", "h4", "h5", "h6":
	default:
		p.As = "h2"
	}
	return render("heading-"+p.As, p)
}
