package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed templates/styles.css
var stylesheetSource string

var componentTemplates = template.Must(template.New("view").ParseFS(templateFS, "templates/*.html"))

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := componentTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
