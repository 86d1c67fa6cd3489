package view

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/vinaykagithapu/portfolio/internal/core"
)

// StyleModule scopes class names the way CSS modules do: every key gets
// a suffix derived from the module name, so two modules can both use
// "buttons" without colliding.
type StyleModule struct {
	name string
}

func NewStyleModule(name string) StyleModule {
	return StyleModule{name: name}
}

func (m StyleModule) Class(key string) string {
	if key == "" {
		return ""
	}
	return key + "_" + core.ShortHash([]byte(m.name+"/"+key), 4)
}

var (
	HomeStyles    = NewStyleModule("pages/index")
	FeatureStyles = NewStyleModule("components/HomepageFeatures")
)

var styleModules = map[string]StyleModule{
	"home":     HomeStyles,
	"features": FeatureStyles,
}

// Clsx joins the non-empty class names with single spaces.
func Clsx(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

var stylesheet = sync.OnceValues(func() ([]byte, error) {
	tmpl, err := template.New("styles.css").Funcs(template.FuncMap{
		"cls": func(module, key string) (string, error) {
			m, ok := styleModules[module]
			if !ok {
				return "", fmt.Errorf("unknown style module %q", module)
			}
			return m.Class(key), nil
		},
	}).Parse(stylesheetSource)
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}
	return buf.Bytes(), nil
})

// Stylesheet returns the site stylesheet with scoped class names filled in.
func Stylesheet() ([]byte, error) {
	return stylesheet()
}
