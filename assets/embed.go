// Package assets holds the static files bundled into the binary.
package assets

import "embed"

//go:embed profile.png favicon.svg
var FS embed.FS

const (
	ProfileImage = "profile.png"
	Favicon      = "favicon.svg"
	Stylesheet   = "styles.css"
)
