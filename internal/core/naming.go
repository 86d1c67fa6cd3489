package core

import (
	"path"
	"strings"
)

// OutputPathForRoute maps a route to the file an export writes for it.
// "/" becomes "index.html" and "/404" becomes "404.html"; every other
// route gets a directory with its own index.html.
func OutputPathForRoute(route string) string {
	route = NormalizePath(route)
	switch route {
	case "/":
		return "index.html"
	case NotFoundPath:
		return "404.html"
	}
	return path.Join(strings.TrimPrefix(route, "/"), "index.html")
}

// FingerprintName inserts hash before the extension of name:
// "styles.css" becomes "styles.<hash>.css".
func FingerprintName(name, hash string) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if hash == "" {
		return name
	}
	return base + "." + hash + ext
}
