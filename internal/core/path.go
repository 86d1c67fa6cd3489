package core

import (
	"fmt"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func ValidateRoutePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(path, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(path, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	return nil
}

// IsExternalURL reports whether target leaves the site.
func IsExternalURL(target string) bool {
	return strings.Contains(target, "://") ||
		strings.HasPrefix(target, "mailto:") ||
		strings.HasPrefix(target, "//")
}

// ResolveURL joins an internal path with the site base URL.
// External URLs and fragment-only targets are returned unchanged.
func ResolveURL(baseURL, target string) string {
	if IsExternalURL(target) || strings.HasPrefix(target, "#") {
		return target
	}

	base := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	return base + target
}
