package core

import (
	"errors"
	"testing"
)

func TestFeaturesReturnsCopy(t *testing.T) {
	first := Features()
	if len(first) != 3 {
		t.Fatalf("Expected 3 features, got %d", len(first))
	}

	first[0].Title = "changed"

	if Features()[0].Title != "LLM Infrastructure" {
		t.Error("Features() must not expose the package-level list")
	}
}

func TestFeaturesAreComplete(t *testing.T) {
	for i, f := range Features() {
		if f.Title == "" || f.Emoji == "" || f.Description == "" {
			t.Errorf("feature %d is missing a field: %+v", i, f)
		}
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, target, want string
	}{
		{"/", "/about", "/about"},
		{"", "/about", "/about"},
		{"/site/", "/about", "/site/about"},
		{"/site", "projects", "/site/projects"},
		{"/site/", "https://example.com", "https://example.com"},
		{"/site/", "#top", "#top"},
	}

	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.target); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
		}
	}
}

func TestValidateRoutePath(t *testing.T) {
	valid := []string{"/", "/portfolio/", "/a/b"}
	for _, p := range valid {
		if err := ValidateRoutePath(p); err != nil {
			t.Errorf("ValidateRoutePath(%q) returned %v", p, err)
		}
	}

	invalid := []string{"", "portfolio", "/a?b", "/a#b", "/../etc"}
	for _, p := range invalid {
		if err := ValidateRoutePath(p); err == nil {
			t.Errorf("ValidateRoutePath(%q) should fail", p)
		}
	}
}

func TestSiteConfigValidate(t *testing.T) {
	if err := DefaultSite().Validate(); err != nil {
		t.Fatalf("default site should be valid: %v", err)
	}

	s := DefaultSite()
	s.Title = ""
	if err := s.Validate(); !errors.Is(err, ErrEmptySiteTitle) {
		t.Errorf("Expected ErrEmptySiteTitle, got %v", err)
	}

	s = DefaultSite()
	s.BaseURL = "portfolio"
	if err := s.Validate(); !errors.Is(err, ErrInvalidBaseURL) {
		t.Errorf("Expected ErrInvalidBaseURL, got %v", err)
	}
}

func TestOutputPathForRoute(t *testing.T) {
	tests := map[string]string{
		"/":          "index.html",
		"":           "index.html",
		"/404":       "404.html",
		"/about":     "about/index.html",
		"/projects/": "projects/index.html",
	}

	for route, want := range tests {
		if got := OutputPathForRoute(route); got != want {
			t.Errorf("OutputPathForRoute(%q) = %q, want %q", route, got, want)
		}
	}
}

func TestFingerprintName(t *testing.T) {
	if got := FingerprintName("styles.css", "abc"); got != "styles.abc.css" {
		t.Errorf("got %q", got)
	}
	if got := FingerprintName("styles.css", ""); got != "styles.css" {
		t.Errorf("got %q", got)
	}
}

func TestHashContentIsStable(t *testing.T) {
	a := HashContent([]byte("hello"))
	b := HashContent([]byte("hello"))
	c := HashContent([]byte("hellp"))

	if a != b {
		t.Errorf("hash not stable: %s != %s", a, b)
	}
	if a == c {
		t.Errorf("different content produced the same hash %s", a)
	}
	if len(ShortHash([]byte("hello"), 3)) > 3 {
		t.Error("ShortHash exceeded requested length")
	}
}

func TestGetContentType(t *testing.T) {
	tests := map[string]string{
		"styles.abc.css": "text/css; charset=utf-8",
		"profile.PNG":    "image/png",
		"favicon.svg":    "image/svg+xml",
		"unknown.bin":    "application/octet-stream",
	}

	for path, want := range tests {
		if got := GetContentType(path); got != want {
			t.Errorf("GetContentType(%q) = %q, want %q", path, got, want)
		}
	}
}
