package usecase

import (
	"fmt"

	"github.com/vinaykagithapu/portfolio/assets"
	"github.com/vinaykagithapu/portfolio/internal/core"
	"github.com/vinaykagithapu/portfolio/internal/view"
)

// AssetBundle is every static file the site references, keyed by
// logical name, plus the manifest of their fingerprinted names.
type AssetBundle struct {
	Files    map[string][]byte
	Manifest *core.Manifest
}

// LoadAssets reads the bundled files from r and adds the generated
// stylesheet.
func LoadAssets(r FileReader) (*AssetBundle, error) {
	files := make(map[string][]byte, 3)
	for _, name := range []string{assets.ProfileImage, assets.Favicon} {
		data, err := r.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read asset %s: %w", name, err)
		}
		files[name] = data
	}

	css, err := view.Stylesheet()
	if err != nil {
		return nil, err
	}
	files[assets.Stylesheet] = css

	return &AssetBundle{
		Files:    files,
		Manifest: core.BuildManifest(files),
	}, nil
}

// URLs resolves the public asset URLs under baseURL.
func (b *AssetBundle) URLs(baseURL string) (view.AssetURLs, error) {
	var urls view.AssetURLs
	var err error
	if urls.Stylesheet, err = b.Manifest.URL(baseURL, assets.Stylesheet); err != nil {
		return view.AssetURLs{}, err
	}
	if urls.ProfileImage, err = b.Manifest.URL(baseURL, assets.ProfileImage); err != nil {
		return view.AssetURLs{}, err
	}
	if urls.Favicon, err = b.Manifest.URL(baseURL, assets.Favicon); err != nil {
		return view.AssetURLs{}, err
	}
	return urls, nil
}

// File returns the contents and entry of a fingerprinted asset file.
func (b *AssetBundle) File(file string) ([]byte, core.ManifestEntry, bool) {
	entry, ok := b.Manifest.Lookup(file)
	if !ok {
		return nil, core.ManifestEntry{}, false
	}
	return b.Files[entry.Source], entry, true
}
