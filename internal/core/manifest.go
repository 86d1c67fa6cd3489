package core

import (
	"encoding/json"
	"fmt"
	"sort"
)

const AssetsPrefix = "/assets/"

type ManifestEntry struct {
	Source      string `json:"source"`
	File        string `json:"file"`
	ContentType string `json:"contentType"`
	Hash        string `json:"hash"`
}

// Manifest maps logical asset names to their fingerprinted files.
type Manifest struct {
	Entries map[string]ManifestEntry `json:"entries"`
	byFile  map[string]string
}

// BuildManifest fingerprints every asset. Keys of assets are logical
// names such as "styles.css".
func BuildManifest(assets map[string][]byte) *Manifest {
	m := &Manifest{
		Entries: make(map[string]ManifestEntry, len(assets)),
		byFile:  make(map[string]string, len(assets)),
	}
	for name, data := range assets {
		hash := ShortHash(data, 8)
		file := FingerprintName(name, hash)
		m.Entries[name] = ManifestEntry{
			Source:      name,
			File:        file,
			ContentType: GetContentType(name),
			Hash:        hash,
		}
		m.byFile[file] = name
	}
	return m
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m.byFile = make(map[string]string, len(m.Entries))
	for name, entry := range m.Entries {
		m.byFile[entry.File] = name
	}
	return &m, nil
}

func (m *Manifest) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// URL returns the public URL of a logical asset under baseURL.
func (m *Manifest) URL(baseURL, name string) (string, error) {
	entry, ok := m.Entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAsset, name)
	}
	return ResolveURL(baseURL, AssetsPrefix+entry.File), nil
}

// Lookup resolves a fingerprinted file name back to its entry.
func (m *Manifest) Lookup(file string) (ManifestEntry, bool) {
	name, ok := m.byFile[file]
	if !ok {
		return ManifestEntry{}, false
	}
	return m.Entries[name], true
}

// Names returns the logical asset names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Entries))
	for name := range m.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
