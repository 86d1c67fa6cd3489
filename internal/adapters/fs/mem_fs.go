package fs

import (
	iofs "io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// MemFileSystem is an in-memory FileSystem. Paths are cleaned with
// path.Clean so "a/./b" and "a/b" name the same file.
type MemFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{files: make(map[string][]byte)}
}

func (fs *MemFileSystem) ReadFile(name string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	data, ok := fs.files[path.Clean(name)]
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: name, Err: iofs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (fs *MemFileSystem) FileExists(name string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	_, ok := fs.files[path.Clean(name)]
	return ok
}

func (fs *MemFileSystem) WriteFile(name string, data []byte, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path.Clean(name)] = append([]byte(nil), data...)
	return nil
}

func (fs *MemFileSystem) MkdirAll(name string, perm iofs.FileMode) error {
	return nil
}

func (fs *MemFileSystem) RemoveAll(name string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	prefix := path.Clean(name) + "/"
	for p := range fs.files {
		if p == path.Clean(name) || strings.HasPrefix(p, prefix) {
			delete(fs.files, p)
		}
	}
	return nil
}

// Paths lists every stored file in sorted order.
func (fs *MemFileSystem) Paths() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
