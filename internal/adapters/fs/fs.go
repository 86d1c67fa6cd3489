package fs

import (
	iofs "io/fs"
)

type FileReader interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
}

type FileSystem interface {
	FileReader
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	RemoveAll(path string) error
}
