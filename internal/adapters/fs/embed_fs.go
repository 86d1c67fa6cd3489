package fs

import (
	"errors"
	iofs "io/fs"
)

var ErrReadOnly = errors.New("embedded filesystem is read-only")

// EmbedFileSystem exposes a read-only io/fs.FS, usually an embed.FS,
// through the FileSystem port.
type EmbedFileSystem struct {
	fs iofs.FS
}

func NewEmbedFileSystem(fsys iofs.FS) *EmbedFileSystem {
	return &EmbedFileSystem{fs: fsys}
}

func (fs *EmbedFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, path)
}

func (fs *EmbedFileSystem) FileExists(path string) bool {
	_, err := iofs.Stat(fs.fs, path)
	return err == nil
}

func (fs *EmbedFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) RemoveAll(path string) error {
	return ErrReadOnly
}
