package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// AferoStore is a Store on any afero filesystem: a directory on disk for
// exports, or memory in tests.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDirStore roots a store at dir on the local disk. Paths given to the
// store cannot escape dir.
func NewDirStore(dir string) (*AferoStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return NewAferoStore(afero.NewBasePathFs(osFs, dir)), nil
}

// Save writes the content of the reader to path, creating parent directories
// and replacing any existing file.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Open opens a file for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Delete removes a file.
func (s *AferoStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.fs.Remove(path)
}
