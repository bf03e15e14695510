// Package storage writes build output, such as the static export, to a
// filesystem.
package storage

import (
	"context"
	"io"
)

// Store defines the interface for a file storage backend.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
