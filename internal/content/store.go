package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Store holds the site currently being served. Readers never block; a reload
// swaps the whole Site at once.
type Store struct {
	path    string
	current atomic.Pointer[Site]
}

// NewStore wraps an already loaded site. path is the content file it came
// from and may be empty when only defaults are in use.
func NewStore(site *Site, path string) *Store {
	s := &Store{path: path}
	s.current.Store(site)
	return s
}

// Current returns the site to render.
func (s *Store) Current() *Site {
	return s.current.Load()
}

// Reload re-reads the content file. On error the previous site stays in place.
func (s *Store) Reload() error {
	site, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(site)
	return nil
}

// Watch reloads the site whenever the content file changes and blocks until
// ctx is done. The parent directory is watched so editors that replace the
// file through a rename are still picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(s.path)
	slog.Debug("Watching content file", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Content reload failed, keeping previous content", "path", target, "error", err)
				continue
			}
			slog.Info("Content reloaded", "path", target)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Content watcher error", "error", err)
		}
	}
}
