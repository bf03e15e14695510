// Package export renders the site into a directory of plain files that any
// static host can serve.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/storage"
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/web"
	"github.com/nfrund/folio/web/src/templates/pages"
	"github.com/nfrund/folio/web/src/templates/partials"
)

// IndexFile is the entry page of an export.
const IndexFile = "index.html"

// ManifestFile lists the files of the last export, one per line, so the next
// export can remove the ones it no longer writes.
const ManifestFile = ".folio-manifest"

// themeSourceExport marks a page whose theme was chosen by the link that led
// to it, so the browser leaves it alone.
const themeSourceExport = "export"

// Options controls an export.
type Options struct {
	// Dark selects the theme of index.html.
	Dark bool
}

// Result lists the files written, in write order, and the files of the
// previous export that were removed.
type Result struct {
	Files   []string
	Removed []string
}

// Exporter writes the static site to a Store.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
	assets   fs.FS
	now      func() time.Time
}

// New creates an Exporter that copies the embedded static assets.
func New(store storage.Store, renderer rendering.Renderer) *Exporter {
	return &Exporter{store: store, renderer: renderer, assets: web.FS, now: time.Now}
}

// Export writes light.html, dark.html, index.html and every static asset.
// Each page is the full document with all sections visible, no server round
// trips, and a theme switch that links to the other page. Files left over
// from the previous export are removed.
func (x *Exporter) Export(ctx context.Context, site *content.Site, opts Options) (Result, error) {
	var res Result
	now := x.now()

	previous, err := x.manifest(ctx)
	if err != nil {
		return res, err
	}

	for _, dark := range []bool{false, true} {
		data := pages.PageData{
			Site:        site,
			Theme:       ui.NewTheme(dark),
			ThemeSource: themeSourceExport,
			Hero:        ui.HeroReveal{Animate: true},
			Static:      true,
			Now:         now,
		}
		if err := x.page(ctx, partials.StaticPage(dark), data, &res); err != nil {
			return res, err
		}

		if dark == opts.Dark {
			// The entry page may still be corrected to the visitor's OS preference.
			data.ThemeSource = ""
			if err := x.page(ctx, IndexFile, data, &res); err != nil {
				return res, err
			}
		}
	}

	if err := x.copyAssets(ctx, &res); err != nil {
		return res, err
	}
	if err := x.prune(ctx, previous, &res); err != nil {
		return res, err
	}
	manifest := strings.Join(res.Files, "\n") + "\n"
	if _, err := x.store.Save(ctx, ManifestFile, strings.NewReader(manifest)); err != nil {
		return res, fmt.Errorf("write manifest: %w", err)
	}
	slog.Info("Static export complete", "files", len(res.Files), "removed", len(res.Removed))
	return res, nil
}

// manifest reads the file list of the previous export. A first export has none.
func (x *Exporter) manifest(ctx context.Context) ([]string, error) {
	r, err := x.store.Open(ctx, ManifestFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var names []string
	for _, line := range strings.Split(string(b), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// prune deletes the previous export's files that this export did not write.
// Names that would leave the output directory are skipped.
func (x *Exporter) prune(ctx context.Context, previous []string, res *Result) error {
	written := make(map[string]bool, len(res.Files))
	for _, name := range res.Files {
		written[name] = true
	}
	for _, name := range previous {
		if written[name] || name == ManifestFile || !filepath.IsLocal(name) {
			continue
		}
		if err := x.store.Delete(ctx, name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("remove %s: %w", name, err)
		}
		res.Removed = append(res.Removed, name)
	}
	return nil
}

func (x *Exporter) page(ctx context.Context, name string, data pages.PageData, res *Result) error {
	body, err := x.renderer.RenderComponent(ctx, pages.Home(data))
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return x.save(ctx, name, body, res)
}

func (x *Exporter) save(ctx context.Context, name string, body []byte, res *Result) error {
	if _, err := x.store.Save(ctx, name, bytes.NewReader(body)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	res.Files = append(res.Files, name)
	return nil
}

func (x *Exporter) copyAssets(ctx context.Context, res *Result) error {
	return fs.WalkDir(x.assets, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := fs.ReadFile(x.assets, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		return x.save(ctx, path, body, res)
	})
}
