// Package assets materializes one image file per entry by walking an
// ordered fallback chain: explicit remote URL, explicit local file,
// screenshot capture, generated placeholder. Every failure degrades to the
// next strategy with a warning; the resolver never fails a run.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jacortez/portalgen/internal/diag"
	"github.com/jacortez/portalgen/internal/portal"
)

const (
	// Subdir is the assets directory name under the output root; resolved
	// paths are relative to the output root so index.html can link them.
	Subdir = "assets"
	// Ext is the fixed extension for every materialized asset.
	Ext = ".png"
	// maxSlugLen bounds the filename stem derived from a title.
	maxSlugLen = 40
)

// RemoteFetcher downloads an image's bytes from an absolute web URL.
type RemoteFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Renderer captures a screenshot of a live page.
type Renderer interface {
	Capture(ctx context.Context, pageURL string, fullPage bool) ([]byte, error)
}

// Drawer synthesizes a placeholder image for the given text.
type Drawer interface {
	Render(text string) ([]byte, error)
}

// Resolver materializes one asset per entry. The renderer and drawer are
// optional capabilities; a nil value means the corresponding fallback step
// is skipped.
type Resolver struct {
	dir      string
	fetcher  RemoteFetcher
	renderer Renderer
	drawer   Drawer
	sink     diag.Sink
	logger   *zap.Logger
}

// NewResolver creates the assets directory under outputDir (idempotent) and
// returns a Resolver writing into it.
func NewResolver(
	outputDir string,
	fetcher RemoteFetcher,
	renderer Renderer,
	drawer Drawer,
	sink diag.Sink,
	logger *zap.Logger,
) (*Resolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := filepath.Join(outputDir, Subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create assets dir: %w", err)
	}
	return &Resolver{
		dir:      dir,
		fetcher:  fetcher,
		renderer: renderer,
		drawer:   drawer,
		sink:     sink,
		logger:   logger,
	}, nil
}

// Resolve walks the fallback chain for one entry and returns the relative
// path of the materialized asset, or "" when every strategy was exhausted.
// Slug collisions are not deduplicated: the later entry overwrites the
// earlier one's file.
func (r *Resolver) Resolve(ctx context.Context, entry portal.Entry, allowCapture, fullPage bool) string {
	name := TargetName(entry.Title)
	target := filepath.Join(r.dir, name)
	rel := path.Join(Subdir, name)

	if entry.ImageRef != "" {
		if IsWebURL(entry.ImageRef) {
			if ok := r.fetchRemote(ctx, entry, target); ok {
				return rel
			}
			// A failed download falls through to capture, not to a local
			// path interpretation of the URL.
		} else if ok := r.copyLocal(entry, target); ok {
			return rel
		}
	}

	if allowCapture && r.renderer != nil {
		if ok := r.captureScreenshot(ctx, entry, target, fullPage); ok {
			return rel
		}
	}

	if r.drawer != nil {
		if ok := r.drawPlaceholder(entry, target); ok {
			return rel
		}
	}

	return ""
}

func (r *Resolver) fetchRemote(ctx context.Context, entry portal.Entry, target string) bool {
	data, err := r.fetcher.Fetch(ctx, entry.ImageRef)
	if err != nil {
		r.sink.Emit(diag.Warnf(0, entry.Title, "could not download image: %v", err))
		return false
	}
	return r.write(entry, target, data)
}

func (r *Resolver) copyLocal(entry portal.Entry, target string) bool {
	info, err := os.Stat(entry.ImageRef)
	if err != nil {
		r.sink.Emit(diag.Warnf(0, entry.Title, "image not found: %s", entry.ImageRef))
		return false
	}
	if err := copyFile(entry.ImageRef, target, info); err != nil {
		r.sink.Emit(diag.Warnf(0, entry.Title, "could not copy image: %v", err))
		return false
	}
	return true
}

func (r *Resolver) captureScreenshot(ctx context.Context, entry portal.Entry, target string, fullPage bool) bool {
	shot, err := r.renderer.Capture(ctx, entry.URL, fullPage)
	if err != nil {
		r.logger.Warn("screenshot failed", zap.String("url", entry.URL), zap.Error(err))
		r.sink.Emit(diag.Warnf(0, entry.Title, "screenshot unavailable for %s", entry.URL))
		return false
	}
	return r.write(entry, target, shot)
}

func (r *Resolver) drawPlaceholder(entry portal.Entry, target string) bool {
	text := entry.Title
	if text == "" {
		text = entry.URL
	}
	img, err := r.drawer.Render(text)
	if err != nil {
		r.sink.Emit(diag.Warnf(0, entry.Title, "could not draw placeholder: %v", err))
		return false
	}
	return r.write(entry, target, img)
}

func (r *Resolver) write(entry portal.Entry, target string, data []byte) bool {
	if err := os.WriteFile(target, data, 0o644); err != nil {
		r.sink.Emit(diag.Warnf(0, entry.Title, "could not write asset: %v", err))
		return false
	}
	return true
}

// TargetName derives the asset filename from a title: slugified, truncated,
// with the fixed extension.
func TargetName(title string) string {
	slug := portal.Slugify(title)
	if runes := []rune(slug); len(runes) > maxSlugLen {
		slug = string(runes[:maxSlugLen])
	}
	return slug + Ext
}

// IsWebURL reports whether s parses as an absolute http or https URL.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// copyFile duplicates src into dst byte-for-byte and carries over the file
// mode and modification time, mirroring a metadata-preserving copy.
func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy bytes: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close target: %w", err)
	}

	if err := os.Chmod(dst, info.Mode()); err != nil {
		return fmt.Errorf("preserve mode: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("preserve mtime: %w", err)
	}
	return nil
}
