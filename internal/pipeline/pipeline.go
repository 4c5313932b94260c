// Package pipeline orchestrates a full generation run: read input, validate
// rows, resolve one asset per entry, assemble the page, write outputs.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jacortez/portalgen/internal/csvio"
	"github.com/jacortez/portalgen/internal/diag"
	"github.com/jacortez/portalgen/internal/page"
	"github.com/jacortez/portalgen/internal/portal"
)

// IndexFile is the page filename written under the output directory.
const IndexFile = "index.html"

// Options describe one generation run.
type Options struct {
	InputPath       string
	OutputDir       string
	Title           string
	Description     string
	TakeScreenshots bool
	FullPage        bool
}

// Capabilities are the optional-dependency flags probed once at startup.
type Capabilities struct {
	Render bool
	Draw   bool
}

// Result summarizes a completed run.
type Result struct {
	OutputPath string
	Cards      int
	Resolved   int
}

// Resolver materializes one asset per entry.
type Resolver interface {
	Resolve(ctx context.Context, entry portal.Entry, allowCapture, fullPage bool) string
}

// Driver wires the pipeline stages together.
type Driver struct {
	resolver Resolver
	caps     Capabilities
	sink     diag.Sink
	logger   *zap.Logger
}

// New constructs a Driver.
func New(resolver Resolver, caps Capabilities, sink diag.Sink, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{resolver: resolver, caps: caps, sink: sink, logger: logger}
}

// Run executes the pipeline. Only a missing input file or a header schema
// mismatch fail the run; every per-row and per-entry problem degrades with
// a warning. Entries resolve strictly in input order, so slug collisions
// deterministically leave the later entry's asset on disk.
func (d *Driver) Run(ctx context.Context, opts Options) (Result, error) {
	logger := d.logger.With(zap.String("run_id", uuid.NewString()))
	logger.Info("starting portal generation",
		zap.String("input", opts.InputPath),
		zap.String("output_dir", opts.OutputDir),
		zap.Bool("screenshots", opts.TakeScreenshots),
	)

	header, records, err := csvio.Read(opts.InputPath)
	if err != nil {
		return Result{}, err
	}
	if err := portal.CheckSchema(header); err != nil {
		return Result{}, err
	}

	entries := portal.ValidateRows(records, d.sink)
	logger.Info("validated rows",
		zap.Int("accepted", len(entries)),
		zap.Int("rejected", len(records)-len(entries)),
	)

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	resolved := 0
	for i := range entries {
		entries[i].ResolvedAsset = d.resolver.Resolve(ctx, entries[i], opts.TakeScreenshots, opts.FullPage)
		if entries[i].ResolvedAsset != "" {
			resolved++
		}
	}

	doc, err := page.Build(entries, opts.Title, opts.Description)
	if err != nil {
		return Result{}, err
	}

	indexPath := filepath.Join(opts.OutputDir, IndexFile)
	if err := os.WriteFile(indexPath, []byte(doc), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", IndexFile, err)
	}

	d.emitNotices(opts, indexPath)
	logger.Info("portal generated",
		zap.String("index", indexPath),
		zap.Int("cards", len(entries)),
		zap.Int("resolved_assets", resolved),
	)

	outPath, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		outPath = opts.OutputDir
	}
	return Result{OutputPath: outPath, Cards: len(entries), Resolved: resolved}, nil
}

func (d *Driver) emitNotices(opts Options, indexPath string) {
	d.sink.Emit(diag.Noticef("portal written to %s; open %s in a browser", opts.OutputDir, indexPath))
	if opts.TakeScreenshots && !d.caps.Render {
		d.sink.Emit(diag.Noticef(
			"screenshots were requested but no Chrome/Chromium binary is available; install one to enable captures"))
	}
	if !d.caps.Draw {
		d.sink.Emit(diag.Noticef(
			"placeholder drawing is unavailable; entries without an image or screenshot get a blank block"))
	}
}
