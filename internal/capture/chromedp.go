// Package capture renders page screenshots via headless Chrome. The
// capability is optional: constructing the renderer fails cleanly when no
// browser binary is available, and callers treat that as a capability flag.
package capture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ErrUnavailable indicates the screenshot capability is not present.
var ErrUnavailable = errors.New("screenshot renderer unavailable")

// Config controls renderer behavior.
type Config struct {
	ViewportWidth  int
	ViewportHeight int
	NavTimeout     time.Duration
	SettleDelay    time.Duration
	UserAgent      string
}

// Renderer captures screenshots of live pages.
type Renderer interface {
	Capture(ctx context.Context, pageURL string, fullPage bool) ([]byte, error)
	Close(ctx context.Context) error
}

// Chromedp implements Renderer using chromedp and headless Chrome. One
// browser process is shared across captures; each capture runs in its own
// tab context, released on every exit path.
type Chromedp struct {
	cfg             Config
	allocatorCancel context.CancelFunc
	browserCtx      context.Context
	browserCancel   context.CancelFunc
	logger          *zap.Logger
}

// New launches the browser and warms it up. A failed warmup (typically: no
// Chrome installed) tears everything down and reports the error so the
// caller can record the capability as absent.
func New(cfg Config, logger *zap.Logger) (*Chromedp, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = 1280
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = 800
	}
	if cfg.NavTimeout <= 0 {
		cfg.NavTimeout = 20 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	allocatorCtx, allocatorCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocatorCancel()
		return nil, fmt.Errorf("chromedp warmup: %w", err)
	}

	return &Chromedp{
		cfg:             cfg,
		allocatorCancel: allocatorCancel,
		browserCtx:      browserCtx,
		browserCancel:   browserCancel,
		logger:          logger,
	}, nil
}

// Close tears down the browser and allocator contexts.
func (r *Chromedp) Close(_ context.Context) error {
	if r == nil {
		return nil
	}
	r.browserCancel()
	r.allocatorCancel()
	return nil
}

// Capture navigates to pageURL in a fresh tab, waits for the page to settle,
// and returns a PNG of the viewport (or the full scrollable page).
func (r *Chromedp) Capture(ctx context.Context, pageURL string, fullPage bool) ([]byte, error) {
	if r == nil {
		return nil, ErrUnavailable
	}

	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()

	taskCtx, cancelTask := context.WithTimeout(tabCtx, r.cfg.NavTimeout+r.cfg.SettleDelay)
	defer cancelTask()

	stopForward := forwardCancel(ctx, cancelTask)
	defer stopForward()

	start := time.Now()
	var shot []byte
	actions := []chromedp.Action{
		r.networkSetupAction(),
		chromedp.EmulateViewport(int64(r.cfg.ViewportWidth), int64(r.cfg.ViewportHeight)),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(r.cfg.SettleDelay),
	}
	if fullPage {
		actions = append(actions, chromedp.FullScreenshot(&shot, 100))
	} else {
		actions = append(actions, chromedp.CaptureScreenshot(&shot))
	}
	if err := chromedp.Run(taskCtx, actions...); err != nil {
		return nil, fmt.Errorf("chromedp run: %w", err)
	}

	r.logger.Debug("captured screenshot",
		zap.String("url", pageURL),
		zap.Bool("full_page", fullPage),
		zap.Int("bytes", len(shot)),
		zap.Duration("dur", time.Since(start)),
	)
	return shot, nil
}

func (r *Chromedp) networkSetupAction() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if err := network.Enable().Do(ctx); err != nil {
			return fmt.Errorf("enable network domain: %w", err)
		}
		if r.cfg.UserAgent != "" {
			if err := emulation.SetUserAgentOverride(r.cfg.UserAgent).Do(ctx); err != nil {
				return fmt.Errorf("set user-agent: %w", err)
			}
		}
		return nil
	})
}

// forwardCancel propagates cancellation from the caller's context into the
// tab-scoped task context. The returned stop function must be called to
// release the forwarding goroutine.
func forwardCancel(ctx context.Context, cancel context.CancelFunc) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return func() { close(done) }
}
