// Package rod provides a browser-based implementation of webeater.Fetcher
// using Chrome automation, so JavaScript-rendered pages return their final
// DOM rather than the initial payload.
package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/tiagrib/webeater"
)

// Ensure Fetcher implements webeater.Fetcher at compile time.
var _ webeater.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	width    int
	height   int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithWindowSize sets the viewport dimensions pages are rendered at.
// Defaults to the webeater configuration defaults.
func WithWindowSize(w, h int) Option {
	return func(f *Fetcher) {
		f.width = w
		f.height = h
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		width:  webeater.DefaultWindowWidth,
		height: webeater.DefaultWindowHeight,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	browser := f.browser
	f.mu.Unlock()
	if browser == nil {
		return "", webeater.Errorf(webeater.EINTERNAL, "fetcher is closed")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  f.width,
		Height: f.height,
	}); err != nil {
		return "", err
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	// Wait for page to load
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Reload replaces the browser with a fresh instance. Callers use it to
// recover after a rendering failure leaves the browser wedged. If the new
// launch fails the old browser is kept.
func (f *Fetcher) Reload() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	oldBrowser := f.browser
	oldLauncher := f.launcher
	f.browser = nil
	f.launcher = nil

	if err := f.launchLocked(); err != nil {
		f.browser = oldBrowser
		f.launcher = oldLauncher
		return err
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	return nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

func (f *Fetcher) launch() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.launchLocked()
}

// launchLocked starts a new browser instance with stability flags.
// Must be called with mu held.
func (f *Fetcher) launchLocked() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return nil
}
