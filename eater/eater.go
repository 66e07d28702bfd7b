// Package eater provides web page extraction orchestration.
// It coordinates fetching, content extraction, markdown conversion,
// and storage of web pages.
package eater

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/tiagrib/webeater"
	"golang.org/x/sync/errgroup"
)

// Eater orchestrates the extraction of readable content from web pages.
type Eater struct {
	Fetcher     webeater.Fetcher
	Extractor   webeater.Extractor
	Converter   webeater.Converter
	Pages       webeater.PageService
	RateLimiter webeater.DomainLimiter
	Hints       webeater.Hint
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of extracting a single page.
type Result struct {
	URL         string
	Title       string
	Markdown    string
	Text        string
	Selector    string
	Removed     int
	Images      []webeater.Image
	Links       []webeater.Link
	Diagnostics []webeater.Diagnostic

	// Cached is true when the page was served from the page store
	// instead of being fetched.
	Cached bool
}

// BatchResult holds the outcome of a batch extraction.
type BatchResult struct {
	// Results is index-aligned with the requested URLs.
	// Entries for failed URLs are nil.
	Results []*Result
	Saved   int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during a batch extraction.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Get fetches a single URL and extracts its readable content.
// If a page store is configured, a previously stored page is returned
// without fetching, and freshly extracted pages are saved.
func (e *Eater) Get(ctx context.Context, pageURL string) (*Result, error) {
	if e.Pages != nil {
		if page, err := e.Pages.FindPageByURL(ctx, pageURL); err == nil {
			return &Result{
				URL:      pageURL,
				Title:    page.Title,
				Markdown: page.Content,
				Cached:   true,
			}, nil
		}
	}

	result, err := e.process(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if e.Pages != nil {
		page := &webeater.Page{
			URL:     pageURL,
			Title:   result.Title,
			Content: result.Markdown,
		}
		if err := e.Pages.SavePage(ctx, page); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// GetAll fetches a batch of URLs concurrently and extracts their content.
// Failures are isolated per URL and reported through the progress callback.
func (e *Eater) GetAll(ctx context.Context, urls []string, progress ProgressFunc) (*BatchResult, error) {
	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	results := make([]*Result, total)
	errs := make([]error, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range urls {
		i, pageURL := i, pageURL
		g.Go(func() error {
			result, err := e.Get(gctx, pageURL)
			results[i] = result
			errs[i] = err

			done := int(completed.Add(1))
			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: done,
					Total:     total,
					URL:       pageURL,
				}
				if err != nil {
					event.Type = ProgressFailed
					event.Error = err
				}
				progress(event)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{Results: results}
	for i := range results {
		if errs[i] != nil {
			batch.Failed++
			continue
		}
		batch.Saved++
		batch.Bytes += len(results[i].Markdown)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return batch, nil
}

// process fetches and extracts a single URL.
func (e *Eater) process(ctx context.Context, pageURL string) (*Result, error) {
	if e.RateLimiter != nil {
		domain, err := domainOf(pageURL)
		if err != nil {
			return nil, err
		}
		if err := e.RateLimiter.Wait(ctx, domain); err != nil {
			return nil, err
		}
	}

	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, e.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, err
	}

	extracted, err := e.Extractor.Extract(pageURL, html, e.Hints)
	if err != nil {
		return nil, err
	}

	markdown, err := e.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &Result{
		URL:         pageURL,
		Title:       extracted.Title,
		Markdown:    markdown,
		Text:        extracted.Text,
		Selector:    extracted.Selector,
		Removed:     extracted.Removed,
		Images:      extracted.Images,
		Links:       extracted.Links,
		Diagnostics: extracted.Diagnostics,
	}, nil
}

// domainOf returns the host portion of a URL for rate limiting.
func domainOf(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", webeater.Errorf(webeater.EINVALID, "invalid URL %q", pageURL)
	}
	return u.Host, nil
}
