package eater_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiagrib/webeater"
	"github.com/tiagrib/webeater/eater"
	"github.com/tiagrib/webeater/mock"
)

func testEater() *eater.Eater {
	return &eater.Eater{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body><main>hello</main></body></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_, _ string, _ webeater.Hint) (*webeater.ExtractResult, error) {
				return &webeater.ExtractResult{
					Title:       "Test Page",
					ContentHTML: "<main>hello</main>",
					Text:        "hello",
					Selector:    "main",
				}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "hello", nil
			},
		},
		RetryDelays: []time.Duration{0}, // no delay for tests
	}
}

func TestEater_Get(t *testing.T) {
	t.Parallel()

	t.Run("fetches, extracts and converts a page", func(t *testing.T) {
		t.Parallel()

		e := testEater()

		result, err := e.Get(context.Background(), "https://example.com/article")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/article", result.URL)
		assert.Equal(t, "Test Page", result.Title)
		assert.Equal(t, "hello", result.Markdown)
		assert.Equal(t, "main", result.Selector)
		assert.False(t, result.Cached)
	})

	t.Run("passes hints to the extractor", func(t *testing.T) {
		t.Parallel()

		var gotHints webeater.Hint
		e := testEater()
		e.Hints = webeater.Hint{Main: webeater.MainContentRule{Selectors: []string{"article"}}}
		e.Extractor = &mock.Extractor{
			ExtractFn: func(_, _ string, hints webeater.Hint) (*webeater.ExtractResult, error) {
				gotHints = hints
				return &webeater.ExtractResult{ContentHTML: "<p>x</p>"}, nil
			},
		}

		_, err := e.Get(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"article"}, gotHints.Main.Selectors)
	})

	t.Run("returns stored page without fetching", func(t *testing.T) {
		t.Parallel()

		fetched := false
		e := testEater()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				fetched = true
				return "", webeater.Errorf(webeater.EINTERNAL, "should not fetch")
			},
		}
		e.Pages = &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*webeater.Page, error) {
				return &webeater.Page{URL: url, Title: "Stored", Content: "stored content"}, nil
			},
		}

		result, err := e.Get(context.Background(), "https://example.com/article")

		require.NoError(t, err)
		assert.True(t, result.Cached)
		assert.Equal(t, "Stored", result.Title)
		assert.Equal(t, "stored content", result.Markdown)
		assert.False(t, fetched, "should not fetch a stored page")
	})

	t.Run("saves freshly extracted page to the store", func(t *testing.T) {
		t.Parallel()

		var saved *webeater.Page
		e := testEater()
		e.Pages = &mock.PageService{
			FindPageByURLFn: func(_ context.Context, _ string) (*webeater.Page, error) {
				return nil, webeater.Errorf(webeater.ENOTFOUND, "page not found")
			},
			SavePageFn: func(_ context.Context, page *webeater.Page) error {
				saved = page
				return nil
			},
		}

		_, err := e.Get(context.Background(), "https://example.com/article")

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com/article", saved.URL)
		assert.Equal(t, "Test Page", saved.Title)
		assert.Equal(t, "hello", saved.Content)
	})

	t.Run("retries failed fetches", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		e := testEater()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				attempts++
				if attempts < 3 {
					return "", webeater.Errorf(webeater.EINTERNAL, "transient failure")
				}
				return "<html></html>", nil
			},
		}
		e.RetryDelays = []time.Duration{0, 0, 0}

		_, err := e.Get(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns error when all fetch attempts fail", func(t *testing.T) {
		t.Parallel()

		e := testEater()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", webeater.Errorf(webeater.EINTERNAL, "unreachable")
			},
		}

		_, err := e.Get(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, webeater.EINTERNAL, webeater.ErrorCode(err))
	})

	t.Run("waits on the rate limiter before fetching", func(t *testing.T) {
		t.Parallel()

		var limitedDomain string
		e := testEater()
		e.RateLimiter = &limiterFunc{fn: func(_ context.Context, domain string) error {
			limitedDomain = domain
			return nil
		}}

		_, err := e.Get(context.Background(), "https://example.com/article")

		require.NoError(t, err)
		assert.Equal(t, "example.com", limitedDomain)
	})
}

func TestEater_GetAll(t *testing.T) {
	t.Parallel()

	t.Run("extracts all URLs and preserves order", func(t *testing.T) {
		t.Parallel()

		e := testEater()
		e.Extractor = &mock.Extractor{
			ExtractFn: func(pageURL, _ string, _ webeater.Hint) (*webeater.ExtractResult, error) {
				return &webeater.ExtractResult{Title: pageURL, ContentHTML: "<p>x</p>"}, nil
			},
		}
		e.Concurrency = 2

		urls := []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}

		batch, err := e.GetAll(context.Background(), urls, nil)

		require.NoError(t, err)
		require.Len(t, batch.Results, 3)
		assert.Equal(t, 3, batch.Saved)
		assert.Equal(t, 0, batch.Failed)
		for i, u := range urls {
			require.NotNil(t, batch.Results[i])
			assert.Equal(t, u, batch.Results[i].Title)
		}
	})

	t.Run("isolates failures per URL", func(t *testing.T) {
		t.Parallel()

		e := testEater()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://example.com/bad" {
					return "", webeater.Errorf(webeater.EINTERNAL, "boom")
				}
				return "<html></html>", nil
			},
		}

		batch, err := e.GetAll(context.Background(), []string{
			"https://example.com/good",
			"https://example.com/bad",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, batch.Saved)
		assert.Equal(t, 1, batch.Failed)
		assert.NotNil(t, batch.Results[0])
		assert.Nil(t, batch.Results[1])
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		e := testEater()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://example.com/bad" {
					return "", webeater.Errorf(webeater.EINTERNAL, "boom")
				}
				return "<html></html>", nil
			},
		}

		var mu sync.Mutex
		var events []eater.ProgressEvent
		progress := func(event eater.ProgressEvent) {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
		}

		_, err := e.GetAll(context.Background(), []string{
			"https://example.com/good",
			"https://example.com/bad",
		}, progress)

		require.NoError(t, err)
		require.Len(t, events, 4) // started, 2 per-URL, finished
		assert.Equal(t, eater.ProgressStarted, events[0].Type)
		assert.Equal(t, eater.ProgressFinished, events[3].Type)

		var failed int
		for _, event := range events[1:3] {
			if event.Type == eater.ProgressFailed {
				failed++
				assert.Error(t, event.Error)
				assert.Equal(t, "https://example.com/bad", event.URL)
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("returns empty batch for no URLs", func(t *testing.T) {
		t.Parallel()

		e := testEater()

		batch, err := e.GetAll(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Empty(t, batch.Results)
		assert.Equal(t, 0, batch.Saved)
		assert.Equal(t, 0, batch.Failed)
	})
}

// limiterFunc adapts a function to the DomainLimiter interface.
type limiterFunc struct {
	fn func(ctx context.Context, domain string) error
}

func (l *limiterFunc) Wait(ctx context.Context, domain string) error {
	return l.fn(ctx, domain)
}
