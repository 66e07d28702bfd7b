package webeater

import (
	"context"
	"time"
)

// Page represents one extracted web page.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService stores and retrieves extracted pages, keyed by URL.
type PageService interface {
	// SavePage creates or replaces the stored page for its URL.
	SavePage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves the stored page for a URL.
	// Returns ENOTFOUND if no page has been stored for it.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// DeletePageByURL removes the stored page for a URL.
	// Returns ENOTFOUND if no page has been stored for it.
	DeletePageByURL(ctx context.Context, url string) error
}
