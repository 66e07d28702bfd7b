package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/tiagrib/webeater"
)

// Compile-time interface verification.
var _ webeater.PageService = (*PageService)(nil)

// PageService implements webeater.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// SavePage creates or replaces the stored page for its URL.
func (s *PageService) SavePage(ctx context.Context, page *webeater.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	// Replacing by URL keeps at most one stored copy per page.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.ID, page.URL, page.Title, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPageByURL retrieves the stored page for a URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*webeater.Page, error) {
	var page webeater.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.Title, &page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, webeater.Errorf(webeater.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	page.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
	}

	return &page, nil
}

// DeletePageByURL removes the stored page for a URL.
func (s *PageService) DeletePageByURL(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return webeater.Errorf(webeater.ENOTFOUND, "page not found")
	}

	return nil
}
