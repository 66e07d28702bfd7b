package mock

import (
	"context"

	"github.com/tiagrib/webeater"
)

var _ webeater.PageService = (*PageService)(nil)

// PageService is a mock implementation of webeater.PageService.
type PageService struct {
	SavePageFn        func(ctx context.Context, page *webeater.Page) error
	FindPageByURLFn   func(ctx context.Context, url string) (*webeater.Page, error)
	DeletePageByURLFn func(ctx context.Context, url string) error
}

func (s *PageService) SavePage(ctx context.Context, page *webeater.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*webeater.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageService) DeletePageByURL(ctx context.Context, url string) error {
	return s.DeletePageByURLFn(ctx, url)
}
