package mock

import (
	"context"

	"github.com/docubot/docubot"
)

var _ docubot.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docubot.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *docubot.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *docubot.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
