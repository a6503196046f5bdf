package catalog

import (
	"context"
	"fmt"

	"github.com/brewbot/backend/internal/domain"
)

// Source combines a fetcher and an extractor into a numbered-page view of
// the retailer's catalog.
type Source struct {
	fetcher   domain.PageFetcher
	extractor domain.ProductExtractor
	pageURL   string // printf template, %d = page number
}

// NewSource creates a catalog source. pageURL is a printf template with a
// single %d verb for the page number.
func NewSource(fetcher domain.PageFetcher, extractor domain.ProductExtractor, pageURL string) *Source {
	return &Source{
		fetcher:   fetcher,
		extractor: extractor,
		pageURL:   pageURL,
	}
}

// Page fetches and extracts catalog page number page (1-based). A fetch
// failure surfaces as ErrPageUnavailable; a page that fetched fine but
// contains no product containers returns an empty slice and nil error.
func (s *Source) Page(ctx context.Context, page int) ([]domain.ProductRecord, error) {
	markup, err := s.fetcher.Fetch(ctx, fmt.Sprintf(s.pageURL, page))
	if err != nil {
		return nil, err
	}

	return s.extractor.Extract(markup), nil
}
