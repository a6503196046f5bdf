package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/brewbot/backend/internal/domain"
)

// CatalogService formats the freshest slice of the catalog for display.
type CatalogService struct {
	source     domain.CatalogSource
	translator domain.Translator
	targetLang string
	limit      int
}

// NewCatalogService creates a catalog service returning at most limit
// products from the first page.
func NewCatalogService(source domain.CatalogSource, translator domain.Translator, targetLang string, limit int) *CatalogService {
	if limit <= 0 {
		limit = 5
	}

	return &CatalogService{
		source:     source,
		translator: translator,
		targetLang: targetLang,
		limit:      limit,
	}
}

// LatestProducts returns formatted entries for the first products on page 1.
// The error is ErrPageUnavailable when the catalog cannot be reached; an
// empty slice with nil error means the page had no products.
func (s *CatalogService) LatestProducts(ctx context.Context) ([]string, error) {
	records, err := s.source.Page(ctx, 1)
	if err != nil {
		return nil, err
	}

	if len(records) > s.limit {
		records = records[:s.limit]
	}

	results := make([]string, 0, len(records))
	for _, rec := range records {
		name := s.translator.Translate(ctx, rec.Name, s.targetLang)
		description := s.translator.Translate(ctx, rec.Description, s.targetLang)

		notes := "—"
		if len(rec.FlavorNotes) > 0 {
			notes = strings.Join(rec.FlavorNotes, ", ")
		}

		results = append(results, fmt.Sprintf(
			"☕ %s\n💰 %s\n🔗 %s\n\nℹ️ %s\n\nTasting notes: %s",
			name,
			rec.Price,
			rec.Link,
			description,
			notes,
		))
	}

	return results, nil
}
