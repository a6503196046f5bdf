package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/brewbot/backend/internal/domain"
)

// FlavorService crawls the whole catalog to answer flavor questions: the
// universe of known tasting notes and the products matching a user's query.
// The crawl is strictly sequential, page by page, and stops at the first
// page that is unavailable or yields no product containers — the two are
// deliberately indistinguishable, both mean "end of catalog" here.
type FlavorService struct {
	source     domain.CatalogSource
	translator domain.Translator
	targetLang string
	debug      bool
}

// NewFlavorService creates a flavor service. Translated fields are rendered
// in targetLang.
func NewFlavorService(source domain.CatalogSource, translator domain.Translator, targetLang string, debug bool) *FlavorService {
	return &FlavorService{
		source:     source,
		translator: translator,
		targetLang: targetLang,
		debug:      debug,
	}
}

// BuildUniverse returns every distinct tasting note seen across the catalog,
// lowercased and sorted. It is rebuilt on every call; an unreachable catalog
// simply yields an empty universe.
func (s *FlavorService) BuildUniverse(ctx context.Context) []string {
	seen := make(map[string]bool)

	s.crawl(ctx, func(rec domain.ProductRecord) {
		for _, note := range rec.FlavorNotes {
			seen[strings.ToLower(note)] = true
		}
	})

	universe := make([]string, 0, len(seen))
	for note := range seen {
		universe = append(universe, note)
	}
	sort.Strings(universe)

	if s.debug {
		log.Printf("[FLAVOR] universe rebuilt: %d notes", len(universe))
	}
	return universe
}

// FindByFlavors returns a formatted result per product whose notes satisfy
// every query term. An empty result means no matches — or a catalog that was
// unreachable from page 1; callers cannot tell, by design.
func (s *FlavorService) FindByFlavors(ctx context.Context, terms []string) []string {
	query := NormalizeTerms(terms)
	if len(query) == 0 {
		return nil
	}

	var results []string
	s.crawl(ctx, func(rec domain.ProductRecord) {
		if !productMatches(rec.FlavorNotes, query) {
			return
		}

		name := s.translator.Translate(ctx, rec.Name, s.targetLang)
		description := s.translator.Translate(ctx, rec.Description, s.targetLang)

		results = append(results, fmt.Sprintf(
			"☕ %s\nFlavors: %s\n💰 Price: %s\nℹ️ %s\n\n🔗 %s",
			name,
			strings.ToLower(strings.Join(rec.FlavorNotes, ", ")),
			rec.Price,
			description,
			rec.Link,
		))
	})

	if s.debug {
		log.Printf("[FLAVOR] query %v matched %d products", query, len(results))
	}
	return results
}

// crawl walks catalog pages from 1 upward, invoking visit per record, until
// a page is unavailable or empty.
func (s *FlavorService) crawl(ctx context.Context, visit func(domain.ProductRecord)) {
	for page := 1; ; page++ {
		records, err := s.source.Page(ctx, page)
		if err != nil {
			if s.debug {
				log.Printf("[FLAVOR] crawl stopped at page %d: %v", page, err)
			}
			return
		}
		if len(records) == 0 {
			if s.debug {
				log.Printf("[FLAVOR] crawl stopped at page %d: no products", page)
			}
			return
		}

		for _, rec := range records {
			visit(rec)
		}
	}
}

// NormalizeTerms lowercases and trims query terms, dropping empties. Order
// is preserved.
func NormalizeTerms(terms []string) []string {
	var normalized []string
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			normalized = append(normalized, term)
		}
	}
	return normalized
}

// ParseQuery splits a raw comma-separated query message into normalized
// terms.
func ParseQuery(text string) []string {
	return NormalizeTerms(strings.Split(text, ","))
}

// productMatches reports whether every query term is satisfied by at least
// one of the product's notes. Terms and matching are conjunctive; there is
// no partial credit.
func productMatches(notes []string, query []string) bool {
	for _, term := range query {
		if !anyNoteMatches(notes, term) {
			return false
		}
	}
	return true
}

// anyNoteMatches reports whether some note contains every word of the term
// as a substring, case-insensitively and in any position.
func anyNoteMatches(notes []string, term string) bool {
	words := strings.Fields(term)
	if len(words) == 0 {
		return false
	}

	for _, note := range notes {
		note = strings.ToLower(note)
		matched := true
		for _, word := range words {
			if !strings.Contains(note, word) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
