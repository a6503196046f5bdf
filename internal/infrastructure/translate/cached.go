package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brewbot/backend/internal/domain"
)

// CachedTranslator deduplicates translation requests through a cache. The
// catalog crawl translates the same badge texts and descriptions over and
// over; keying on (target, text) keeps that fan-out off the wire. Fallback
// results (input == output) are cached too — the endpoint failing once for a
// phrase means it keeps the source text for the TTL, which matches the
// silent fail-open contract.
type CachedTranslator struct {
	inner domain.Translator
	cache domain.CacheRepository
	ttl   time.Duration
}

// NewCachedTranslator wraps inner with cache, keeping entries for ttl.
func NewCachedTranslator(inner domain.Translator, cache domain.CacheRepository, ttl time.Duration) *CachedTranslator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &CachedTranslator{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

// Translate returns the cached translation when present, otherwise asks the
// inner translator and stores the result.
func (t *CachedTranslator) Translate(ctx context.Context, text, target string) string {
	if text == "" {
		return text
	}

	key := cacheKey(text, target)

	if value, err := t.cache.Get(ctx, key); err == nil {
		if cached, ok := value.(string); ok {
			return cached
		}
	}

	translated := t.inner.Translate(ctx, text, target)

	// A failed Set never blocks the reply
	_ = t.cache.Set(ctx, key, translated, t.ttl)

	return translated
}

func cacheKey(text, target string) string {
	return fmt.Sprintf("translate:%s:%s", target, strings.ToLower(text))
}
