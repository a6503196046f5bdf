package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// PageFetcher retrieves raw markup for a catalog page URL. Implementations
// apply a fixed request timeout and collapse every failure mode into
// ErrPageUnavailable.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ProductExtractor turns one page of catalog markup into product records.
// The extraction is tied to the retailer's markup version; keeping it
// behind this interface lets the page schema swap without touching the
// matching or translation logic.
type ProductExtractor interface {
	Extract(markup string) []ProductRecord
}

// CatalogSource yields the product records of one numbered catalog page.
// Implementations combine a PageFetcher and a ProductExtractor.
type CatalogSource interface {
	Page(ctx context.Context, page int) ([]ProductRecord, error)
}

// Translator performs best-effort text translation. Implementations never
// fail: any error returns the input text unchanged.
type Translator interface {
	Translate(ctx context.Context, text, target string) string
}

// CoffeeAPI defines the interface for the public coffee-data API.
type CoffeeAPI interface {
	HotDrinks(ctx context.Context) ([]CoffeeDrink, error)
}

// ChatLogger records the per-user audit trail of a conversation. It is
// write-only; there is no read path.
type ChatLogger interface {
	LogIncoming(msg IncomingMessage)
	LogOutgoing(userID, text string)
}
