package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brewbot/backend/internal/domain"
)

const drinksCacheKey = "coffeeapi:hot"

// CoffeeServiceConfig holds configuration for the coffee service
type CoffeeServiceConfig struct {
	CacheTTL  time.Duration
	ListLimit int
}

// CoffeeService serves drink facts from the public coffee-data API, with a
// cache in front so browsing the menu doesn't hammer the API.
type CoffeeService struct {
	api        domain.CoffeeAPI
	cache      domain.CacheRepository
	translator domain.Translator
	targetLang string
	cacheTTL   time.Duration
	listLimit  int
}

// NewCoffeeService creates a new coffee service with dependencies
func NewCoffeeService(
	api domain.CoffeeAPI,
	cache domain.CacheRepository,
	translator domain.Translator,
	targetLang string,
	config CoffeeServiceConfig,
) *CoffeeService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	listLimit := config.ListLimit
	if listLimit <= 0 {
		listLimit = 10
	}

	return &CoffeeService{
		api:        api,
		cache:      cache,
		translator: translator,
		targetLang: targetLang,
		cacheTTL:   cacheTTL,
		listLimit:  listLimit,
	}
}

// List returns a bulleted list of popular drink titles.
func (s *CoffeeService) List(ctx context.Context) (string, error) {
	drinks, err := s.drinks(ctx)
	if err != nil {
		return "", err
	}

	if len(drinks) > s.listLimit {
		drinks = drinks[:s.listLimit]
	}

	lines := []string{"Popular drinks:"}
	for _, drink := range drinks {
		title := s.translator.Translate(ctx, drink.Title, s.targetLang)
		lines = append(lines, fmt.Sprintf("• %s", title))
	}

	return strings.Join(lines, "\n"), nil
}

// Random returns one random drink with its description.
func (s *CoffeeService) Random(ctx context.Context) (string, error) {
	drinks, err := s.drinks(ctx)
	if err != nil {
		return "", err
	}

	drink := drinks[rand.Intn(len(drinks))]

	title := s.translator.Translate(ctx, drink.Title, s.targetLang)
	description := drink.Description
	if description == "" {
		description = "—"
	} else {
		description = s.translator.Translate(ctx, description, s.targetLang)
	}

	return fmt.Sprintf("🎲 %s\n\n%s", title, description), nil
}

// drinks returns the hot drink list, cache first.
func (s *CoffeeService) drinks(ctx context.Context) ([]domain.CoffeeDrink, error) {
	if value, err := s.cache.Get(ctx, drinksCacheKey); err == nil {
		if cached, ok := value.([]domain.CoffeeDrink); ok && len(cached) > 0 {
			return cached, nil
		}
	}

	drinks, err := s.api.HotDrinks(ctx)
	if err != nil {
		return nil, err
	}

	// A failed Set never blocks the reply
	_ = s.cache.Set(ctx, drinksCacheKey, drinks, s.cacheTTL)

	return drinks, nil
}
