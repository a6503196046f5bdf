package main

import (
	"fmt"
	"log"
	"os"

	"github.com/brewbot/backend/config"
	"github.com/brewbot/backend/internal/bot"
	httpDelivery "github.com/brewbot/backend/internal/delivery/http"
	"github.com/brewbot/backend/internal/infrastructure/cache"
	"github.com/brewbot/backend/internal/infrastructure/catalog"
	"github.com/brewbot/backend/internal/infrastructure/chatlog"
	"github.com/brewbot/backend/internal/infrastructure/coffeeapi"
	"github.com/brewbot/backend/internal/infrastructure/translate"
	"github.com/brewbot/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting BrewBot Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s", cfg.Catalog.BaseURL)

	debug := cfg.Server.Environment == "development"

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	fetcher := catalog.NewFetcher(cfg.Catalog.RequestTimeout)
	extractor := catalog.NewExtractor(cfg.Catalog.BaseURL)
	source := catalog.NewSource(fetcher, extractor, cfg.Catalog.PageURL)

	coffeeClient := coffeeapi.NewClient(cfg.CoffeeAPI.BaseURL, cfg.CoffeeAPI.RequestTimeout)

	translator := translate.NewClient(cfg.Translate.BaseURL, cfg.Translate.RequestTimeout)
	cachedTranslator := translate.NewCachedTranslator(translator, memoryCache, cfg.Translate.CacheTTL)

	// Enable debug mode in development environment
	if debug {
		fetcher.SetDebug(true)
		coffeeClient.SetDebug(true)
		translator.SetDebug(true)
		log.Printf("Client debug mode enabled")
	}

	chatLog, err := chatlog.NewStore(cfg.Chat.LogDir)
	if err != nil {
		log.Fatalf("Failed to open chat log store: %v", err)
	}
	log.Printf("Chat logs: %s", cfg.Chat.LogDir)

	// Initialize usecase layer
	targetLang := cfg.Translate.TargetLanguage
	catalogService := usecase.NewCatalogService(source, cachedTranslator, targetLang, cfg.Catalog.LatestLimit)
	coffeeService := usecase.NewCoffeeService(
		coffeeClient,
		memoryCache,
		cachedTranslator,
		targetLang,
		usecase.CoffeeServiceConfig{
			CacheTTL:  cfg.Cache.TTL,
			ListLimit: 10,
		},
	)
	flavorService := usecase.NewFlavorService(source, cachedTranslator, targetLang, debug)

	// Bot router with per-user conversation state
	states := bot.NewStateStore(cfg.Chat.StateTTL)
	router := bot.NewRouter(catalogService, coffeeService, flavorService, states, chatLog, cfg.Chat.AdminUserID)

	log.Printf("Admin user: %s, state TTL: %s", cfg.Chat.AdminUserID, cfg.Chat.StateTTL)

	// Create HTTP handler with dependencies
	limiter := httpDelivery.NewUserRateLimiter(cfg.RateLimit.PerUser, cfg.RateLimit.Burst)
	handler := httpDelivery.NewHandler(router, limiter)

	// Setup router
	engine := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
