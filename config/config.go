package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	CoffeeAPI CoffeeAPIConfig
	Translate TranslateConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Chat      ChatConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds the retailer catalog scraping configuration
type CatalogConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	PageURL        string        `mapstructure:"page_url"` // printf template, %d = page number
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LatestLimit    int           `mapstructure:"latest_limit"`
}

// CoffeeAPIConfig holds the public coffee-data API configuration
type CoffeeAPIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// TranslateConfig holds the translation endpoint configuration
type TranslateConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	TargetLanguage string        `mapstructure:"target_language"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting for the inbound chat webhook
type RateLimitConfig struct {
	PerUser float64 `mapstructure:"per_user"` // messages per second
	Burst   int     `mapstructure:"burst"`
}

// ChatConfig holds bot conversation settings
type ChatConfig struct {
	AdminUserID string        `mapstructure:"admin_user_id"`
	StateTTL    time.Duration `mapstructure:"state_ttl"`
	LogDir      string        `mapstructure:"log_dir"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/brewbot/")

	// Environment variable settings
	v.SetEnvPrefix("BREWBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://shop.tastycoffee.ru")
	v.SetDefault("catalog.page_url", "https://shop.tastycoffee.ru/coffee?page=%d")
	v.SetDefault("catalog.request_timeout", "10s")
	v.SetDefault("catalog.latest_limit", 5)

	// Coffee API defaults
	v.SetDefault("coffeeapi.base_url", "https://api.sampleapis.com/coffee")
	v.SetDefault("coffeeapi.request_timeout", "10s")

	// Translate defaults
	v.SetDefault("translate.base_url", "https://translate.googleapis.com")
	v.SetDefault("translate.target_language", "ru")
	v.SetDefault("translate.request_timeout", "10s")
	v.SetDefault("translate.cache_ttl", "24h")

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_user", 1.0)
	v.SetDefault("ratelimit.burst", 5)

	// Chat defaults
	v.SetDefault("chat.admin_user_id", "")
	v.SetDefault("chat.state_ttl", "10m")
	v.SetDefault("chat.log_dir", "chat_logs")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.PageURL == "" {
		return fmt.Errorf("catalog page URL template is required (set BREWBOT_CATALOG_PAGE_URL)")
	}

	if config.Chat.AdminUserID == "" {
		return fmt.Errorf("admin user ID is required (set BREWBOT_CHAT_ADMIN_USER_ID)")
	}

	if config.RateLimit.PerUser <= 0 {
		return fmt.Errorf("rate limit per user must be positive, got: %v", config.RateLimit.PerUser)
	}

	return nil
}
