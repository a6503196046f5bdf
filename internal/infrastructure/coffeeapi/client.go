package coffeeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/brewbot/backend/internal/domain"
)

// Client handles communication with the public coffee-data API
// (api.sampleapis.com/coffee or a compatible mirror).
type Client struct {
	httpClient *http.Client
	baseURL    string
	debug      bool
}

// NewClient creates a new coffee API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// SetDebug toggles request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// HotDrinks returns the API's list of hot coffee drinks. Failed requests are
// not retried; the caller decides what to tell the user.
func (c *Client) HotDrinks(ctx context.Context) ([]domain.CoffeeDrink, error) {
	reqURL := fmt.Sprintf("%s/hot", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "brewbot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.debug {
			log.Printf("[COFFEEAPI] request error: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCoffeeAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[COFFEEAPI] status %d, body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrCoffeeAPIFailure, resp.StatusCode)
	}

	var drinks []domain.CoffeeDrink
	if err := json.NewDecoder(resp.Body).Decode(&drinks); err != nil {
		if c.debug {
			log.Printf("[COFFEEAPI] JSON decode error: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCoffeeAPIFailure, err)
	}

	if len(drinks) == 0 {
		return nil, domain.ErrNoDrinks
	}

	if c.debug {
		log.Printf("[COFFEEAPI] fetched %d drinks", len(drinks))
	}
	return drinks, nil
}
