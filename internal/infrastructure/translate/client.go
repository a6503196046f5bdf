package translate

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client translates text through the public gtx endpoint. It is strictly
// best-effort: any non-200 status, transport error, or unexpected response
// shape returns the input unchanged. Failures are never retried and never
// surface to the caller.
type Client struct {
	http  *resty.Client
	debug bool
}

// NewClient creates a translator against baseURL (the endpoint host, e.g.
// https://translate.googleapis.com).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

// SetDebug toggles logging of translation failures.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Translate returns text translated into target, or text itself when
// anything goes wrong.
func (c *Client) Translate(ctx context.Context, text, target string) string {
	if text == "" {
		return text
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     target,
			"dt":     "t",
			"q":      text,
		}).
		Get("/translate_a/single")
	if err != nil {
		if c.debug {
			log.Printf("[TRANSLATE] request error: %v", err)
		}
		return text
	}
	if resp.StatusCode() != 200 {
		if c.debug {
			log.Printf("[TRANSLATE] status %d", resp.StatusCode())
		}
		return text
	}

	translated, ok := parseGtxResponse(resp.Body())
	if !ok {
		if c.debug {
			log.Printf("[TRANSLATE] unexpected response shape")
		}
		return text
	}

	return translated
}

// parseGtxResponse digs the translated string out of the endpoint's
// nested-array JSON: the first segment's first element's first element.
func parseGtxResponse(body []byte) (string, bool) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return "", false
	}

	var segments [][]interface{}
	if err := json.Unmarshal(payload[0], &segments); err != nil || len(segments) == 0 {
		return "", false
	}

	if len(segments[0]) == 0 {
		return "", false
	}

	translated, ok := segments[0][0].(string)
	return translated, ok
}
