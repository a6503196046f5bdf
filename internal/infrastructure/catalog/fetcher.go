package catalog

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/brewbot/backend/internal/domain"
	"golang.org/x/net/html/charset"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"

// Fetcher retrieves catalog pages over HTTP. Every failure mode — non-200
// status, timeout, transport error — collapses into ErrPageUnavailable so
// callers only see presence or absence of a page.
type Fetcher struct {
	httpClient *http.Client
	debug      bool
}

// NewFetcher creates a fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetDebug toggles request logging.
func (f *Fetcher) SetDebug(debug bool) {
	f.debug = debug
}

// Fetch downloads the markup at url, decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", domain.ErrPageUnavailable
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if f.debug {
			log.Printf("[CATALOG] fetch %s failed: %v", url, err)
		}
		return "", domain.ErrPageUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if f.debug {
			log.Printf("[CATALOG] fetch %s status %d", url, resp.StatusCode)
		}
		return "", domain.ErrPageUnavailable
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		return "", domain.ErrPageUnavailable
	}
	data := buf.Bytes()

	// Decode to UTF-8 if needed
	enc, _, _ := charset.DetermineEncoding(data, resp.Header.Get("Content-Type"))
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return "", domain.ErrPageUnavailable
		}
		utf8data = data
	}

	return string(utf8data), nil
}
