package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brewbot/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
)

func TestTranslate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "ru", r.URL.Query().Get("tl"))
		assert.Equal(t, "hello", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[["привет","hello",null,null,10]],null,"en"]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	got := client.Translate(context.Background(), "hello", "ru")
	assert.Equal(t, "привет", got)
}

func TestTranslate_FallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	got := client.Translate(context.Background(), "hello", "ru")
	assert.Equal(t, "hello", got, "non-success status must pass the input through")
}

func TestTranslate_FallsBackOnMalformedShape(t *testing.T) {
	bodies := []string{
		`{"translated":"привет"}`,
		`[]`,
		`[[]]`,
		`[[[]]]`,
		`[[[42]]]`,
		`not json at all`,
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := NewClient(server.URL, 5*time.Second)
		got := client.Translate(context.Background(), "hello", "ru")
		assert.Equal(t, "hello", got, "body %q must pass the input through", body)

		server.Close()
	}
}

func TestTranslate_FallsBackOnTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)

	got := client.Translate(context.Background(), "hello", "ru")
	assert.Equal(t, "hello", got)
}

func TestTranslate_EmptyText(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)

	got := client.Translate(context.Background(), "", "ru")
	assert.Equal(t, "", got, "empty input must not hit the network")
}

func TestCachedTranslator_DeduplicatesRequests(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[[["привет","hello",null,null,10]]]`))
	}))
	defer server.Close()

	translator := NewCachedTranslator(
		NewClient(server.URL, 5*time.Second),
		cache.NewMemoryCache(),
		time.Minute,
	)
	ctx := context.Background()

	assert.Equal(t, "привет", translator.Translate(ctx, "hello", "ru"))
	assert.Equal(t, "привет", translator.Translate(ctx, "hello", "ru"))
	assert.Equal(t, "привет", translator.Translate(ctx, "Hello", "ru"), "keys are case-insensitive")
	assert.Equal(t, 1, calls, "repeated phrases must hit the endpoint once")
}

func TestCachedTranslator_DistinctTargetsAreSeparate(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[[["x","hello",null,null,10]]]`))
	}))
	defer server.Close()

	translator := NewCachedTranslator(
		NewClient(server.URL, 5*time.Second),
		cache.NewMemoryCache(),
		time.Minute,
	)
	ctx := context.Background()

	translator.Translate(ctx, "hello", "ru")
	translator.Translate(ctx, "hello", "de")
	assert.Equal(t, 2, calls)
}
