package cache

import (
	"context"
	"testing"
	"time"

	"github.com/brewbot/backend/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value interface{}
		ttl   time.Duration
	}{
		{
			name:  "store and retrieve string",
			key:   "translate:ru:ethiopia yirgacheffe",
			value: "Эфиопия Иргачефф",
			ttl:   1 * time.Minute,
		},
		{
			name: "store and retrieve typed slice",
			key:  "coffeeapi:hot",
			value: []domain.CoffeeDrink{
				{ID: 1, Title: "Black Coffee"},
			},
			ttl: 1 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, tt.key, tt.value, tt.ttl); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := cache.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			// Values come back exactly as stored
			switch want := tt.value.(type) {
			case string:
				if got != want {
					t.Errorf("Get() = %v, want %v", got, want)
				}
			case []domain.CoffeeDrink:
				drinks, ok := got.([]domain.CoffeeDrink)
				if !ok {
					t.Fatalf("Get() type = %T, want []domain.CoffeeDrink", got)
				}
				if len(drinks) != len(want) || drinks[0].Title != want[0].Title {
					t.Errorf("Get() = %v, want %v", drinks, want)
				}
			}
		})
	}
}

func TestMemoryCache_Get_CacheMiss(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, err := cache.Get(ctx, "non-existent-key")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Get_Expired(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "short-lived", "value", 1*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err := cache.Get(ctx, "short-lived")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() after expiry error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", "value", time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := cache.Get(ctx, "key")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() after delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Exists(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	exists, err := cache.Exists(ctx, "missing")
	if err != nil || exists {
		t.Errorf("Exists(missing) = %v, %v, want false, nil", exists, err)
	}

	_ = cache.Set(ctx, "present", "value", time.Minute)
	exists, err = cache.Exists(ctx, "present")
	if err != nil || !exists {
		t.Errorf("Exists(present) = %v, %v, want true, nil", exists, err)
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "a", 1, time.Minute)
	_ = cache.Set(ctx, "b", 2, time.Minute)

	if cache.Size() != 2 {
		t.Errorf("Size() = %d, want 2", cache.Size())
	}

	cache.Clear()
	if cache.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", cache.Size())
	}
}
