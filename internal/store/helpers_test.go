package store_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vedakart/storefront-gateway/internal/backend"
	"github.com/vedakart/storefront-gateway/internal/backend/mocks"
	"github.com/vedakart/storefront-gateway/internal/cache"
	"github.com/vedakart/storefront-gateway/internal/session"
	"github.com/vedakart/storefront-gateway/internal/store"
)

// spyCache is an in-memory cache.Cache that records every invalidation, so
// tests can assert the exact namespace sets a mutation stales. Values are
// JSON round-tripped like the redis implementation.
type spyCache struct {
	mu            sync.Mutex
	entries       map[string][]byte
	Invalidations []string
	Flushes       int
}

func newSpyCache() *spyCache {
	return &spyCache{entries: make(map[string][]byte)}
}

func (c *spyCache) Get(_ context.Context, key string, value interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, err
	}

	return true, nil
}

func (c *spyCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.entries[key] = data

	return nil
}

func (c *spyCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

func (c *spyCache) Invalidate(_ context.Context, namespace string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Invalidations = append(c.Invalidations, namespace)

	for key := range c.entries {
		if cache.Namespace(key) == namespace {
			delete(c.entries, key)
		}
	}

	return nil
}

func (c *spyCache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Flushes++
	c.entries = make(map[string][]byte)

	return nil
}

func (c *spyCache) Close() error { return nil }

func (c *spyCache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}

	return keys
}

func (c *spyCache) HasNamespace(namespace string) bool {
	for _, key := range c.Keys() {
		if strings.HasPrefix(key, namespace) {
			return true
		}
	}

	return false
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newReadyStore builds a Store whose session handle is connected to the
// given facade mock.
func newReadyStore(t *testing.T, facade *mocks.Facade) (*store.Store, *spyCache) {
	t.Helper()

	spy := newSpyCache()
	provider := session.NewProvider(func(string) (backend.Facade, error) {
		return facade, nil
	}, spy, testLogger())

	require.NoError(t, provider.Connect(t.Context(), "shop-service"))

	return store.New(provider, spy, testLogger()), spy
}

// newNotReadyStore builds a Store whose session handle was never connected.
// The facade is wired into the dial function but must stay unreached.
func newNotReadyStore(t *testing.T, facade *mocks.Facade) (*store.Store, *spyCache) {
	t.Helper()

	spy := newSpyCache()
	provider := session.NewProvider(func(string) (backend.Facade, error) {
		return facade, nil
	}, spy, testLogger())

	return store.New(provider, spy, testLogger()), spy
}
