package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vedakart/storefront-gateway/internal/backend"
	"github.com/vedakart/storefront-gateway/internal/session"
	"github.com/vedakart/storefront-gateway/internal/store"
)

// nopCache misses every read so handler tests always exercise the facade.
type nopCache struct{}

func (nopCache) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (nopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (nopCache) Delete(context.Context, string) error                  { return nil }
func (nopCache) Invalidate(context.Context, string) error              { return nil }
func (nopCache) Flush(context.Context) error                           { return nil }
func (nopCache) Close() error                                          { return nil }

func newTestStore(t *testing.T, facade backend.Facade) *store.Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider := session.NewProvider(func(string) (backend.Facade, error) {
		return facade, nil
	}, nopCache{}, logger)

	require.NoError(t, provider.Connect(t.Context(), "shop-service"))

	return store.New(provider, nopCache{}, logger)
}
