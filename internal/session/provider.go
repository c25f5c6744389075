// Package session owns the single shared connection to the shop backend.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vedakart/storefront-gateway/internal/backend"
	"github.com/vedakart/storefront-gateway/internal/cache"
)

// DialFunc builds a backend handle bound to an identity.
type DialFunc func(identity string) (backend.Facade, error)

// Provider supplies the identity-bound backend handle. There is exactly one
// shared handle; no component obtains a private one. While a reconnect is in
// flight the provider reports "not ready" and data-access guards hold.
type Provider struct {
	mu         sync.RWMutex
	handle     backend.Facade
	identity   string
	connecting bool

	dial  DialFunc
	cache cache.Cache
	log   *slog.Logger
}

func NewProvider(dial DialFunc, c cache.Cache, log *slog.Logger) *Provider {
	return &Provider{
		dial:  dial,
		cache: c,
		log:   log,
	}
}

// Handle returns the current backend handle and whether it is ready for use.
func (p *Provider) Handle() (backend.Facade, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.handle == nil || p.connecting {
		return nil, false
	}

	return p.handle, true
}

func (p *Provider) IsConnecting() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.connecting
}

func (p *Provider) Identity() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.identity
}

// Connect dials a handle for the identity and swaps it in. An identity
// change flushes the whole cache first: every cached projection belongs to
// the old identity's view and loses relevance at once. In-flight calls on
// the old handle may still complete; their late results repopulate the cache
// and age out via TTL.
func (p *Provider) Connect(ctx context.Context, identity string) error {

	p.mu.Lock()

	identityChanged := p.identity != "" && p.identity != identity
	p.connecting = true

	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.connecting = false
		p.mu.Unlock()
	}()

	if identityChanged {
		if err := p.cache.Flush(ctx); err != nil {
			p.log.Warn("cache flush on identity switch failed", slog.String("error", err.Error()))
		}
	}

	handle, err := p.dial(identity)
	if err != nil {
		return fmt.Errorf("failed to connect backend session for identity %q: %w", identity, err)
	}

	p.mu.Lock()
	p.handle = handle
	p.identity = identity
	p.mu.Unlock()

	p.log.Info("backend session connected", slog.String("identity", identity))

	return nil
}

// Disconnect drops the handle and flushes the cache. Used on logout.
func (p *Provider) Disconnect(ctx context.Context) {

	p.mu.Lock()
	p.handle = nil
	p.identity = ""
	p.mu.Unlock()

	if err := p.cache.Flush(ctx); err != nil {
		p.log.Warn("cache flush on disconnect failed", slog.String("error", err.Error()))
	}

	p.log.Info("backend session disconnected")
}
