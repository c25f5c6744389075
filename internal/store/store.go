// Package store is the data access layer between the HTTP handlers and the
// remote shop backend. Each query is bound to a stable cache key and guarded
// on session readiness; each mutation declares the cache namespaces it
// stales on success. The cache is a disposable projection, never a source of
// truth.
package store

import (
	"context"
	"log/slog"

	"github.com/vedakart/storefront-gateway/internal/cache"
	appErrors "github.com/vedakart/storefront-gateway/internal/errors"
	"github.com/vedakart/storefront-gateway/internal/metrics"
	"github.com/vedakart/storefront-gateway/internal/session"
)

// ErrHandleNotAvailable is returned by mutations invoked while no backend
// session handle is ready. Queries never raise it; they resolve to their
// empty value instead.
var ErrHandleNotAvailable = appErrors.SessionNotReadyError("Backend session handle not available")

type Store struct {
	session *session.Provider
	cache   cache.Cache
	log     *slog.Logger
}

func New(sess *session.Provider, c cache.Cache, log *slog.Logger) *Store {
	return &Store{
		session: sess,
		cache:   c,
		log:     log,
	}
}

// invalidate stales the given namespaces. It runs only after remote success
// and never turns a confirmed mutation into a failure: a cache that cannot
// be staled only costs an extra fetch once the entries expire.
func (s *Store) invalidate(ctx context.Context, namespaces ...string) {
	for _, ns := range namespaces {
		if err := s.cache.Invalidate(ctx, ns); err != nil {
			s.log.Warn("cache invalidation failed",
				slog.String("namespace", ns),
				slog.String("error", err.Error()))

			continue
		}

		metrics.RecordInvalidation(ns)
	}
}
