package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a shared, invalidation-driven projection of remote state. Entries
// belong to the namespace named by their first key segment and are staled as
// a unit via Invalidate.
type Cache interface {
	Get(ctx context.Context, key string, value interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Invalidate(ctx context.Context, namespace string) error
	Flush(ctx context.Context) error
	Close() error
}

// Key joins parts into a canonical cache key. The first part is the
// namespace.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Namespace returns the namespace segment of a key.
func Namespace(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}

	return key
}

const (
	ProductsNamespace    = "products"
	ProductNamespace     = "product"
	LowStockNamespace    = "lowStockProducts"
	InquiriesNamespace   = "inquiries"
	SalesNamespace       = "sales"
	IncomeStatsNamespace = "incomeStats"
	IsAdminNamespace     = "isCallerAdmin"
)
