package store

import (
	"strconv"

	"github.com/vedakart/storefront-gateway/internal/cache"
	"github.com/vedakart/storefront-gateway/internal/models"
)

// Key construction is pure and total: every distinct parameter set maps to a
// distinct canonical key, and the first segment names the namespace the
// mutations invalidate. Date and month keys carry a discriminator segment so
// they can never collide.

func productsKey(hideOutOfStock bool) string {
	return cache.Key(cache.ProductsNamespace, strconv.FormatBool(hideOutOfStock))
}

func productKey(id models.ProductID) string {
	return cache.Key(cache.ProductNamespace, strconv.FormatUint(uint64(id), 10))
}

func lowStockKey() string {
	return cache.Key(cache.LowStockNamespace)
}

func inquiriesKey() string {
	return cache.Key(cache.InquiriesNamespace)
}

func incomeStatsKey() string {
	return cache.Key(cache.IncomeStatsNamespace)
}

func salesByDateKey(dayTimestamp uint64) string {
	return cache.Key(cache.SalesNamespace, "date", strconv.FormatUint(dayTimestamp, 10))
}

func salesByMonthKey(year, month uint64) string {
	return cache.Key(cache.SalesNamespace, "month",
		strconv.FormatUint(year, 10), strconv.FormatUint(month, 10))
}

func salesByProductKey(id models.ProductID) string {
	return cache.Key(cache.SalesNamespace, "product", strconv.FormatUint(uint64(id), 10))
}

func isAdminKey() string {
	return cache.Key(cache.IsAdminNamespace)
}
