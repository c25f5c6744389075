package store

import (
	"context"
	"log/slog"

	"github.com/vedakart/storefront-gateway/internal/cache"
	"github.com/vedakart/storefront-gateway/internal/metrics"
	"github.com/vedakart/storefront-gateway/internal/models"
)

// Every query follows the same shape: guard, cache lookup, a single facade
// call, cache fill. With the guard down (no handle, or a required parameter
// absent) the query resolves to its typed empty value without contacting the
// backend. Cache failures degrade to a fetch; they never fail the query.

// cached reads key into dest. Returns false on miss or cache error.
func (s *Store) cached(ctx context.Context, key string, dest any) bool {

	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.log.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		metrics.RecordCacheMiss(cache.Namespace(key))

		return false
	}

	if found {
		metrics.RecordCacheHit(cache.Namespace(key))
	} else {
		metrics.RecordCacheMiss(cache.Namespace(key))
	}

	return found
}

// fill stores a fresh result under key, best effort.
func (s *Store) fill(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, 0); err != nil {
		s.log.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Products lists the catalog. Results are cached per hideOutOfStock flag, so
// the customer view and the admin view are independent entries.
func (s *Store) Products(ctx context.Context, hideOutOfStock bool) ([]models.Product, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return []models.Product{}, nil
	}

	key := productsKey(hideOutOfStock)

	var cachedProducts []models.Product
	if s.cached(ctx, key, &cachedProducts) {
		return cachedProducts, nil
	}

	products, err := handle.GetProducts(ctx, hideOutOfStock)
	if err != nil {
		return nil, err
	}

	s.fill(ctx, key, products)

	return products, nil
}

// ProductByID resolves to nil both when the id is absent and when the
// backend has no such product.
func (s *Store) ProductByID(ctx context.Context, id *models.ProductID) (*models.Product, error) {

	handle, ready := s.session.Handle()
	if !ready || id == nil {
		return nil, nil
	}

	key := productKey(*id)

	var cachedProduct models.Product
	if s.cached(ctx, key, &cachedProduct) {
		return &cachedProduct, nil
	}

	product, err := handle.GetProductByID(ctx, *id)
	if err != nil {
		return nil, err
	}

	if product != nil {
		s.fill(ctx, key, product)
	}

	return product, nil
}

func (s *Store) LowStockProducts(ctx context.Context) ([]models.Product, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return []models.Product{}, nil
	}

	key := lowStockKey()

	var cachedProducts []models.Product
	if s.cached(ctx, key, &cachedProducts) {
		return cachedProducts, nil
	}

	products, err := handle.GetLowStockProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.fill(ctx, key, products)

	return products, nil
}

func (s *Store) Inquiries(ctx context.Context) ([]models.Inquiry, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return []models.Inquiry{}, nil
	}

	key := inquiriesKey()

	var cachedInquiries []models.Inquiry
	if s.cached(ctx, key, &cachedInquiries) {
		return cachedInquiries, nil
	}

	inquiries, err := handle.GetInquiries(ctx)
	if err != nil {
		return nil, err
	}

	s.fill(ctx, key, inquiries)

	return inquiries, nil
}

func (s *Store) IncomeStats(ctx context.Context) (models.IncomeStats, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return models.IncomeStats{}, nil
	}

	key := incomeStatsKey()

	var cachedStats models.IncomeStats
	if s.cached(ctx, key, &cachedStats) {
		return cachedStats, nil
	}

	stats, err := handle.GetIncomeStats(ctx)
	if err != nil {
		return models.IncomeStats{}, err
	}

	s.fill(ctx, key, stats)

	return stats, nil
}

// SalesByDate lists sales for the day starting at dayTimestamp. A nil
// parameter resolves to the empty list without a backend call.
func (s *Store) SalesByDate(ctx context.Context, dayTimestamp *uint64) ([]models.Sale, error) {

	handle, ready := s.session.Handle()
	if !ready || dayTimestamp == nil {
		return []models.Sale{}, nil
	}

	key := salesByDateKey(*dayTimestamp)

	var cachedSales []models.Sale
	if s.cached(ctx, key, &cachedSales) {
		return cachedSales, nil
	}

	sales, err := handle.GetSalesByDate(ctx, *dayTimestamp)
	if err != nil {
		return nil, err
	}

	s.fill(ctx, key, sales)

	return sales, nil
}

func (s *Store) SalesByMonth(ctx context.Context, year, month *uint64) ([]models.Sale, error) {

	handle, ready := s.session.Handle()
	if !ready || year == nil || month == nil {
		return []models.Sale{}, nil
	}

	key := salesByMonthKey(*year, *month)

	var cachedSales []models.Sale
	if s.cached(ctx, key, &cachedSales) {
		return cachedSales, nil
	}

	sales, err := handle.GetSalesByMonth(ctx, *year, *month)
	if err != nil {
		return nil, err
	}

	s.fill(ctx, key, sales)

	return sales, nil
}

func (s *Store) SalesByProduct(ctx context.Context, productID *models.ProductID) ([]models.Sale, error) {

	handle, ready := s.session.Handle()
	if !ready || productID == nil {
		return []models.Sale{}, nil
	}

	key := salesByProductKey(*productID)

	var cachedSales []models.Sale
	if s.cached(ctx, key, &cachedSales) {
		return cachedSales, nil
	}

	sales, err := handle.GetSalesByProduct(ctx, *productID)
	if err != nil {
		return nil, err
	}

	s.fill(ctx, key, sales)

	return sales, nil
}

func (s *Store) IsCallerAdmin(ctx context.Context) (bool, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return false, nil
	}

	key := isAdminKey()

	var cachedIsAdmin bool
	if s.cached(ctx, key, &cachedIsAdmin) {
		return cachedIsAdmin, nil
	}

	isAdmin, err := handle.IsCallerAdmin(ctx)
	if err != nil {
		return false, err
	}

	s.fill(ctx, key, isAdmin)

	return isAdmin, nil
}

// CallerUserRole is a pass-through: the role backs authorization decisions
// and is cheap enough to fetch fresh.
func (s *Store) CallerUserRole(ctx context.Context) (models.UserRole, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return models.RoleGuest, nil
	}

	return handle.GetCallerUserRole(ctx)
}

// CallerUserProfile is a pass-through; nothing invalidates it, so it is not
// cached.
func (s *Store) CallerUserProfile(ctx context.Context) (*models.UserProfile, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return nil, nil
	}

	return handle.GetCallerUserProfile(ctx)
}
