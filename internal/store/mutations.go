package store

import (
	"context"

	"github.com/vedakart/storefront-gateway/internal/cache"
	"github.com/vedakart/storefront-gateway/internal/models"
)

// Mutations pass caller input through to the backend unchanged and propagate
// remote failures unmodified. Invalidation fires only after remote success;
// a rejected call leaves every cache entry untouched.

func (s *Store) CreateProduct(ctx context.Context, input models.ProductInput) (models.ProductID, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return 0, ErrHandleNotAvailable
	}

	id, err := handle.CreateProduct(ctx, input)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, cache.ProductsNamespace, cache.LowStockNamespace)

	return id, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id models.ProductID, input models.ProductInput) error {

	handle, ready := s.session.Handle()
	if !ready {
		return ErrHandleNotAvailable
	}

	if err := handle.UpdateProduct(ctx, id, input); err != nil {
		return err
	}

	s.invalidate(ctx, cache.ProductsNamespace, cache.LowStockNamespace)

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id models.ProductID) error {

	handle, ready := s.session.Handle()
	if !ready {
		return ErrHandleNotAvailable
	}

	if err := handle.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.ProductsNamespace, cache.LowStockNamespace)

	return nil
}

func (s *Store) SetLowStockThreshold(ctx context.Context, threshold uint64) error {

	handle, ready := s.session.Handle()
	if !ready {
		return ErrHandleNotAvailable
	}

	if err := handle.SetLowStockThreshold(ctx, threshold); err != nil {
		return err
	}

	s.invalidate(ctx, cache.LowStockNamespace)

	return nil
}

func (s *Store) SubmitInquiry(ctx context.Context, input models.InquiryInput) (models.InquiryID, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return 0, ErrHandleNotAvailable
	}

	id, err := handle.SubmitInquiry(ctx, input)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, cache.InquiriesNamespace)

	return id, nil
}

func (s *Store) MarkInquiryRead(ctx context.Context, id models.InquiryID) error {

	handle, ready := s.session.Handle()
	if !ready {
		return ErrHandleNotAvailable
	}

	if err := handle.MarkInquiryRead(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.InquiriesNamespace)

	return nil
}

func (s *Store) DeleteInquiry(ctx context.Context, id models.InquiryID) error {

	handle, ready := s.session.Handle()
	if !ready {
		return ErrHandleNotAvailable
	}

	if err := handle.DeleteInquiry(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.InquiriesNamespace)

	return nil
}

// RecordSale stales the widest namespace set: a sale moves stock (products,
// low-stock alerts) and income aggregates besides the sales listings
// themselves. Income stats are intentionally not staled by product edits:
// income is computed from historical sale records, not live prices.
func (s *Store) RecordSale(ctx context.Context, input models.SaleInput) (models.SaleID, error) {

	handle, ready := s.session.Handle()
	if !ready {
		return 0, ErrHandleNotAvailable
	}

	id, err := handle.RecordSale(ctx, input)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx,
		cache.SalesNamespace,
		cache.ProductsNamespace,
		cache.IncomeStatsNamespace,
		cache.LowStockNamespace)

	return id, nil
}

// SaveCallerUserProfile stales nothing: the profile is read through an
// uncached pass-through query.
func (s *Store) SaveCallerUserProfile(ctx context.Context, profile models.UserProfile) error {

	handle, ready := s.session.Handle()
	if !ready {
		return ErrHandleNotAvailable
	}

	return handle.SaveCallerUserProfile(ctx, profile)
}
