// Package mocks provides a testify mock of the backend facade for tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vedakart/storefront-gateway/internal/backend"
	"github.com/vedakart/storefront-gateway/internal/models"
)

type Facade struct {
	mock.Mock
}

var _ backend.Facade = (*Facade)(nil)

func (m *Facade) GetProducts(ctx context.Context, hideOutOfStock bool) ([]models.Product, error) {
	args := m.Called(ctx, hideOutOfStock)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *Facade) GetProductByID(ctx context.Context, id models.ProductID) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *Facade) GetLowStockProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *Facade) CreateProduct(ctx context.Context, input models.ProductInput) (models.ProductID, error) {
	args := m.Called(ctx, input)

	return args.Get(0).(models.ProductID), args.Error(1)
}

func (m *Facade) UpdateProduct(ctx context.Context, id models.ProductID, input models.ProductInput) error {
	args := m.Called(ctx, id, input)

	return args.Error(0)
}

func (m *Facade) DeleteProduct(ctx context.Context, id models.ProductID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *Facade) SetLowStockThreshold(ctx context.Context, threshold uint64) error {
	args := m.Called(ctx, threshold)

	return args.Error(0)
}

func (m *Facade) GetInquiries(ctx context.Context) ([]models.Inquiry, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Inquiry), args.Error(1)
}

func (m *Facade) SubmitInquiry(ctx context.Context, input models.InquiryInput) (models.InquiryID, error) {
	args := m.Called(ctx, input)

	return args.Get(0).(models.InquiryID), args.Error(1)
}

func (m *Facade) MarkInquiryRead(ctx context.Context, id models.InquiryID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *Facade) DeleteInquiry(ctx context.Context, id models.InquiryID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *Facade) RecordSale(ctx context.Context, input models.SaleInput) (models.SaleID, error) {
	args := m.Called(ctx, input)

	return args.Get(0).(models.SaleID), args.Error(1)
}

func (m *Facade) GetSalesByDate(ctx context.Context, dayTimestamp uint64) ([]models.Sale, error) {
	args := m.Called(ctx, dayTimestamp)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *Facade) GetSalesByMonth(ctx context.Context, year, month uint64) ([]models.Sale, error) {
	args := m.Called(ctx, year, month)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *Facade) GetSalesByProduct(ctx context.Context, productID models.ProductID) ([]models.Sale, error) {
	args := m.Called(ctx, productID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *Facade) GetIncomeStats(ctx context.Context) (models.IncomeStats, error) {
	args := m.Called(ctx)

	return args.Get(0).(models.IncomeStats), args.Error(1)
}

func (m *Facade) IsCallerAdmin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)

	return args.Bool(0), args.Error(1)
}

func (m *Facade) GetCallerUserRole(ctx context.Context) (models.UserRole, error) {
	args := m.Called(ctx)

	return args.Get(0).(models.UserRole), args.Error(1)
}

func (m *Facade) GetCallerUserProfile(ctx context.Context) (*models.UserProfile, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *Facade) SaveCallerUserProfile(ctx context.Context, profile models.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}
