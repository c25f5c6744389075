package backend

import (
	"context"

	"github.com/vedakart/storefront-gateway/internal/models"
)

// Facade is the typed contract of the remote shop backend. The backend owns
// all persistence and business rules; callers treat it as opaque. Every
// method is a single round trip.
type Facade interface {
	GetProducts(ctx context.Context, hideOutOfStock bool) ([]models.Product, error)
	GetProductByID(ctx context.Context, id models.ProductID) (*models.Product, error)
	GetLowStockProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (models.ProductID, error)
	UpdateProduct(ctx context.Context, id models.ProductID, input models.ProductInput) error
	DeleteProduct(ctx context.Context, id models.ProductID) error
	SetLowStockThreshold(ctx context.Context, threshold uint64) error

	GetInquiries(ctx context.Context) ([]models.Inquiry, error)
	SubmitInquiry(ctx context.Context, input models.InquiryInput) (models.InquiryID, error)
	MarkInquiryRead(ctx context.Context, id models.InquiryID) error
	DeleteInquiry(ctx context.Context, id models.InquiryID) error

	RecordSale(ctx context.Context, input models.SaleInput) (models.SaleID, error)
	GetSalesByDate(ctx context.Context, dayTimestamp uint64) ([]models.Sale, error)
	GetSalesByMonth(ctx context.Context, year, month uint64) ([]models.Sale, error)
	GetSalesByProduct(ctx context.Context, productID models.ProductID) ([]models.Sale, error)
	GetIncomeStats(ctx context.Context) (models.IncomeStats, error)

	IsCallerAdmin(ctx context.Context) (bool, error)
	GetCallerUserRole(ctx context.Context) (models.UserRole, error)
	GetCallerUserProfile(ctx context.Context) (*models.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile models.UserProfile) error
}
