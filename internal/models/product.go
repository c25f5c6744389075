package models

// ProductID is the backend-issued identifier of a product. Identifiers are
// unique and stable once created; the backend never reuses them.
type ProductID uint64

type ProductStatus string

const (
	ProductStatusInStock    ProductStatus = "in-stock"
	ProductStatusOutOfStock ProductStatus = "out-of-stock"
)

type Product struct {
	ID            ProductID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	ImageURL      string        `json:"image_url"`
	Price         float64       `json:"price"`
	StockQuantity uint64        `json:"stock_quantity"`
	Status        ProductStatus `json:"status"`
	IsHidden      bool          `json:"is_hidden"`
}

// ProductInput carries the caller-settable fields of a product. Status and
// visibility are computed or managed remotely and are never part of the input.
type ProductInput struct {
	Name          string  `json:"name" validate:"required,min=2,max=200"`
	Description   string  `json:"description" validate:"max=5000"`
	Category      string  `json:"category" validate:"required,max=100"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity uint64  `json:"stock_quantity"`
}

type LowStockThresholdRequest struct {
	Threshold uint64 `json:"threshold"`
}
