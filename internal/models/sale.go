package models

type SaleID uint64

// Sale is a confirmed sale record. ProductName and PricePerUnit are
// denormalized at record time, so later product edits do not rewrite history.
type Sale struct {
	ID           SaleID    `json:"id"`
	ProductID    ProductID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	PricePerUnit float64   `json:"price_per_unit"`
	Quantity     uint64    `json:"quantity"`
	TotalAmount  float64   `json:"total_amount"`
	CustomerName *string   `json:"customer_name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	SaleDate     int64     `json:"sale_date"` // seconds since epoch
}

type SaleInput struct {
	ProductID    ProductID `json:"product_id" validate:"required"`
	Quantity     uint64    `json:"quantity" validate:"required,gt=0"`
	CustomerName *string   `json:"customer_name,omitempty" validate:"omitempty,max=100"`
	Phone        *string   `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// IncomeStats is the backend-computed income snapshot over Sale records.
type IncomeStats struct {
	TodayIncome   float64 `json:"today_income"`
	MonthlyIncome float64 `json:"monthly_income"`
	TotalIncome   float64 `json:"total_income"`
}
