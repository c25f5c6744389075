package models

type InquiryID uint64

type Inquiry struct {
	ID        InquiryID  `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message"`
	ProductID *ProductID `json:"product_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	Timestamp int64      `json:"timestamp"` // seconds since epoch
}

// InquiryInput is the customer-facing contact form payload. ProductID is set
// when the inquiry was raised from a product page, absent otherwise.
type InquiryInput struct {
	Name      string     `json:"name" validate:"required,min=2,max=100"`
	Phone     string     `json:"phone" validate:"required,min=7,max=20"`
	Message   string     `json:"message" validate:"required,max=2000"`
	ProductID *ProductID `json:"product_id,omitempty"`
}
