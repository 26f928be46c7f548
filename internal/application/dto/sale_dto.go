package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest one cart line in a checkout.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// CreateSaleRequest checkout input from the POS screen.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=cash card"`
}

// SaleItemResponse one line of a recorded sale.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// SaleResponse recorded sale output.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Discount      decimal.Decimal    `json:"discount"`
	PaymentMethod string             `json:"payment_method"`
	CreatedBy     string             `json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
}
