package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for creating a product.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Barcode       string          `json:"barcode" validate:"required,min=1,max=100"`
	Quantity      int             `json:"quantity" validate:"min=0"`
	MinQuantity   int             `json:"min_quantity" validate:"min=0"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Description   string          `json:"description"`
}

// UpdateProductRequest partial update input. Nil fields are left untouched;
// barcode is immutable after creation.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Quantity      *int             `json:"quantity" validate:"omitempty,min=0"`
	MinQuantity   *int             `json:"min_quantity" validate:"omitempty,min=0"`
	Brand         *string          `json:"brand"`
	Category      *string          `json:"category"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Description   *string          `json:"description"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	Quantity      int             `json:"quantity"`
	MinQuantity   int             `json:"min_quantity"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
