package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Barcode is the externally assigned
// identifier (unique storage-level index), distinct from the internal ID.
type Product struct {
	ID            string
	Name          string
	Barcode       string
	Quantity      int // units on hand
	MinQuantity   int // reorder threshold
	Brand         string
	Category      string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BelowMinimum reports whether the stock level is at or under the reorder threshold.
func (p *Product) BelowMinimum() bool {
	return p.Quantity <= p.MinQuantity
}
