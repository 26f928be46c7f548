package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods for Sale.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Sale is a completed point-of-sale checkout. Creating a sale decrements the
// stock of every item in the same transaction.
type Sale struct {
	ID            string
	Items         []SaleItem
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	PaymentMethod string
	CreatedBy     string // username from the token
	CreatedAt     time.Time
}

// SaleItem is one line of a sale. Name and Price are captured at sale time so
// later catalog edits do not rewrite history.
type SaleItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Total     decimal.Decimal
}
