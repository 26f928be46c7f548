package dto

import "github.com/shopspring/decimal"

// PriceListing is one external shopping listing, passed through from the
// search provider largely unmodified.
type PriceListing struct {
	Title          string  `json:"title"`
	Source         string  `json:"source"`
	Link           string  `json:"link"`
	Price          string  `json:"price"`
	ExtractedPrice float64 `json:"extracted_price"`
	Thumbnail      string  `json:"thumbnail,omitempty"`
}

// PriceComparisonResponse embeds the product's current fields next to whatever
// listings the provider returned. PriceResults is always a slice, possibly
// empty; provider failure is not an error condition here.
type PriceComparisonResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Barcode      string          `json:"barcode"`
	PriceResults []PriceListing  `json:"price_results"`
}
