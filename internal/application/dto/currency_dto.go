package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRatesResponse live FX quotes for the dashboard ticker.
type CurrencyRatesResponse struct {
	USDTRY    decimal.Decimal `json:"usd_try"`
	EURTRY    decimal.Decimal `json:"eur_try"`
	FetchedAt time.Time       `json:"fetched_at"`
}
