package ports

import (
	"context"

	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
)

// ExchangeRateService is the outbound port to the FX rates provider.
type ExchangeRateService interface {
	FetchRates(ctx context.Context) (*dto.CurrencyRatesResponse, error)
}
