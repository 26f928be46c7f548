package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/application/ports"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	currencyCacheKey = "currency:rates"
	currencyCacheTTL = 5 * time.Minute
	currencyTimeout  = 10 * time.Second
)

// CurrencyUseCase serves FX quotes for the dashboard ticker. Quotes are cached
// in Redis for a few minutes; with no Redis configured every request hits the
// provider directly.
type CurrencyUseCase struct {
	exchange ports.ExchangeRateService
	cache    *redis.Client // nil when Redis is not configured
	log      zerolog.Logger
}

// NewCurrencyUseCase builds the use case. cache may be nil.
func NewCurrencyUseCase(exchange ports.ExchangeRateService, cache *redis.Client, log zerolog.Logger) *CurrencyUseCase {
	return &CurrencyUseCase{exchange: exchange, cache: cache, log: log}
}

// GetRates returns current USD/EUR→TRY quotes, cache-first.
func (uc *CurrencyUseCase) GetRates(ctx context.Context) (*dto.CurrencyRatesResponse, error) {
	if cached := uc.fromCache(ctx); cached != nil {
		return cached, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, currencyTimeout)
	defer cancel()

	rates, err := uc.exchange.FetchRates(fetchCtx)
	if err != nil {
		return nil, err
	}
	uc.toCache(ctx, rates)
	return rates, nil
}

func (uc *CurrencyUseCase) fromCache(ctx context.Context) *dto.CurrencyRatesResponse {
	if uc.cache == nil {
		return nil
	}
	raw, err := uc.cache.Get(ctx, currencyCacheKey).Result()
	if err != nil {
		return nil // miss or Redis down, fall through to the provider
	}
	var rates dto.CurrencyRatesResponse
	if err := json.Unmarshal([]byte(raw), &rates); err != nil {
		return nil
	}
	return &rates
}

func (uc *CurrencyUseCase) toCache(ctx context.Context, rates *dto.CurrencyRatesResponse) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(rates)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, currencyCacheKey, raw, currencyCacheTTL).Err(); err != nil {
		uc.log.Warn().Err(err).Msg("currency cache write failed")
	}
}
