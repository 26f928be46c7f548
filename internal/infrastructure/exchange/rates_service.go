package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/application/ports"
	"github.com/karamansaglik/pharmacy-api/pkg/config"
	"github.com/shopspring/decimal"
)

// Compile-time check that RatesService implements ExchangeRateService.
var _ ports.ExchangeRateService = (*RatesService)(nil)

// RatesService fetches USD/EUR→TRY quotes from an open.er-api.com style
// endpoint: GET {base}/USD returns rates keyed by currency code.
type RatesService struct {
	cfg        config.ExchangeConfig
	httpClient *http.Client
}

// NewRatesService builds the adapter.
func NewRatesService(cfg config.ExchangeConfig) *RatesService {
	return &RatesService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

type ratesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// FetchRates queries the provider once per call; caching lives in the use case.
func (s *RatesService) FetchRates(ctx context.Context) (*dto.CurrencyRatesResponse, error) {
	usdTry, err := s.fetchRate(ctx, "USD", "TRY")
	if err != nil {
		return nil, err
	}
	eurTry, err := s.fetchRate(ctx, "EUR", "TRY")
	if err != nil {
		return nil, err
	}
	return &dto.CurrencyRatesResponse{
		USDTRY:    usdTry,
		EURTRY:    eurTry,
		FetchedAt: time.Now(),
	}, nil
}

func (s *RatesService) fetchRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/"+base, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("exchange: build request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("exchange: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return decimal.Zero, fmt.Errorf("exchange: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("exchange: provider HTTP %d", resp.StatusCode)
	}

	var payload ratesResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("exchange: decode response: %w", err)
	}
	rate, ok := payload.Rates[quote]
	if !ok {
		return decimal.Zero, fmt.Errorf("exchange: %s rate missing in %s response", quote, base)
	}
	return decimal.NewFromFloat(rate), nil
}
