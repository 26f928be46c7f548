package pricesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/application/ports"
	"github.com/karamansaglik/pharmacy-api/pkg/config"
)

// Compile-time check that SerpAPIService implements PriceSearchService.
var _ ports.PriceSearchService = (*SerpAPIService)(nil)

// SerpAPIService implements the price-search port against SerpAPI's Google
// Shopping engine. The caller bounds the call with a context timeout and
// downgrades any error to an empty result set.
type SerpAPIService struct {
	cfg        config.SerpConfig
	httpClient *http.Client
}

// NewSerpAPIService builds the adapter. An empty API key makes every call
// return a descriptive error, which the pricing use case degrades gracefully.
func NewSerpAPIService(cfg config.SerpConfig) *SerpAPIService {
	return &SerpAPIService{
		cfg: cfg,
		httpClient: &http.Client{
			// Network timeout slightly above the use case's context timeout.
			Timeout: 15 * time.Second,
		},
	}
}

// serpResponse is the subset of the SerpAPI payload we consume. The listing
// schema is owned by the provider and passed through largely unmodified.
type serpResponse struct {
	ShoppingResults []struct {
		Title          string  `json:"title"`
		Source         string  `json:"source"`
		Link           string  `json:"link"`
		Price          string  `json:"price"`
		ExtractedPrice float64 `json:"extracted_price"`
		Thumbnail      string  `json:"thumbnail"`
	} `json:"shopping_results"`
	Error string `json:"error"`
}

// SearchListings queries Google Shopping for comparable listings.
func (s *SerpAPIService) SearchListings(ctx context.Context, query string) ([]dto.PriceListing, error) {
	if s.cfg.APIKey == "" {
		return nil, fmt.Errorf("pricesearch: SERPAPI_KEY not configured")
	}

	params := url.Values{}
	params.Set("engine", "google_shopping")
	params.Set("q", query)
	params.Set("api_key", s.cfg.APIKey)
	if s.cfg.Country != "" {
		params.Set("gl", s.cfg.Country)
	}
	if s.cfg.Lang != "" {
		params.Set("hl", s.cfg.Lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pricesearch: build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("pricesearch: timeout or cancellation: %w", ctx.Err())
		}
		return nil, fmt.Errorf("pricesearch: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("pricesearch: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricesearch: SerpAPI HTTP %d: %s", resp.StatusCode, truncate(rawBody, 200))
	}

	var payload serpResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("pricesearch: decode response: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("pricesearch: SerpAPI error: %s", payload.Error)
	}

	listings := make([]dto.PriceListing, 0, len(payload.ShoppingResults))
	for _, r := range payload.ShoppingResults {
		listings = append(listings, dto.PriceListing{
			Title:          r.Title,
			Source:         r.Source,
			Link:           r.Link,
			Price:          r.Price,
			ExtractedPrice: r.ExtractedPrice,
			Thumbnail:      r.Thumbnail,
		})
	}
	return listings, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
