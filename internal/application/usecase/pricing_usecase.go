package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/application/ports"
	"github.com/karamansaglik/pharmacy-api/internal/domain"
	"github.com/karamansaglik/pharmacy-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// searchTimeout bounds the provider call so a slow third party cannot stall
// the request. On timeout the comparison degrades to an empty result set.
const searchTimeout = 12 * time.Second

// PricingUseCase builds price comparisons: the stored product next to live
// listings from the external search provider.
type PricingUseCase struct {
	products repository.ProductRepository
	search   ports.PriceSearchService
	log      zerolog.Logger
}

// NewPricingUseCase builds the use case.
func NewPricingUseCase(products repository.ProductRepository, search ports.PriceSearchService, log zerolog.Logger) *PricingUseCase {
	return &PricingUseCase{products: products, search: search, log: log}
}

// Compare loads the product and augments it with provider listings.
// Unknown id is the only error path; a failing or empty provider response
// yields price_results: [] with the product data intact.
func (uc *PricingUseCase) Compare(ctx context.Context, productID string) (*dto.PriceComparisonResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.PriceComparisonResponse{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Brand:        product.Brand,
		Category:     product.Category,
		CurrentPrice: product.SalePrice,
		Barcode:      product.Barcode,
		PriceResults: []dto.PriceListing{},
	}

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	query := buildQuery(product.Name, product.Brand)
	listings, err := uc.search.SearchListings(searchCtx, query)
	if err != nil {
		uc.log.Warn().Err(err).Str("product_id", productID).Str("query", query).
			Msg("price search failed, returning empty results")
		return out, nil
	}
	if listings != nil {
		out.PriceResults = listings
	}
	return out, nil
}

// buildQuery joins name and brand, skipping the brand when the name already
// contains it (e.g. "Bayer Aspirin" + brand "Bayer").
func buildQuery(name, brand string) string {
	if brand == "" || strings.Contains(strings.ToLower(name), strings.ToLower(brand)) {
		return name
	}
	return name + " " + brand
}
