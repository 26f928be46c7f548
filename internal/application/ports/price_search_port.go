package ports

import (
	"context"

	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
)

// PriceSearchService is the outbound port to the external price-search
// provider. Implementations must honor ctx cancellation; callers treat any
// error as "no listings" so the comparison endpoint never depends on the
// provider's uptime.
type PriceSearchService interface {
	SearchListings(ctx context.Context, query string) ([]dto.PriceListing, error)
}
