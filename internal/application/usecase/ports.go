package usecase

import (
	"context"

	"github.com/karamansaglik/pharmacy-api/internal/domain/repository"
)

// SaleTxRunner runs fn inside one storage transaction with repositories bound
// to that transaction. Any error from fn rolls everything back.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(
		sales repository.SaleRepository,
		products repository.ProductRepository,
	) error) error
}
