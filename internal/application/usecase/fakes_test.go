package usecase

import (
	"context"

	"github.com/karamansaglik/pharmacy-api/internal/domain"
	"github.com/karamansaglik/pharmacy-api/internal/domain/entity"
	"github.com/karamansaglik/pharmacy-api/internal/domain/repository"
)

// memProductRepo is an in-memory ProductRepository with the same contract as
// the postgres adapter: (nil, nil) on missing rows, ErrDuplicate on barcode
// collisions, guarded stock decrements.
type memProductRepo struct {
	products []*entity.Product
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	clone := *p
	r.products = append(r.products, &clone)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			clone := *p
			r.products[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if offset >= len(r.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	out := make([]*entity.Product, 0, end-offset)
	for _, p := range r.products[offset:end] {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) DecrementStock(productID string, qty int) error {
	for _, p := range r.products {
		if p.ID == productID {
			if p.Quantity < qty {
				return domain.ErrInsufficientStock
			}
			p.Quantity -= qty
			return nil
		}
	}
	return domain.ErrNotFound
}

// memSaleRepo is an in-memory SaleRepository.
type memSaleRepo struct {
	sales []*entity.Sale
}

var _ repository.SaleRepository = (*memSaleRepo)(nil)

func (r *memSaleRepo) Create(s *entity.Sale) error {
	clone := *s
	r.sales = append(r.sales, &clone)
	return nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	if offset >= len(r.sales) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.sales) {
		end = len(r.sales)
	}
	return r.sales[offset:end], nil
}

// memTxRunner mimics transactional semantics: fn runs against snapshot copies
// and the originals are only swapped in on success.
type memTxRunner struct {
	sales    *memSaleRepo
	products *memProductRepo
}

var _ SaleTxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(ctx context.Context, fn func(
	sales repository.SaleRepository,
	products repository.ProductRepository,
) error) error {
	txSales := &memSaleRepo{sales: append([]*entity.Sale(nil), r.sales.sales...)}
	txProducts := &memProductRepo{}
	for _, p := range r.products.products {
		clone := *p
		txProducts.products = append(txProducts.products, &clone)
	}
	if err := fn(txSales, txProducts); err != nil {
		return err
	}
	r.sales.sales = txSales.sales
	r.products.products = txProducts.products
	return nil
}
