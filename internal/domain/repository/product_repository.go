package repository

import "github.com/karamansaglik/pharmacy-api/internal/domain/entity"

// ProductRepository is the persistence port for Product (DIP).
// Lookups return (nil, nil) when no row matches; Create returns
// domain.ErrDuplicate on a barcode unique-index violation.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	// DecrementStock subtracts qty guarded by quantity >= qty; returns
	// domain.ErrInsufficientStock when the guard fails and domain.ErrNotFound
	// when the product does not exist.
	DecrementStock(productID string, qty int) error
}
