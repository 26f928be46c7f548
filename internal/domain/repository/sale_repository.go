package repository

import "github.com/karamansaglik/pharmacy-api/internal/domain/entity"

// SaleRepository is the persistence port for Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	List(limit, offset int) ([]*entity.Sale, error)
}
