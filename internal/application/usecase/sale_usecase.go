package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/domain"
	"github.com/karamansaglik/pharmacy-api/internal/domain/entity"
	"github.com/karamansaglik/pharmacy-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SaleUseCase POS checkout: records a sale and decrements stock atomically.
type SaleUseCase struct {
	tx    SaleTxRunner
	sales repository.SaleRepository
}

// NewSaleUseCase builds the use case. The plain sales repo serves reads; all
// writes go through the transaction runner.
func NewSaleUseCase(tx SaleTxRunner, sales repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales}
}

// Create validates the cart and runs the checkout in one transaction: insert
// the sale, then decrement each product's stock guarded by quantity >= n.
// Insufficient stock on any line aborts the whole sale.
func (uc *SaleUseCase) Create(ctx context.Context, username string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Items:         make([]entity.SaleItem, 0, len(in.Items)),
		Discount:      in.Discount,
		PaymentMethod: payment,
		CreatedBy:     username,
		CreatedAt:     time.Now(),
	}
	total := decimal.Zero
	for _, item := range in.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}
	sale.TotalAmount = total

	err := uc.tx.Run(ctx, func(sales repository.SaleRepository, products repository.ProductRepository) error {
		for i, item := range sale.Items {
			product, err := products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			// Snapshot the catalog name when the POS didn't send one.
			if item.Name == "" {
				sale.Items[i].Name = product.Name
			}
			if err := products.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return sales.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List returns recent sales for reporting.
func (uc *SaleUseCase) List(limit, offset int) ([]dto.SaleResponse, error) {
	list, err := uc.sales.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Total:     it.Total,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		TotalAmount:   s.TotalAmount,
		Discount:      s.Discount,
		PaymentMethod: s.PaymentMethod,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
	}
}
