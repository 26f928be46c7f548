package postgres

import (
	"context"
	"fmt"

	"github.com/karamansaglik/pharmacy-api/internal/domain/entity"
	"github.com/karamansaglik/pharmacy-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements the SaleRepository port on PostgreSQL (usable with pool or tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the persistence adapter for sales. Pass a pool or tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persists a sale and its line items. Run inside a transaction together
// with the stock decrements.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, total_amount, discount, payment_method, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sale.ID, sale.TotalAmount, sale.Discount, sale.PaymentMethod, sale.CreatedBy, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, item := range sale.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, product_id, name, quantity, price, total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, item.ProductID, item.Name, item.Quantity, item.Price, item.Total,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// List returns recent sales with their items, newest first.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, total_amount, discount, payment_method, created_by, created_at
		FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	index := make(map[string]*entity.Sale)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TotalAmount, &s.Discount, &s.PaymentMethod, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		index[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	itemRows, err := r.q.Query(ctx, `
		SELECT sale_id, product_id, name, quantity, price, total
		FROM sale_items WHERE sale_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var saleID string
		var it entity.SaleItem
		if err := itemRows.Scan(&saleID, &it.ProductID, &it.Name, &it.Quantity, &it.Price, &it.Total); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := index[saleID]; ok {
			s.Items = append(s.Items, it)
		}
	}
	return list, itemRows.Err()
}
