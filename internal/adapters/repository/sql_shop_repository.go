package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

type SQLShopRepository struct {
	db *sqlx.DB
}

func NewSQLShopRepository(db *sqlx.DB) *SQLShopRepository {
	return &SQLShopRepository{db: db}
}

func (r *SQLShopRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items := []*domain.Item{}
	query := `SELECT * FROM items ORDER BY id ASC`

	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("item list query failed: %w", err)
	}
	return items, nil
}

func (r *SQLShopRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	query := r.db.Rebind(`SELECT * FROM items WHERE id = ?`)

	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("item query failed: %w", err)
	}
	return &item, nil
}

func (r *SQLShopRepository) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	query := `
        INSERT INTO purchases (item_id, cost_at_purchase, purchased_at)
        VALUES (?, ?, ?)`

	id, err := insertReturningID(ctx, r.db, query, p.ItemID, p.CostAtPurchase, p.PurchasedAt)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	p.ID = id
	return nil
}

func (r *SQLShopRepository) ListPurchases(ctx context.Context) ([]*domain.Purchase, error) {
	purchases := []*domain.Purchase{}
	query := `SELECT * FROM purchases ORDER BY purchased_at DESC`

	if err := r.db.SelectContext(ctx, &purchases, query); err != nil {
		return nil, fmt.Errorf("purchase list query failed: %w", err)
	}
	return purchases, nil
}

func (r *SQLShopRepository) TotalSpent(ctx context.Context) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(cost_at_purchase), 0) FROM purchases`

	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("spend total query failed: %w", err)
	}
	return total, nil
}
