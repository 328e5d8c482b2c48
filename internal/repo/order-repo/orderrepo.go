package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT id, user_id, payment_id, status, total, created_at
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var order domain.Order
	err := row.Scan(&order.ID, &order.UserID, &order.PaymentID, &order.Status, &order.Total, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// FindByPaymentID resolves the gateway correlation key, not the internal id.
func (r *Repository) FindByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error) {
	query := `
        SELECT id, user_id, payment_id, status, total, created_at
        FROM orders
        WHERE payment_id = $1
    `
	row := r.db.QueryRow(ctx, query, paymentID)

	var order domain.Order
	err := row.Scan(&order.ID, &order.UserID, &order.PaymentID, &order.Status, &order.Total, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by payment id", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, orderID)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Int("orderID", orderID), zap.Error(err))
		return err
	}
	return nil
}

// FindItemsForSettlement returns the order's item snapshot joined with the
// owning seller of each product. Detached items come back with a NULL seller.
func (r *Repository) FindItemsForSettlement(ctx context.Context, orderID int) ([]domain.SettlementItem, error) {
	query := `
        SELECT oi.product_id, p.user_id, oi.is_rental, oi.price, oi.quantity
        FROM order_items oi
        LEFT JOIN products p ON p.id = oi.product_id
        WHERE oi.order_id = $1
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items for settlement", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.SettlementItem
	for rows.Next() {
		var item domain.SettlementItem
		err := rows.Scan(&item.ProductID, &item.SellerID, &item.IsRental, &item.Price, &item.Quantity)
		if err != nil {
			zap.L().Error("can't scan settlement item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
