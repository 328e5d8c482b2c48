package productrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT id, user_id, title, price, is_rental, status, discount, discount_days, discount_start_date, created_at
        FROM products
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var p domain.Product
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Price, &p.IsRental, &p.Status, &p.Discount, &p.DiscountDays, &p.DiscountStartDate, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// ClearDiscount nulls the three discount fields together; a partial clear
// never reaches storage.
func (r *Repository) ClearDiscount(ctx context.Context, id int) error {
	query := `
        UPDATE products
        SET discount = NULL, discount_days = NULL, discount_start_date = NULL
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't clear discount", zap.Int("productID", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindDiscounted(ctx context.Context, limit uint32) ([]domain.Product, error) {
	query := `
        SELECT id, user_id, title, price, is_rental, status, discount, discount_days, discount_start_date, created_at
        FROM products
        WHERE discount IS NOT NULL AND discount_days IS NOT NULL AND discount_start_date IS NOT NULL
        ORDER BY discount_start_date ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get discounted products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Price, &p.IsRental, &p.Status, &p.Discount, &p.DiscountDays, &p.DiscountStartDate, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID int) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE user_id = $1`, userID)

	var count int
	if err := row.Scan(&count); err != nil {
		zap.L().Error("can't count products", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// RemoveFromCirculation detaches order items referencing the product across
// all orders, drops cart rows, then deletes the product, in one transaction.
// Returns false when the product was already gone.
func (r *Repository) RemoveFromCirculation(ctx context.Context, productID int) (bool, error) {
	var removed bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `UPDATE order_items SET product_id = NULL WHERE product_id = $1`, productID)
		if err != nil {
			zap.L().Error("can't detach order items", zap.Int("productID", productID), zap.Error(err))
			return err
		}
		_, err = r.db.Exec(ctx, `DELETE FROM cart_items WHERE product_id = $1`, productID)
		if err != nil {
			zap.L().Error("can't delete cart items", zap.Int("productID", productID), zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
		if err != nil {
			zap.L().Error("can't delete product", zap.Int("productID", productID), zap.Error(err))
			return err
		}
		removed = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
