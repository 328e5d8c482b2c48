package tierrepo

import (
	"context"

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

func (r *Repository) FindByProduct(ctx context.Context, productID int) ([]domain.RentalPriceTier, error) {
	query := `
        SELECT id, product_id, min_days, price_per_day
        FROM rental_price_tiers
        WHERE product_id = $1
    `
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		zap.L().Error("can't get rental price tiers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.RentalPriceTier
	for rows.Next() {
		var tier domain.RentalPriceTier
		err := rows.Scan(&tier.ID, &tier.ProductID, &tier.MinDays, &tier.PricePerDay)
		if err != nil {
			zap.L().Error("can't scan tier row", zap.Error(err))
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// ReplaceForProduct deletes the existing tier set and inserts the new one
// atomically. Storage never keeps a partially replaced set.
func (r *Repository) ReplaceForProduct(ctx context.Context, productID int, tiers []domain.RentalPriceTier) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `DELETE FROM rental_price_tiers WHERE product_id = $1`, productID)
		if err != nil {
			zap.L().Error("can't delete old tiers", zap.Error(err))
			return err
		}
		for _, tier := range tiers {
			_, err := r.db.Exec(ctx,
				`INSERT INTO rental_price_tiers (product_id, min_days, price_per_day) VALUES ($1, $2, $3)`,
				productID, tier.MinDays, tier.PricePerDay,
			)
			if err != nil {
				zap.L().Error("can't insert tier", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) DeleteForProduct(ctx context.Context, productID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM rental_price_tiers WHERE product_id = $1`, productID)
	if err != nil {
		zap.L().Error("can't delete tiers", zap.Error(err))
		return err
	}
	return nil
}
