package discountservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	ClearDiscount(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// ApplyExpiry returns a copy of the product with all three discount fields
// nulled when the discount window has elapsed, and whether it did so.
// A partially configured discount never expires and never errors.
func ApplyExpiry(product domain.Product, now time.Time) (domain.Product, bool) {
	if product.Discount == nil || product.DiscountDays == nil || product.DiscountStartDate == nil {
		return product, false
	}

	expiresAt := product.DiscountStartDate.Add(time.Duration(*product.DiscountDays) * 24 * time.Hour)
	if !now.After(expiresAt) {
		return product, false
	}

	product.Discount = nil
	product.DiscountDays = nil
	product.DiscountStartDate = nil
	return product, true
}

// CheckAndClear refetches the product and persists the three-field clear when
// the discount window has elapsed. Reports whether a clear occurred.
func (s *Service) CheckAndClear(ctx context.Context, productID int) (bool, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	_, expired := ApplyExpiry(*product, time.Now())
	if !expired {
		return false, nil
	}

	if err := s.repo.ClearDiscount(ctx, productID); err != nil {
		zap.L().Error("failed to clear expired discount", zap.Int("productID", productID), zap.Error(err))
		return false, err
	}
	zap.L().Info("expired discount cleared", zap.Int("productID", productID))
	return true, nil
}

// CheckAndClearBatch runs CheckAndClear over the ids sequentially and
// returns how many products were cleared. A failing product is logged and
// does not stop the batch.
func (s *Service) CheckAndClearBatch(ctx context.Context, productIDs []int) (int, error) {
	var cleared int
	for _, id := range productIDs {
		ok, err := s.CheckAndClear(ctx, id)
		if err != nil {
			zap.L().Error("batch discount check failed", zap.Int("productID", id), zap.Error(err))
			continue
		}
		if ok {
			cleared++
		}
	}
	return cleared, nil
}
