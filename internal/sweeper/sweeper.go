package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vaqsi1990/cloth-sub002/internal/config"
	"github.com/vaqsi1990/cloth-sub002/internal/domain"
)

var sweepingProducts sync.Map

type ProductRepo interface {
	FindDiscounted(ctx context.Context, limit uint32) ([]domain.Product, error)
}

type DiscountService interface {
	CheckAndClear(ctx context.Context, productID int) (bool, error)
}

// Service periodically scans discounted products and clears the windows
// that have elapsed, so read paths rarely see a stale discount at all.
type Service struct {
	productRepo   ProductRepo
	discounts     DiscountService
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, productRepo ProductRepo, discounts DiscountService) *Service {
	return &Service{
		productRepo:   productRepo,
		discounts:     discounts,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Discount sweeper started", zap.Duration("interval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	products, err := s.productRepo.FindDiscounted(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch discounted products", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, product := range products {
		product := product

		if _, loaded := sweepingProducts.LoadOrStore(product.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingProducts.Delete(product.ID)
				_, err := s.discounts.CheckAndClear(ctx, product.ID)
				return err
			})
			if err != nil {
				sweepingProducts.Delete(product.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping discounts", zap.Error(err))
	}
}
