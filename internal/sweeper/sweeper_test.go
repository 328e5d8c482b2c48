package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vaqsi1990/cloth-sub002/internal/config"
	"github.com/vaqsi1990/cloth-sub002/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockProductRepo, *MockDiscountService) {
	cfg := &config.Config{SweepInterval: time.Hour}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := NewMockProductRepo(ctrl)
	discounts := NewMockDiscountService(ctrl)
	service := New(cfg, productRepo, discounts)
	return service, productRepo, discounts
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_sweep(t *testing.T) {
	tests := []struct {
		name         string
		products     []domain.Product
		fetchErr     error
		addTaskErr   error
		clearedCalls []int
	}{
		{
			name: "Sweeps each discounted product once",
			products: []domain.Product{
				{ID: 101},
				{ID: 102},
			},
			clearedCalls: []int{101, 102},
		},
		{
			name:     "Fetch failure skips the cycle",
			fetchErr: errors.New("database error"),
		},
		{
			name: "Worker pool rejection releases the in-flight mark",
			products: []domain.Product{
				{ID: 103},
			},
			addTaskErr: errors.New("failed to add task to worker pool"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := NewMockProductRepo(ctrl)
			discounts := NewMockDiscountService(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			productRepo.EXPECT().
				FindDiscounted(gomock.Any(), uint32(2)).
				Return(tt.products, tt.fetchErr).
				Times(1)

			if tt.fetchErr == nil {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, task Task) error {
						if tt.addTaskErr != nil {
							return tt.addTaskErr
						}
						return task()
					}).
					Times(len(tt.products))
			}
			for _, id := range tt.clearedCalls {
				discounts.EXPECT().CheckAndClear(gomock.Any(), id).Return(true, nil)
			}

			service := &Service{
				productRepo: productRepo,
				discounts:   discounts,
				workerPool:  workerPool,
				limit:       2,
			}

			service.sweep(context.Background())

			// A rejected or finished product must be sweepable again.
			for _, p := range tt.products {
				_, inFlight := sweepingProducts.Load(p.ID)
				assert.False(t, inFlight)
			}
		})
	}
}

func TestService_sweepSkipsInFlightProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := NewMockProductRepo(ctrl)
	discounts := NewMockDiscountService(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	sweepingProducts.Store(201, struct{}{})
	defer sweepingProducts.Delete(201)

	productRepo.EXPECT().
		FindDiscounted(gomock.Any(), uint32(10)).
		Return([]domain.Product{{ID: 201}, {ID: 202}}, nil)
	workerPool.EXPECT().
		AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, task Task) error {
			return task()
		}).
		Times(1)
	discounts.EXPECT().CheckAndClear(gomock.Any(), 202).Return(false, nil)

	service := &Service{
		productRepo: productRepo,
		discounts:   discounts,
		workerPool:  workerPool,
		limit:       10,
	}

	service.sweep(context.Background())
}
