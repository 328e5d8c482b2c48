package adminservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetBlocked(ctx context.Context, userID int, blocked bool) error
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
}

type Settlement interface {
	Settle(ctx context.Context, orderID int) error
}

type Service struct {
	userRepo   UserRepo
	orderRepo  OrderRepo
	settlement Settlement
}

func New(userRepo UserRepo, orderRepo OrderRepo, settlement Settlement) *Service {
	return &Service{
		userRepo:   userRepo,
		orderRepo:  orderRepo,
		settlement: settlement,
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

var validStatuses = map[string]struct{}{
	domain.OrderStatusPending:  {},
	domain.OrderStatusPaid:     {},
	domain.OrderStatusShipped:  {},
	domain.OrderStatusCanceled: {},
	domain.OrderStatusRefunded: {},
}

// UnblockSeller releases the revenue-threshold latch manually.
func (s *Service) UnblockSeller(ctx context.Context, userID int) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.Blocked {
		return nil
	}
	if err := s.userRepo.SetBlocked(ctx, userID, false); err != nil {
		return err
	}
	zap.L().Info("seller unblocked by admin", zap.Int("userID", userID))
	return nil
}

// SetOrderStatus is the admin-side order mutation path. Like the payment
// callback, moving an order to PAID triggers settlement.
func (s *Service) SetOrderStatus(ctx context.Context, orderID int, status string) error {
	if _, ok := validStatuses[status]; !ok {
		return ErrInvalidStatus
	}
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	zap.L().Info("order status set by admin", zap.Int("orderID", orderID), zap.String("status", status))

	if status == domain.OrderStatusPaid {
		return s.settlement.Settle(ctx, orderID)
	}
	return nil
}
