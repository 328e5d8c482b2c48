package settlementservice

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindItemsForSettlement(ctx context.Context, orderID int) ([]domain.SettlementItem, error)
}

type TransactionRepo interface {
	DeleteByOrderAndUser(ctx context.Context, orderID, userID int) error
	Exists(ctx context.Context, orderID, userID int, txType string) (bool, error)
	Create(ctx context.Context, t *domain.Transaction) error
	SumByUser(ctx context.Context, userID int) (float64, error)
}

type ProductRepo interface {
	CountByUser(ctx context.Context, userID int) (int, error)
	RemoveFromCirculation(ctx context.Context, productID int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindVerification(ctx context.Context, userID int) (*domain.Verification, error)
	SetBlocked(ctx context.Context, userID int, blocked bool) error
}

type Service struct {
	orderRepo       OrderRepo
	transactionRepo TransactionRepo
	productRepo     ProductRepo
	userRepo        UserRepo
	blockThreshold  float64
}

func New(orderRepo OrderRepo, transactionRepo TransactionRepo, productRepo ProductRepo, userRepo UserRepo, blockThreshold float64) *Service {
	return &Service{
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
		blockThreshold:  blockThreshold,
	}
}

var ErrOrderNotFound = errors.New("order not found")

type sellerGroup struct {
	sellerID int
	txType   string
	total    float64
}

// aggregate groups items by (seller, SALE|RENT) and sums price*quantity per
// group, dropping detached items and non-positive totals. Groups come back
// sorted so settlement runs are reproducible.
func aggregate(items []domain.SettlementItem) []sellerGroup {
	type key struct {
		sellerID int
		txType   string
	}
	totals := make(map[key]float64)
	for _, item := range items {
		if item.SellerID == nil {
			continue
		}
		total := item.Price * float64(item.Quantity)
		if total <= 0 {
			continue
		}
		txType := domain.TransactionTypeSale
		if item.IsRental {
			txType = domain.TransactionTypeRent
		}
		totals[key{sellerID: *item.SellerID, txType: txType}] += total
	}

	groups := make([]sellerGroup, 0, len(totals))
	for k, total := range totals {
		groups = append(groups, sellerGroup{sellerID: k.sellerID, txType: k.txType, total: total})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].sellerID != groups[j].sellerID {
			return groups[i].sellerID < groups[j].sellerID
		}
		return groups[i].txType < groups[j].txType
	})
	return groups
}

// Settle records seller ledger transactions for a freshly paid order. It is
// re-runnable: buyer-side transactions are deleted before recomputation and
// each seller write is guarded by an existence check, with the storage unique
// constraint as the fallback for concurrent runs. Sold non-rental products
// are removed from circulation afterwards.
func (s *Service) Settle(ctx context.Context, orderID int) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	// Must complete before any new transaction is recorded, so a
	// half-applied previous run cannot coexist with this one.
	if err := s.transactionRepo.DeleteByOrderAndUser(ctx, orderID, order.UserID); err != nil {
		return err
	}

	items, err := s.orderRepo.FindItemsForSettlement(ctx, orderID)
	if err != nil {
		return err
	}

	for _, group := range aggregate(items) {
		exists, err := s.transactionRepo.Exists(ctx, orderID, group.sellerID, group.txType)
		if err != nil {
			return err
		}
		if exists {
			zap.L().Info("seller transaction already recorded, skipping",
				zap.Int("orderID", orderID), zap.Int("sellerID", group.sellerID), zap.String("type", group.txType))
			continue
		}

		err = s.transactionRepo.Create(ctx, &domain.Transaction{
			OrderID: orderID,
			UserID:  group.sellerID,
			Type:    group.txType,
			Total:   group.total,
		})
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			zap.L().Info("concurrent settlement recorded this transaction first, skipping",
				zap.Int("orderID", orderID), zap.Int("sellerID", group.sellerID), zap.String("type", group.txType))
			continue
		}
		if err != nil {
			return err
		}

		if _, err := s.CheckAndBlock(ctx, group.sellerID); err != nil {
			zap.L().Error("blocking policy check failed", zap.Int("sellerID", group.sellerID), zap.Error(err))
		}
	}

	s.removeSoldProducts(ctx, orderID, items)
	return nil
}

// removeSoldProducts takes sold (non-rental) listings out of circulation.
// One product's failure must not abort removal of siblings.
func (s *Service) removeSoldProducts(ctx context.Context, orderID int, items []domain.SettlementItem) {
	seen := make(map[int]struct{})
	for _, item := range items {
		if item.IsRental || item.ProductID == nil {
			continue
		}
		productID := *item.ProductID
		if _, done := seen[productID]; done {
			continue
		}
		seen[productID] = struct{}{}

		removed, err := s.productRepo.RemoveFromCirculation(ctx, productID)
		if err != nil {
			zap.L().Error("failed to remove sold product",
				zap.Int("orderID", orderID), zap.Int("productID", productID), zap.Error(err))
			continue
		}
		if !removed {
			zap.L().Info("sold product already removed", zap.Int("productID", productID))
		}
	}
}

// CheckAndBlock flips an unverified seller into the blocked state once their
// cumulative ledger revenue reaches the threshold. One-way latch: an already
// blocked seller is never re-evaluated. The threshold is an anti-fraud
// tripwire forcing sellers with real revenue through identity verification.
func (s *Service) CheckAndBlock(ctx context.Context, sellerID int) (bool, error) {
	seller, err := s.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		return false, err
	}
	if seller == nil || seller.Blocked || seller.Verified {
		return false, nil
	}

	verification, err := s.userRepo.FindVerification(ctx, sellerID)
	if err != nil {
		return false, err
	}
	if verification != nil && verification.EntrepreneurStatus == domain.EntrepreneurStatusApproved {
		return false, nil
	}

	productCount, err := s.productRepo.CountByUser(ctx, sellerID)
	if err != nil {
		return false, err
	}
	if productCount == 0 {
		return false, nil
	}

	revenue, err := s.transactionRepo.SumByUser(ctx, sellerID)
	if err != nil {
		return false, err
	}
	if revenue < s.blockThreshold {
		return false, nil
	}

	if err := s.userRepo.SetBlocked(ctx, sellerID, true); err != nil {
		return false, err
	}
	zap.L().Warn("unverified seller blocked by revenue threshold",
		zap.Int("sellerID", sellerID), zap.Float64("revenue", revenue), zap.Float64("threshold", s.blockThreshold))
	return true, nil
}
