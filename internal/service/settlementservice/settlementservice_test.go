package settlementservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockTransactionRepo, *MockProductRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	orderRepo := NewMockOrderRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	productRepo := NewMockProductRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(orderRepo, transactionRepo, productRepo, userRepo, 2)
	defer ctrl.Finish()
	return service, orderRepo, transactionRepo, productRepo, userRepo
}

func intPtr(v int) *int { return &v }

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.SettlementItem
		expected []sellerGroup
	}{
		{
			name: "Groups by seller and type",
			items: []domain.SettlementItem{
				{ProductID: intPtr(1), SellerID: intPtr(10), IsRental: false, Price: 100, Quantity: 1},
				{ProductID: intPtr(2), SellerID: intPtr(10), IsRental: true, Price: 20, Quantity: 3},
				{ProductID: intPtr(3), SellerID: intPtr(20), IsRental: false, Price: 50, Quantity: 2},
			},
			expected: []sellerGroup{
				{sellerID: 10, txType: domain.TransactionTypeRent, total: 60},
				{sellerID: 10, txType: domain.TransactionTypeSale, total: 100},
				{sellerID: 20, txType: domain.TransactionTypeSale, total: 100},
			},
		},
		{
			name: "Same seller and type sums into one group",
			items: []domain.SettlementItem{
				{ProductID: intPtr(1), SellerID: intPtr(10), Price: 100, Quantity: 1},
				{ProductID: intPtr(2), SellerID: intPtr(10), Price: 40, Quantity: 2},
			},
			expected: []sellerGroup{
				{sellerID: 10, txType: domain.TransactionTypeSale, total: 180},
			},
		},
		{
			name: "Detached and worthless items are dropped",
			items: []domain.SettlementItem{
				{ProductID: intPtr(1), SellerID: nil, Price: 100, Quantity: 1},
				{ProductID: intPtr(2), SellerID: intPtr(10), Price: 0, Quantity: 5},
				{ProductID: intPtr(3), SellerID: intPtr(10), Price: 100, Quantity: 0},
			},
			expected: []sellerGroup{},
		},
		{
			name:     "No items",
			items:    nil,
			expected: []sellerGroup{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregate(tt.items))
		})
	}
}

func TestSettle(t *testing.T) {
	service, orderRepo, transactionRepo, productRepo, userRepo := NewMock(t)

	order := &domain.Order{ID: 1, UserID: 5}
	items := []domain.SettlementItem{
		{ProductID: intPtr(100), SellerID: intPtr(10), IsRental: false, Price: 100, Quantity: 1},
		{ProductID: intPtr(101), SellerID: intPtr(10), IsRental: true, Price: 20, Quantity: 3},
		{ProductID: intPtr(102), SellerID: intPtr(20), IsRental: false, Price: 50, Quantity: 2},
	}
	verified := func(id int) *domain.User { return &domain.User{ID: id, Verified: true} }

	orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	transactionRepo.EXPECT().DeleteByOrderAndUser(gomock.Any(), 1, 5).Return(nil)
	orderRepo.EXPECT().FindItemsForSettlement(gomock.Any(), 1).Return(items, nil)

	created := make([]domain.Transaction, 0, 3)
	transactionRepo.EXPECT().Exists(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.Transaction) error {
			created = append(created, *tx)
			return nil
		}).Times(3)
	userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(verified(10), nil).Times(2)
	userRepo.EXPECT().FindByID(gomock.Any(), 20).Return(verified(20), nil)
	productRepo.EXPECT().RemoveFromCirculation(gomock.Any(), 100).Return(true, nil)
	productRepo.EXPECT().RemoveFromCirculation(gomock.Any(), 102).Return(true, nil)

	err := service.Settle(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Transaction{
		{OrderID: 1, UserID: 10, Type: domain.TransactionTypeRent, Total: 60},
		{OrderID: 1, UserID: 10, Type: domain.TransactionTypeSale, Total: 100},
		{OrderID: 1, UserID: 20, Type: domain.TransactionTypeSale, Total: 100},
	}, created)
}

func TestSettleIsIdempotent(t *testing.T) {
	service, orderRepo, transactionRepo, productRepo, userRepo := NewMock(t)

	order := &domain.Order{ID: 1, UserID: 5}
	items := []domain.SettlementItem{
		{ProductID: intPtr(100), SellerID: intPtr(10), IsRental: false, Price: 100, Quantity: 1},
	}

	orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil).Times(2)
	transactionRepo.EXPECT().DeleteByOrderAndUser(gomock.Any(), 1, 5).Return(nil).Times(2)
	orderRepo.EXPECT().FindItemsForSettlement(gomock.Any(), 1).Return(items, nil).Times(2)
	productRepo.EXPECT().RemoveFromCirculation(gomock.Any(), 100).Return(true, nil)
	productRepo.EXPECT().RemoveFromCirculation(gomock.Any(), 100).Return(false, nil)

	// First run writes the seller transaction.
	transactionRepo.EXPECT().Exists(gomock.Any(), 1, 10, domain.TransactionTypeSale).Return(false, nil)
	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.User{ID: 10, Verified: true}, nil)

	// Second run finds it and must not write again.
	transactionRepo.EXPECT().Exists(gomock.Any(), 1, 10, domain.TransactionTypeSale).Return(true, nil)

	assert.NoError(t, service.Settle(context.Background(), 1))
	assert.NoError(t, service.Settle(context.Background(), 1))
}

func TestSettleTreatsConstraintViolationAsDuplicate(t *testing.T) {
	service, orderRepo, transactionRepo, _, _ := NewMock(t)

	order := &domain.Order{ID: 1, UserID: 5}
	items := []domain.SettlementItem{
		{ProductID: intPtr(100), SellerID: intPtr(10), IsRental: true, Price: 30, Quantity: 1},
	}

	orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	transactionRepo.EXPECT().DeleteByOrderAndUser(gomock.Any(), 1, 5).Return(nil)
	orderRepo.EXPECT().FindItemsForSettlement(gomock.Any(), 1).Return(items, nil)
	transactionRepo.EXPECT().Exists(gomock.Any(), 1, 10, domain.TransactionTypeRent).Return(false, nil)
	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateTransaction)

	err := service.Settle(context.Background(), 1)
	assert.NoError(t, err)
}

func TestSettleUnknownOrder(t *testing.T) {
	service, orderRepo, _, _, _ := NewMock(t)

	orderRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)

	err := service.Settle(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSettleProductRemovalFailureIsIsolated(t *testing.T) {
	service, orderRepo, transactionRepo, productRepo, userRepo := NewMock(t)

	order := &domain.Order{ID: 1, UserID: 5}
	items := []domain.SettlementItem{
		{ProductID: intPtr(100), SellerID: intPtr(10), IsRental: false, Price: 100, Quantity: 1},
		{ProductID: intPtr(101), SellerID: intPtr(10), IsRental: false, Price: 100, Quantity: 1},
		{ProductID: intPtr(102), SellerID: intPtr(10), IsRental: true, Price: 10, Quantity: 1},
	}

	orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	transactionRepo.EXPECT().DeleteByOrderAndUser(gomock.Any(), 1, 5).Return(nil)
	orderRepo.EXPECT().FindItemsForSettlement(gomock.Any(), 1).Return(items, nil)
	transactionRepo.EXPECT().Exists(gomock.Any(), 1, 10, gomock.Any()).Return(false, nil).Times(2)
	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.User{ID: 10, Verified: true}, nil).Times(2)

	// First removal fails; the second still happens. The rental stays listed.
	productRepo.EXPECT().RemoveFromCirculation(gomock.Any(), 100).Return(false, errors.New("db error"))
	productRepo.EXPECT().RemoveFromCirculation(gomock.Any(), 101).Return(true, nil)

	err := service.Settle(context.Background(), 1)
	assert.NoError(t, err)
}

func TestCheckAndBlock(t *testing.T) {
	service, _, transactionRepo, productRepo, userRepo := NewMock(t)

	unverified := func() *domain.User { return &domain.User{ID: 10} }

	tests := []struct {
		name          string
		prepareMock   func()
		expectBlocked bool
		expectErr     bool
	}{
		{
			name: "Revenue at threshold blocks the seller",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(unverified(), nil)
				userRepo.EXPECT().FindVerification(gomock.Any(), 10).Return(nil, nil)
				productRepo.EXPECT().CountByUser(gomock.Any(), 10).Return(3, nil)
				transactionRepo.EXPECT().SumByUser(gomock.Any(), 10).Return(2.0, nil)
				userRepo.EXPECT().SetBlocked(gomock.Any(), 10, true).Return(nil)
			},
			expectBlocked: true,
		},
		{
			name: "Revenue below threshold",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(unverified(), nil)
				userRepo.EXPECT().FindVerification(gomock.Any(), 10).Return(nil, nil)
				productRepo.EXPECT().CountByUser(gomock.Any(), 10).Return(3, nil)
				transactionRepo.EXPECT().SumByUser(gomock.Any(), 10).Return(1.5, nil)
			},
			expectBlocked: false,
		},
		{
			name: "Already blocked seller is never re-evaluated",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.User{ID: 10, Blocked: true}, nil)
			},
			expectBlocked: false,
		},
		{
			name: "Verified seller exempt",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.User{ID: 10, Verified: true}, nil)
			},
			expectBlocked: false,
		},
		{
			name: "Approved entrepreneur exempt",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(unverified(), nil)
				userRepo.EXPECT().FindVerification(gomock.Any(), 10).Return(
					&domain.Verification{UserID: 10, EntrepreneurStatus: domain.EntrepreneurStatusApproved}, nil)
			},
			expectBlocked: false,
		},
		{
			name: "Pending entrepreneur status does not exempt",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(unverified(), nil)
				userRepo.EXPECT().FindVerification(gomock.Any(), 10).Return(
					&domain.Verification{UserID: 10, EntrepreneurStatus: domain.EntrepreneurStatusPending}, nil)
				productRepo.EXPECT().CountByUser(gomock.Any(), 10).Return(1, nil)
				transactionRepo.EXPECT().SumByUser(gomock.Any(), 10).Return(10.0, nil)
				userRepo.EXPECT().SetBlocked(gomock.Any(), 10, true).Return(nil)
			},
			expectBlocked: true,
		},
		{
			name: "Seller without products skipped",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(unverified(), nil)
				userRepo.EXPECT().FindVerification(gomock.Any(), 10).Return(nil, nil)
				productRepo.EXPECT().CountByUser(gomock.Any(), 10).Return(0, nil)
			},
			expectBlocked: false,
		},
		{
			name: "Unknown seller",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, nil)
			},
			expectBlocked: false,
		},
		{
			name: "Persist failure surfaces",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 10).Return(unverified(), nil)
				userRepo.EXPECT().FindVerification(gomock.Any(), 10).Return(nil, nil)
				productRepo.EXPECT().CountByUser(gomock.Any(), 10).Return(1, nil)
				transactionRepo.EXPECT().SumByUser(gomock.Any(), 10).Return(5.0, nil)
				userRepo.EXPECT().SetBlocked(gomock.Any(), 10, true).Return(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			blocked, err := service.CheckAndBlock(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectBlocked, blocked)
		})
	}
}
