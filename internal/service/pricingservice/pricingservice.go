package pricingservice

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/pkg/auth"
)

type Repo interface {
	FindByProduct(ctx context.Context, productID int) ([]domain.RentalPriceTier, error)
	ReplaceForProduct(ctx context.Context, productID int, tiers []domain.RentalPriceTier) error
	DeleteForProduct(ctx context.Context, productID int) error
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type Service struct {
	repo        Repo
	productRepo ProductRepo
}

func New(repo Repo, productRepo ProductRepo) *Service {
	return &Service{
		repo:        repo,
		productRepo: productRepo,
	}
}

var (
	ErrNoTiers         = errors.New("no rental price tiers for product")
	ErrInvalidDuration = errors.New("rental duration must be at least one day")
	ErrInvalidTiers    = errors.New("invalid tier set")
	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("not allowed to manage tiers for this product")
)

// NoteFallbackTier marks quotes where the requested duration is below every
// tier and the minimum tier's rate was charged instead.
const NoteFallbackTier = "duration below minimum tier, base tier applied"

type PriceQuote struct {
	PricePerDay float64
	TotalPrice  float64
	Tier        domain.RentalPriceTier
	Note        string
}

// ResolvePrice picks the tier with the largest MinDays not exceeding days.
// When every tier requires more days than requested, the minimum tier is
// charged and the quote is annotated. The rate is flat for the whole
// duration, not graduated.
func ResolvePrice(tiers []domain.RentalPriceTier, days int) (*PriceQuote, error) {
	if days < 1 {
		return nil, ErrInvalidDuration
	}
	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}

	sorted := make([]domain.RentalPriceTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinDays > sorted[j].MinDays
	})

	for _, tier := range sorted {
		if tier.MinDays <= days {
			return &PriceQuote{
				PricePerDay: tier.PricePerDay,
				TotalPrice:  float64(days) * tier.PricePerDay,
				Tier:        tier,
			}, nil
		}
	}

	base := sorted[len(sorted)-1]
	return &PriceQuote{
		PricePerDay: base.PricePerDay,
		TotalPrice:  float64(days) * base.PricePerDay,
		Tier:        base,
		Note:        NoteFallbackTier,
	}, nil
}

func (s *Service) GetRentalPrice(ctx context.Context, productID, days int) (*PriceQuote, error) {
	if days < 1 {
		return nil, ErrInvalidDuration
	}
	tiers, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		zap.L().Error("failed to load tiers", zap.Int("productID", productID), zap.Error(err))
		return nil, err
	}
	return ResolvePrice(tiers, days)
}

// ListTiers returns the product's tier set ascending by MinDays. Storage
// order is not trusted.
func (s *Service) ListTiers(ctx context.Context, productID, userID int, role string) ([]domain.RentalPriceTier, error) {
	if err := s.authorize(ctx, productID, userID, role); err != nil {
		return nil, err
	}
	tiers, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].MinDays < tiers[j].MinDays
	})
	return tiers, nil
}

// ReplaceTiers validates the set and swaps it in with replace-all semantics.
func (s *Service) ReplaceTiers(ctx context.Context, productID, userID int, role string, tiers []domain.RentalPriceTier) error {
	if err := s.authorize(ctx, productID, userID, role); err != nil {
		return err
	}
	if len(tiers) == 0 {
		return ErrInvalidTiers
	}
	seen := make(map[int]struct{}, len(tiers))
	for _, tier := range tiers {
		if tier.MinDays < 1 || tier.PricePerDay <= 0 {
			return ErrInvalidTiers
		}
		if _, dup := seen[tier.MinDays]; dup {
			return ErrInvalidTiers
		}
		seen[tier.MinDays] = struct{}{}
	}

	if err := s.repo.ReplaceForProduct(ctx, productID, tiers); err != nil {
		zap.L().Error("failed to replace tiers", zap.Int("productID", productID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) DeleteTiers(ctx context.Context, productID, userID int, role string) error {
	if err := s.authorize(ctx, productID, userID, role); err != nil {
		return err
	}
	return s.repo.DeleteForProduct(ctx, productID)
}

func (s *Service) authorize(ctx context.Context, productID, userID int, role string) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if role != auth.RoleAdmin && product.UserID != userID {
		return ErrForbidden
	}
	return nil
}
