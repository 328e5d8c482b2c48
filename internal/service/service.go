package service

import (
	adminhandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/admin"
	authhandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/auth"
	paymenthandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/payment"
	pricinghandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/pricing"

	"github.com/vaqsi1990/cloth-sub002/internal/config"
	"github.com/vaqsi1990/cloth-sub002/internal/repo"
	"github.com/vaqsi1990/cloth-sub002/internal/service/adminservice"
	"github.com/vaqsi1990/cloth-sub002/internal/service/authservice"
	"github.com/vaqsi1990/cloth-sub002/internal/service/discountservice"
	"github.com/vaqsi1990/cloth-sub002/internal/service/paymentservice"
	"github.com/vaqsi1990/cloth-sub002/internal/service/pricingservice"
	"github.com/vaqsi1990/cloth-sub002/internal/service/settlementservice"
	pkgauth "github.com/vaqsi1990/cloth-sub002/pkg/auth"
	"github.com/vaqsi1990/cloth-sub002/pkg/sign"
)

type Services struct {
	AuthService       authhandlers.Service
	PricingService    pricinghandlers.Service
	PaymentService    paymenthandlers.Service
	AdminService      adminhandlers.Service
	DiscountService   *discountservice.Service
	SettlementService *settlementservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, verifier *sign.Verifier) *Services {
	settlementService := settlementservice.New(
		repo.OrderRepo, repo.TransactionRepo, repo.ProductRepo, repo.UserRepo, cfg.BlockThreshold,
	)
	pricingService := pricingservice.New(repo.TierRepo, repo.ProductRepo)
	discountService := discountservice.New(repo.ProductRepo)
	paymentService := paymentservice.New(repo.OrderRepo, settlementService, verifier)
	adminService := adminservice.New(repo.UserRepo, repo.OrderRepo, settlementService)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		PricingService:    pricingService,
		PaymentService:    paymentService,
		AdminService:      adminService,
		DiscountService:   discountService,
		SettlementService: settlementService,
	}
}
