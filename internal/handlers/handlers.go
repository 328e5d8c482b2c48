package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vaqsi1990/cloth-sub002/docs"
	adminhandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/admin"
	authhandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/auth"
	paymenthandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/payment"
	pricinghandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/pricing"
	"github.com/vaqsi1990/cloth-sub002/internal/service"
	"github.com/vaqsi1990/cloth-sub002/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PricingHandler interface {
	GetRentalPrice(w http.ResponseWriter, r *http.Request)
	PostRentalPrice(w http.ResponseWriter, r *http.Request)
	ListTiers(w http.ResponseWriter, r *http.Request)
	ReplaceTiers(w http.ResponseWriter, r *http.Request)
	DeleteTiers(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	HandleCallback(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	UnblockSeller(w http.ResponseWriter, r *http.Request)
	SetOrderStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	PricingHandler PricingHandler
	PaymentHandler PaymentHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		PricingHandler: pricinghandlers.New(s.PricingService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		AdminHandler:   adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/payment-callback", h.PaymentHandler.HandleCallback)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Route("/products/{productID}", func(r chi.Router) {
		r.Get("/rental-price", h.PricingHandler.GetRentalPrice)
		r.Post("/rental-price", h.PricingHandler.PostRentalPrice)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/rental-prices", func(r chi.Router) {
				r.Get("/", h.PricingHandler.ListTiers)
				r.Post("/", h.PricingHandler.ReplaceTiers)
				r.Delete("/", h.PricingHandler.DeleteTiers)
			})
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.RequireAdmin)
		r.Post("/users/{userID}/unblock", h.AdminHandler.UnblockSeller)
		r.Post("/orders/{orderID}/status", h.AdminHandler.SetOrderStatus)
	})

	return r
}
