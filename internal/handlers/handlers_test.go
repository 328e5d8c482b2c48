package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/vaqsi1990/cloth-sub002/docs"
	adminhandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/admin"
	authhandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/auth"
	paymenthandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/payment"
	pricinghandlers "github.com/vaqsi1990/cloth-sub002/internal/handlers/pricing"
	"github.com/vaqsi1990/cloth-sub002/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		PricingService: pricinghandlers.NewMockService(ctrl),
		PaymentService: paymenthandlers.NewMockService(ctrl),
		AdminService:   adminhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPricingHandler := NewMockPricingHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().GetRentalPrice(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().PostRentalPrice(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().ListTiers(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().ReplaceTiers(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().DeleteTiers(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().UnblockSeller(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().SetOrderStatus(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		PricingHandler: mockPricingHandler,
		PaymentHandler: mockPaymentHandler,
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/payment-callback", http.StatusOK},
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/products/1/rental-price", http.StatusOK},
		{"POST", "/products/1/rental-price", http.StatusOK},
		{"GET", "/products/1/rental-prices/", http.StatusUnauthorized},
		{"POST", "/products/1/rental-prices/", http.StatusUnauthorized},
		{"DELETE", "/products/1/rental-prices/", http.StatusUnauthorized},
		{"POST", "/admin/users/5/unblock", http.StatusUnauthorized},
		{"POST", "/admin/orders/7/status", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
