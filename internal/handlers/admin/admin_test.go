package admin

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/internal/service/adminservice"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func requestWithParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUnblockSellerHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful unblock",
			userID: "10",
			prepareMock: func() {
				service.EXPECT().UnblockSeller(gomock.Any(), 10).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid user id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Unknown user",
			userID: "10",
			prepareMock: func() {
				service.EXPECT().UnblockSeller(gomock.Any(), 10).Return(adminservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/admin/users/"+tt.userID+"/unblock", nil)
			r = requestWithParam(r, "userID", tt.userID)
			w := httptest.NewRecorder()

			handler.UnblockSeller(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSetOrderStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		orderID      string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful status change",
			orderID: "1",
			body:    `{"status":"PAID"}`,
			prepareMock: func() {
				service.EXPECT().SetOrderStatus(gomock.Any(), 1, domain.OrderStatusPaid).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid order id",
			orderID:      "abc",
			body:         `{"status":"PAID"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			orderID:      "1",
			body:         `{"status":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Invalid status",
			orderID: "1",
			body:    `{"status":"ARCHIVED"}`,
			prepareMock: func() {
				service.EXPECT().SetOrderStatus(gomock.Any(), 1, "ARCHIVED").Return(adminservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Unknown order",
			orderID: "1",
			body:    `{"status":"PAID"}`,
			prepareMock: func() {
				service.EXPECT().SetOrderStatus(gomock.Any(), 1, domain.OrderStatusPaid).Return(adminservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/admin/orders/"+tt.orderID+"/status", bytes.NewBufferString(tt.body))
			r = requestWithParam(r, "orderID", tt.orderID)
			w := httptest.NewRecorder()

			handler.SetOrderStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
