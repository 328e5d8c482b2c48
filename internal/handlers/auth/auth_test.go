package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	pkgauth "github.com/vaqsi1990/cloth-sub002/pkg/auth"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"login":"testuser","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "testuser", "testpassword").
					Return(&domain.User{ID: 1, Login: "testuser", Role: pkgauth.RoleUser}, nil)
				service.EXPECT().GenerateToken(1, pkgauth.RoleUser).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Invalid request body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User already exists",
			body: `{"login":"testuser","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "testuser", "testpassword").
					Return(nil, errors.New("username already taken"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Token generation failure",
			body: `{"login":"testuser","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "testuser", "testpassword").
					Return(&domain.User{ID: 1, Login: "testuser", Role: pkgauth.RoleUser}, nil)
				service.EXPECT().GenerateToken(1, pkgauth.RoleUser).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"login":"testuser","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "testpassword").
					Return(&domain.User{ID: 1, Login: "testuser", Role: pkgauth.RoleUser}, nil)
				service.EXPECT().GenerateToken(1, pkgauth.RoleUser).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Invalid request body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testuser","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "wrongpassword").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}
