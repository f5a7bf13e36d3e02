package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"github.com/GlebRadaev/coursehub/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: uuid.New(), Login: "newuser", PasswordHash: "hashedpassword", Role: domain.RoleStudent}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "User already exists",
			body: `{"login":"existinguser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existinguser", "password123").
					Return(nil, apperr.ConflictErr("LOGIN_TAKEN", "Username already taken"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username already taken",
		},
		{
			name: "Missing password",
			body: `{"login":"newuser"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "").
					Return(nil, apperr.InvalidErr("Login and password are required"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Login and password are required",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedToken, rec.Header().Get("Authorization"))
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: uuid.New(), Login: "user", Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"user","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "user", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"user","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "user", "wrong").
					Return(nil, apperr.UnauthenticatedErr("Invalid login or password"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `not json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedError)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rec.Header().Get("Authorization"))
			}
		})
	}
}
