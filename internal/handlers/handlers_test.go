package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/GlebRadaev/coursehub/docs"
	"github.com/GlebRadaev/coursehub/internal/handlers/auth"
	"github.com/GlebRadaev/coursehub/internal/handlers/courses"
	"github.com/GlebRadaev/coursehub/internal/handlers/enrollments"
	"github.com/GlebRadaev/coursehub/internal/handlers/payments"
	"github.com/GlebRadaev/coursehub/internal/service"
	pkgauth "github.com/GlebRadaev/coursehub/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       auth.NewMockService(ctrl),
		PaymentService:    payments.NewMockService(ctrl),
		EnrollmentService: enrollments.NewMockService(ctrl),
		CourseService:     courses.NewMockService(ctrl),
		TokenValidator:    pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.GraphQL)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockEnrollmentHandler := NewMockEnrollmentHandler(ctrl)
	mockCourseHandler := NewMockCourseHandler(ctrl)
	validator := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCourseHandler.EXPECT().GetCourse(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetPayments(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()

	validator.EXPECT().ValidateToken("valid").
		Return(&pkgauth.Claims{UserID: "0b7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4", Role: "admin"}, nil).AnyTimes()

	var graphPrincipal bool
	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		PaymentHandler:    mockPaymentHandler,
		EnrollmentHandler: mockEnrollmentHandler,
		CourseHandler:     mockCourseHandler,
		GraphQL: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			graphPrincipal = pkgauth.PrincipalFromContext(r.Context()) != nil
		}),
		validator: validator,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"GET", "/api/courses/c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b", "", http.StatusOK},
		{"POST", "/api/courses", "", http.StatusUnauthorized},
		{"POST", "/api/courses/c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b/publish", "", http.StatusUnauthorized},
		{"POST", "/api/courses/c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b/sections", "", http.StatusUnauthorized},
		{"POST", "/api/courses/c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b/lessons/d3a8f1b2-6c7e-4f90-b1c2-2d3e4f5a6b7c/complete", "", http.StatusUnauthorized},
		{"POST", "/api/sections/5ec7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b/lessons", "", http.StatusUnauthorized},
		{"POST", "/api/payments", "", http.StatusUnauthorized},
		{"GET", "/api/payments", "", http.StatusUnauthorized},
		{"GET", "/api/payments", "valid", http.StatusOK},
		{"GET", "/api/payments/6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01", "", http.StatusUnauthorized},
		{"GET", "/api/enrollments", "", http.StatusUnauthorized},
		{"PATCH", "/api/admin/payments/6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01/status", "", http.StatusUnauthorized},
		{"PATCH", "/api/admin/payments/6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01/status", "valid", http.StatusOK},
		{"GET", "/api/admin/payments/reference/123456789015", "", http.StatusUnauthorized},
		{"POST", "/api/admin/enrollments", "", http.StatusUnauthorized},
		{"DELETE", "/api/admin/enrollments/e1b2c3d4-0000-4000-8000-000000000001", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("GraphQL is reachable anonymously", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ myPayments { id } }"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, graphPrincipal)
	})

	t.Run("GraphQL receives the principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ myPayments { id } }"}`))
		req.Header.Set("Authorization", "Bearer valid")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, graphPrincipal)
	})
}
