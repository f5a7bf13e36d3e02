package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/dto"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"github.com/GlebRadaev/coursehub/pkg/auth"
	"github.com/GlebRadaev/coursehub/pkg/utils"
)

var (
	student = domain.Principal{UserID: uuid.MustParse("0b7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"), Role: domain.RoleStudent}
	admin   = domain.Principal{UserID: uuid.MustParse("aa7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"), Role: domain.RoleAdmin}
)

func NewMock(t *testing.T) (http.Handler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Post("/api/payments", handler.CreatePayment)
	r.Get("/api/payments", handler.GetPayments)
	r.Get("/api/payments/{id}", handler.GetPayment)
	r.Patch("/api/admin/payments/{id}/status", handler.UpdateStatus)
	r.Get("/api/admin/payments/reference/{reference}", handler.GetByReference)
	return r, service
}

func newPayment(status domain.PaymentStatus) *domain.Payment {
	ts := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Payment{
		ID:        uuid.MustParse("6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01"),
		UserID:    student.UserID,
		CourseID:  uuid.MustParse("c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b"),
		Amount:    decimal.RequireFromString("49.9"),
		Status:    status,
		Method:    domain.MethodBankTransfer,
		Reference: "123456789015",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func serve(h http.Handler, p *domain.Principal, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if p != nil {
		req = req.WithContext(auth.WithPrincipal(req.Context(), *p))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreatePayment(t *testing.T) {
	handler, service := NewMock(t)
	courseID := "c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b"

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Payment created",
			body: `{"course_id":"` + courseID + `","method":"BANK_TRANSFER","transaction_note":"card *1234"}`,
			prepareMock: func() {
				service.EXPECT().CreatePayment(gomock.Any(), &student, courseID, "BANK_TRANSFER", "card *1234").
					Return(newPayment(domain.PaymentPending), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Course not published",
			body: `{"course_id":"` + courseID + `","method":"CARD"}`,
			prepareMock: func() {
				service.EXPECT().CreatePayment(gomock.Any(), &student, courseID, "CARD", "").
					Return(nil, apperr.InvalidErr("Course is not published"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Course is not published",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := serve(handler, &student, http.MethodPost, "/api/payments", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.PaymentResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "PENDING", resp.Status)
			assert.Equal(t, "49.90", resp.Amount)
			assert.Equal(t, "123456789015", resp.Reference)
		})
	}
}

func TestGetPayments(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Payments found",
			prepareMock: func() {
				service.EXPECT().ListUserPayments(gomock.Any(), &student).
					Return([]domain.Payment{*newPayment(domain.PaymentApproved), *newPayment(domain.PaymentPending)}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No payments",
			prepareMock: func() {
				service.EXPECT().ListUserPayments(gomock.Any(), &student).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().ListUserPayments(gomock.Any(), &student).Return(nil, apperr.Wrap(errors.New("db down")))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := serve(handler, &student, http.MethodGet, "/api/payments", "")

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.PaymentResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestGetPayment(t *testing.T) {
	handler, service := NewMock(t)
	id := "6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01"

	service.EXPECT().GetPayment(gomock.Any(), &student, id).Return(newPayment(domain.PaymentPending), nil)
	rr := serve(handler, &student, http.MethodGet, "/api/payments/"+id, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().GetPayment(gomock.Any(), &student, "missing").
		Return(nil, apperr.NotFoundErr("PAYMENT_NOT_FOUND", "Payment not found"))
	rr = serve(handler, &student, http.MethodGet, "/api/payments/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateStatus(t *testing.T) {
	handler, service := NewMock(t)
	id := "6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01"
	reason := "Duplicate charge"

	tests := []struct {
		name           string
		principal      *domain.Principal
		body           string
		prepareMock    func()
		expectedCode   int
		expectedError  string
		expectedStatus string
	}{
		{
			name:      "Approve",
			principal: &admin,
			body:      `{"status":"APPROVED"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, id, "APPROVED", (*string)(nil)).
					Return(newPayment(domain.PaymentApproved), nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "APPROVED",
		},
		{
			name:      "Refund with reason",
			principal: &admin,
			body:      `{"status":"REFUNDED","refund_reason":"Duplicate charge"}`,
			prepareMock: func() {
				p := newPayment(domain.PaymentRefunded)
				p.RefundReason = &reason
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, id, "REFUNDED", &reason).Return(p, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "REFUNDED",
		},
		{
			name:      "Refund without reason",
			principal: &admin,
			body:      `{"status":"REFUNDED"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, id, "REFUNDED", (*string)(nil)).
					Return(nil, apperr.InvalidErr("Refund reason is required when status is REFUNDED"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Refund reason is required when status is REFUNDED",
		},
		{
			name:      "Student is forbidden",
			principal: &student,
			body:      `{"status":"APPROVED"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), &student, id, "APPROVED", (*string)(nil)).
					Return(nil, apperr.ForbiddenErr("You do not have permission to perform this action"))
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "You do not have permission to perform this action",
		},
		{
			name:          "Invalid request body",
			principal:     &admin,
			body:          `status=APPROVED`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := serve(handler, tt.principal, http.MethodPatch, "/api/admin/payments/"+id+"/status", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.PaymentResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedStatus, resp.Status)
		})
	}
}

func TestGetByReference(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().FindByReference(gomock.Any(), &admin, "123456789015").Return(newPayment(domain.PaymentPending), nil)
	rr := serve(handler, &admin, http.MethodGet, "/api/admin/payments/reference/123456789015", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().FindByReference(gomock.Any(), &admin, "123456789012").
		Return(nil, apperr.InvalidErr("Invalid payment reference"))
	rr = serve(handler, &admin, http.MethodGet, "/api/admin/payments/reference/123456789012", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
