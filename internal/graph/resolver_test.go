package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/pkg/apperr"
	"github.com/GlebRadaev/coursehub/pkg/auth"
)

var (
	student = domain.Principal{UserID: uuid.MustParse("0b7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"), Role: domain.RoleStudent}
	admin   = domain.Principal{UserID: uuid.MustParse("aa7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"), Role: domain.RoleAdmin}

	paymentID = uuid.MustParse("6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01")
	courseID  = uuid.MustParse("c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b")
	lessonID  = uuid.MustParse("d3a8f1b2-6c7e-4f90-b1c2-2d3e4f5a6b7c")
)

const updateStatusMutation = `
mutation($id: ID!, $status: PaymentStatus!, $reason: String) {
  updatePaymentStatus(id: $id, status: $status, refundReason: $reason) {
    id
    status
    amount
    refundReason
  }
}`

func NewMock(t *testing.T) (*graphql.Schema, *MockPaymentService, *MockEnrollmentService) {
	ctrl := gomock.NewController(t)
	payments := NewMockPaymentService(ctrl)
	enrollments := NewMockEnrollmentService(ctrl)
	return NewSchema(payments, enrollments), payments, enrollments
}

func newPayment(status domain.PaymentStatus) *domain.Payment {
	ts := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Payment{
		ID:        paymentID,
		UserID:    student.UserID,
		CourseID:  courseID,
		Amount:    decimal.RequireFromString("49.9"),
		Status:    status,
		Method:    domain.MethodBankTransfer,
		Reference: "123456789015",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func newEnrollment() *domain.Enrollment {
	ts := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	expiry := ts.AddDate(0, 1, 0)
	return &domain.Enrollment{
		ID:         uuid.MustParse("e1b2c3d4-0000-4000-8000-000000000001"),
		UserID:     student.UserID,
		CourseID:   courseID,
		Status:     domain.EnrollmentActive,
		ExpiryDate: &expiry,
		History:    []domain.HistoryEntry{{Status: domain.EnrollmentActive, Timestamp: ts}},
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}

func asPrincipal(p *domain.Principal) context.Context {
	if p == nil {
		return context.Background()
	}
	return auth.WithPrincipal(context.Background(), *p)
}

func TestUpdatePaymentStatus(t *testing.T) {
	schema, payments, _ := NewMock(t)
	reason := "Duplicate charge"

	tests := []struct {
		name            string
		principal       *domain.Principal
		variables       map[string]interface{}
		prepareMock     func()
		expectedData    string
		expectedCode    string
		expectedMessage string
	}{
		{
			name:      "Approve",
			principal: &admin,
			variables: map[string]interface{}{"id": paymentID.String(), "status": "APPROVED"},
			prepareMock: func() {
				payments.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, paymentID.String(), "APPROVED", (*string)(nil)).
					Return(newPayment(domain.PaymentApproved), nil)
			},
			expectedData: `{"updatePaymentStatus":{"id":"` + paymentID.String() + `","status":"APPROVED","amount":"49.90","refundReason":null}}`,
		},
		{
			name:      "Refund stores reason",
			principal: &admin,
			variables: map[string]interface{}{"id": paymentID.String(), "status": "REFUNDED", "reason": reason},
			prepareMock: func() {
				p := newPayment(domain.PaymentRefunded)
				p.RefundReason = &reason
				payments.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, paymentID.String(), "REFUNDED", &reason).Return(p, nil)
			},
			expectedData: `{"updatePaymentStatus":{"id":"` + paymentID.String() + `","status":"REFUNDED","amount":"49.90","refundReason":"Duplicate charge"}}`,
		},
		{
			name:      "Refund without reason",
			principal: &admin,
			variables: map[string]interface{}{"id": paymentID.String(), "status": "REFUNDED"},
			prepareMock: func() {
				payments.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, paymentID.String(), "REFUNDED", (*string)(nil)).
					Return(nil, apperr.InvalidErr("Refund reason is required when status is REFUNDED"))
			},
			expectedCode:    apperr.CodeBadUserInput,
			expectedMessage: "Refund reason is required when status is REFUNDED",
		},
		{
			name:      "Unknown payment",
			principal: &admin,
			variables: map[string]interface{}{"id": "unknown", "status": "FAILED"},
			prepareMock: func() {
				payments.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, "unknown", "FAILED", (*string)(nil)).
					Return(nil, apperr.NotFoundErr("PAYMENT_NOT_FOUND", "Payment not found"))
			},
			expectedCode:    "PAYMENT_NOT_FOUND",
			expectedMessage: "Payment not found",
		},
		{
			name:      "Anonymous caller",
			principal: nil,
			variables: map[string]interface{}{"id": paymentID.String(), "status": "APPROVED"},
			prepareMock: func() {
				payments.EXPECT().UpdatePaymentStatus(gomock.Any(), (*domain.Principal)(nil), paymentID.String(), "APPROVED", (*string)(nil)).
					Return(nil, apperr.UnauthenticatedErr("Authentication required"))
			},
			expectedCode:    apperr.CodeUnauthenticated,
			expectedMessage: "Authentication required",
		},
		{
			name:      "Student caller",
			principal: &student,
			variables: map[string]interface{}{"id": paymentID.String(), "status": "APPROVED"},
			prepareMock: func() {
				payments.EXPECT().UpdatePaymentStatus(gomock.Any(), &student, paymentID.String(), "APPROVED", (*string)(nil)).
					Return(nil, apperr.ForbiddenErr("You do not have permission to perform this action"))
			},
			expectedCode:    apperr.CodeForbidden,
			expectedMessage: "You do not have permission to perform this action",
		},
		{
			name:      "Unexpected failure is hidden",
			principal: &admin,
			variables: map[string]interface{}{"id": paymentID.String(), "status": "APPROVED"},
			prepareMock: func() {
				payments.EXPECT().UpdatePaymentStatus(gomock.Any(), &admin, paymentID.String(), "APPROVED", (*string)(nil)).
					Return(nil, errors.New("connection reset by peer"))
			},
			expectedCode:    apperr.CodeInternal,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			resp := schema.Exec(asPrincipal(tt.principal), updateStatusMutation, "", tt.variables)

			if tt.expectedCode == "" {
				require.Empty(t, resp.Errors)
				assert.JSONEq(t, tt.expectedData, string(resp.Data))
				return
			}
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.expectedMessage, resp.Errors[0].Message)
			assert.Equal(t, tt.expectedCode, resp.Errors[0].Extensions["code"])
		})
	}
}

func TestUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	schema, _, _ := NewMock(t)

	resp := schema.Exec(asPrincipal(&admin),
		`mutation { updatePaymentStatus(id: "`+paymentID.String()+`", status: DONE) { id } }`, "", nil)
	require.NotEmpty(t, resp.Errors)
	assert.Nil(t, resp.Errors[0].Extensions)
}

func TestCreatePayment(t *testing.T) {
	schema, payments, _ := NewMock(t)

	payments.EXPECT().CreatePayment(gomock.Any(), &student, courseID.String(), "BANK_TRANSFER", "").
		Return(newPayment(domain.PaymentPending), nil)

	resp := schema.Exec(asPrincipal(&student), `
mutation($course: ID!) {
  createPayment(courseId: $course, method: BANK_TRANSFER) { status reference transactionNote }
}`, "", map[string]interface{}{"course": courseID.String()})

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"createPayment":{"status":"PENDING","reference":"123456789015","transactionNote":null}}`, string(resp.Data))
}

func TestPaymentQueries(t *testing.T) {
	schema, payments, _ := NewMock(t)

	payments.EXPECT().GetPayment(gomock.Any(), &student, paymentID.String()).Return(newPayment(domain.PaymentPending), nil)
	resp := schema.Exec(asPrincipal(&student), `query($id: ID!) { payment(id: $id) { id createdAt } }`, "",
		map[string]interface{}{"id": paymentID.String()})
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"payment":{"id":"`+paymentID.String()+`","createdAt":"2023-06-15T10:00:00Z"}}`, string(resp.Data))

	payments.EXPECT().ListUserPayments(gomock.Any(), &student).
		Return([]domain.Payment{*newPayment(domain.PaymentApproved), *newPayment(domain.PaymentFailed)}, nil)
	resp = schema.Exec(asPrincipal(&student), `{ myPayments { status } }`, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"myPayments":[{"status":"APPROVED"},{"status":"FAILED"}]}`, string(resp.Data))
}

func TestEnrollments(t *testing.T) {
	schema, _, enrollments := NewMock(t)

	enrollments.EXPECT().GetUserEnrollments(gomock.Any(), &student).Return([]domain.Enrollment{*newEnrollment()}, nil)
	resp := schema.Exec(asPrincipal(&student), `{ myEnrollments { status expiryDate lastAccessedAt completedLessons history { status progress } } }`, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"myEnrollments":[{"status":"ACTIVE","expiryDate":"2023-07-15T00:00:00Z","lastAccessedAt":null,"completedLessons":[],"history":[{"status":"ACTIVE","progress":0}]}]}`,
		string(resp.Data))

	enrollments.EXPECT().CreateEnrollment(gomock.Any(), &admin, student.UserID.String(), courseID.String()).
		Return(nil, apperr.ConflictErr("DUPLICATE_ENROLLMENT", "User is already enrolled in this course"))
	resp = schema.Exec(asPrincipal(&admin), `mutation($u: ID!, $c: ID!) { createEnrollment(userId: $u, courseId: $c) { id } }`, "",
		map[string]interface{}{"u": student.UserID.String(), "c": courseID.String()})
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "DUPLICATE_ENROLLMENT", resp.Errors[0].Extensions["code"])

	done := newEnrollment()
	done.CompletedLessons = []uuid.UUID{lessonID}
	done.Progress = 100
	done.Status = domain.EnrollmentCompleted
	enrollments.EXPECT().CompleteLesson(gomock.Any(), &student, courseID.String(), lessonID.String()).Return(done, nil)
	resp = schema.Exec(asPrincipal(&student), `mutation($c: ID!, $l: ID!) { completeLesson(courseId: $c, lessonId: $l) { status progress completedLessons } }`, "",
		map[string]interface{}{"c": courseID.String(), "l": lessonID.String()})
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"completeLesson":{"status":"COMPLETED","progress":100,"completedLessons":["`+lessonID.String()+`"]}}`, string(resp.Data))
}

func TestResolverError(t *testing.T) {
	err := resolverError(errors.New("pq: deadlock detected"))
	ae, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, "Internal server error", ae.Error())
	assert.Nil(t, ae.Unwrap())

	err = resolverError(apperr.NotFoundErr("PAYMENT_NOT_FOUND", "Payment not found"))
	assert.Equal(t, map[string]interface{}{"code": "PAYMENT_NOT_FOUND"}, err.(*apperr.Error).Extensions())
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewHandler(NewMockPaymentService(ctrl), NewMockEnrollmentService(ctrl))
	assert.NotNil(t, h)
}
