package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
)

var columnNames = []string{"id", "user_id", "course_id", "amount", "status", "method", "reference", "transaction_note", "refund_reason", "created_at", "updated_at"}

const selectQuery = "SELECT id, user_id, course_id, amount, status, method, reference, transaction_note, refund_reason, created_at, updated_at FROM payments"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func testPayment(now time.Time) domain.Payment {
	return domain.Payment{
		ID:              uuid.MustParse("6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e01"),
		UserID:          uuid.MustParse("0b7a4b8e-7c4e-4df0-b1f4-93f0f1a2c3d4"),
		CourseID:        uuid.MustParse("c2f7e0a1-5b6d-4e8f-a9b0-1c2d3e4f5a6b"),
		Amount:          decimal.RequireFromString("49.90"),
		Status:          domain.PaymentPending,
		Method:          domain.MethodBankTransfer,
		Reference:       "123456789015",
		TransactionNote: "transfer from Alfa",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func addRow(rows *pgxmock.Rows, p domain.Payment) *pgxmock.Rows {
	var reason any
	if p.RefundReason != nil {
		reason = p.RefundReason
	}
	return rows.AddRow(p.ID, p.UserID, p.CourseID, p.Amount, p.Status, p.Method,
		p.Reference, p.TransactionNote, reason, p.CreatedAt, p.UpdatedAt)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	payment := testPayment(now)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Payment
	}{
		{
			name: "Payment exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE id = $1")).
					WithArgs(payment.ID).
					WillReturnRows(addRow(pgxmock.NewRows(columnNames), payment))
			},
			result: &payment,
		},
		{
			name: "Payment does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE id = $1")).
					WithArgs(payment.ID).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE id = $1")).
					WithArgs(payment.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), payment.ID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	payment := testPayment(time.Now())
	reason := "duplicate charge"
	payment.Status = domain.PaymentRefunded
	payment.RefundReason = &reason

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE id = $1 FOR UPDATE")).
		WithArgs(payment.ID).
		WillReturnRows(addRow(pgxmock.NewRows(columnNames), payment))

	result, err := repo.FindByIDForUpdate(context.Background(), payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, &payment, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByReference(t *testing.T) {
	repo, mock, _ := NewMock(t)
	payment := testPayment(time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE reference = $1")).
		WithArgs(payment.Reference).
		WillReturnRows(addRow(pgxmock.NewRows(columnNames), payment))

	result, err := repo.FindByReference(context.Background(), payment.Reference)
	assert.NoError(t, err)
	assert.Equal(t, &payment, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	first := testPayment(now)
	second := testPayment(now.Add(-time.Hour))
	second.ID = uuid.MustParse("6f1d1f7e-0a4b-4c55-9d57-2b0c0f3a1e02")
	second.Status = domain.PaymentApproved

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Payment
	}{
		{
			name: "Payments found",
			mockSetup: func() {
				rows := pgxmock.NewRows(columnNames)
				addRow(rows, first)
				addRow(rows, second)
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE user_id = $1 ORDER BY created_at DESC")).
					WithArgs(first.UserID).
					WillReturnRows(rows)
			},
			result: []domain.Payment{first, second},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE user_id = $1 ORDER BY created_at DESC")).
					WithArgs(first.UserID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(columnNames).
					AddRow(first.ID, first.UserID, first.CourseID, "not-a-decimal", first.Status, first.Method,
						first.Reference, first.TransactionNote, nil, first.CreatedAt, first.UpdatedAt)
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE user_id = $1 ORDER BY created_at DESC")).
					WithArgs(first.UserID).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), first.UserID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindStalePending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	before := now.Add(-72 * time.Hour)
	payment := testPayment(before.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE status = 'PENDING' AND created_at < $1 ORDER BY created_at ASC LIMIT $2")).
		WithArgs(before, 50).
		WillReturnRows(addRow(pgxmock.NewRows(columnNames), payment))

	result, err := repo.FindStalePending(context.Background(), before, 50)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Payment{payment}, result)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery + " WHERE status = 'PENDING' AND created_at < $1 ORDER BY created_at ASC LIMIT $2")).
		WithArgs(before, 50).
		WillReturnRows(pgxmock.NewRows(columnNames))

	result, err = repo.FindStalePending(context.Background(), before, 50)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	payment := testPayment(time.Now())
	insert := regexp.QuoteMeta(`INSERT INTO payments (id, user_id, course_id, amount, status, method, reference, transaction_note, refund_reason, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save payment successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(insert).
						WithArgs(payment.ID, payment.UserID, payment.CourseID, payment.Amount, payment.Status, payment.Method,
							payment.Reference, payment.TransactionNote, payment.RefundReason, payment.CreatedAt, payment.UpdatedAt).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(insert).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), &payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)
	payment := testPayment(time.Now())
	reason := "course cancelled"
	payment.Status = domain.PaymentRefunded
	payment.RefundReason = &reason
	update := regexp.QuoteMeta(`UPDATE payments SET status = $1, refund_reason = $2, transaction_note = $3, updated_at = $4 WHERE id = $5`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update payment successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(update).
						WithArgs(payment.Status, payment.RefundReason, payment.TransactionNote, payment.UpdatedAt, payment.ID).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(update).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), &payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
