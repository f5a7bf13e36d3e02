package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursehub/internal/domain"
	"github.com/GlebRadaev/coursehub/internal/pg"
)

const columns = `id, user_id, course_id, amount, status, method, reference, transaction_note, refund_reason, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.CourseID, &p.Amount, &p.Status, &p.Method,
		&p.Reference, &p.TransactionNote, &p.RefundReason, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Payment, error) {
	payment, err := scanPayment(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE id = $1
        FOR UPDATE
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE reference = $1
    `
	return r.findOne(ctx, query, reference)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment rows", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindStalePending(ctx context.Context, before time.Time, limit uint32) ([]domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE status = 'PENDING' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.findMany(ctx, query, before, int(limit))
}

func (r *Repository) Save(ctx context.Context, p *domain.Payment) error {
	query := `
        INSERT INTO payments (` + columns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, p.ID, p.UserID, p.CourseID, p.Amount, p.Status, p.Method,
			p.Reference, p.TransactionNote, p.RefundReason, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, p *domain.Payment) error {
	query := `
        UPDATE payments
        SET status = $1, refund_reason = $2, transaction_note = $3, updated_at = $4
        WHERE id = $5
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, p.Status, p.RefundReason, p.TransactionNote, p.UpdatedAt, p.ID)
		if err != nil {
			zap.L().Error("failed to update payment", zap.Error(err))
			return err
		}
		return nil
	})
}
